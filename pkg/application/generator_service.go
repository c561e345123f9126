// Package application wires the domain layer into use-case services shared by
// the CLI, HTTP, and MCP surfaces.
package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/flowlabs/flowmap/pkg/domain"
	"github.com/flowlabs/flowmap/pkg/domain/curriculum"
	"github.com/flowlabs/flowmap/pkg/domain/profile"
	"github.com/flowlabs/flowmap/pkg/domain/resource"
	"github.com/flowlabs/flowmap/pkg/domain/roadmap"
	"github.com/flowlabs/flowmap/pkg/domain/schedule"
)

// GeneratorService runs the full generation pipeline: template lookup,
// learner adaptation, scheduling, resource selection, assembly.
type GeneratorService struct {
	templates curriculum.Catalog
	resources resource.Catalog
	repo      domain.WorkspaceRepository
	audit     domain.AuditLogger
	augmenter *curriculum.Augmenter
	scheduler schedule.Scheduler
	selector  *resource.Selector

	now   func() time.Time
	newID func() string
	actor string
}

func NewGeneratorService(templates curriculum.Catalog, resources resource.Catalog, repo domain.WorkspaceRepository, audit domain.AuditLogger) *GeneratorService {
	return &GeneratorService{
		templates: templates,
		resources: resources,
		repo:      repo,
		audit:     audit,
		augmenter: curriculum.NewAugmenter(),
		scheduler: schedule.NewScheduler(),
		selector:  resource.NewSelector(resources, nil),
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
		actor:     "cli",
	}
}

// SetActor changes the actor recorded on audit events. The HTTP and MCP
// surfaces call this once at wiring time.
func (s *GeneratorService) SetActor(actor string) {
	s.actor = actor
}

// SetRand replaces the random source used for resource selection.
func (s *GeneratorService) SetRand(rng resource.Rand) {
	s.selector = resource.NewSelector(s.resources, rng)
}

// SetClock replaces the timestamp source.
func (s *GeneratorService) SetClock(now func() time.Time) {
	s.now = now
}

// SetIDFunc replaces the roadmap id source.
func (s *GeneratorService) SetIDFunc(newID func() string) {
	s.newID = newID
}

// Generate builds a roadmap for the profile and persists it as the
// workspace's current roadmap, resetting progress to all-pending. The
// returned artifact is never mutated afterwards.
func (s *GeneratorService) Generate(ctx context.Context, p profile.UserProfile) (*roadmap.Roadmap, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if err := s.audit.Log("roadmap.generate", s.actor, map[string]interface{}{
		"domain": p.Domain,
		"level":  p.CurrentLevel.String(),
	}); err != nil {
		return nil, fmt.Errorf("write audit log: %w", err)
	}

	cur, err := s.templates.Lookup(p.Domain, p.CurrentLevel)
	if err != nil {
		return nil, fmt.Errorf("lookup template: %w", err)
	}

	cur.AdjustForLearner(p.CurrentLevel)
	s.augmenter.Augment(cur, p.SpecificTopics)

	timeline := s.scheduler.Schedule(cur, p.TimeCommitment)
	selected := s.selector.Select(cur, p.PreferredFormats)

	rm := &roadmap.Roadmap{
		ID:          s.newID(),
		Title:       fmt.Sprintf("%s Learning Roadmap", p.Domain),
		Description: fmt.Sprintf("Personalized roadmap for: %s", p.LearningGoal),
		UserProfile: roadmap.ProfileEcho{
			Level:          p.CurrentLevel,
			TimeCommitment: p.TimeCommitment,
			Preferences:    p.PreferredFormats,
			Domain:         p.Domain,
			OutputFormat:   p.OutputFormat,
		},
		Curriculum:        cur,
		Timeline:          timeline,
		Resources:         selected,
		EstimatedDuration: timeline.Summarize(),
		CreatedAt:         s.now(),
	}

	if s.repo != nil {
		if err := s.repo.SaveRoadmap(rm); err != nil {
			return nil, fmt.Errorf("save roadmap: %w", err)
		}
		if err := s.repo.SaveProgress(progressFor(rm)); err != nil {
			return nil, fmt.Errorf("save progress: %w", err)
		}
	}

	return rm, nil
}

// GetRoadmap returns the workspace's current roadmap.
func (s *GeneratorService) GetRoadmap() (*roadmap.Roadmap, error) {
	return s.repo.LoadRoadmap()
}
