// Package roadmap defines the generated artifact: the immutable aggregate
// returned by a single generation call.
package roadmap

import (
	"errors"
	"time"

	"github.com/flowlabs/flowmap/pkg/domain/curriculum"
	"github.com/flowlabs/flowmap/pkg/domain/profile"
	"github.com/flowlabs/flowmap/pkg/domain/resource"
	"github.com/flowlabs/flowmap/pkg/domain/schedule"
)

// ErrNoRoadmap is returned when no roadmap has been generated yet.
var ErrNoRoadmap = errors.New("no roadmap found")

// ProfileEcho mirrors the learner profile the roadmap was generated from.
type ProfileEcho struct {
	Level          profile.SkillLevel     `json:"level" yaml:"level"`
	TimeCommitment profile.TimeCommitment `json:"time_commitment" yaml:"time_commitment"`
	Preferences    []profile.Format       `json:"preferences" yaml:"preferences"`
	Domain         string                 `json:"domain" yaml:"domain"`
	OutputFormat   profile.OutputFormat   `json:"output_format" yaml:"output_format"`
}

// Roadmap is the complete generated learning plan. It is created once per
// generation call and never mutated by the engine afterwards; progress
// tracking and other follow-up concerns operate on copies in other layers.
// All fields serialize to plain JSON values.
type Roadmap struct {
	ID                string                 `json:"id" yaml:"id"`
	Title             string                 `json:"title" yaml:"title"`
	Description       string                 `json:"description" yaml:"description"`
	UserProfile       ProfileEcho            `json:"user_profile" yaml:"user_profile"`
	Curriculum        *curriculum.Curriculum `json:"curriculum" yaml:"curriculum"`
	Timeline          schedule.Timeline      `json:"timeline" yaml:"timeline"`
	Resources         resource.Map           `json:"resources" yaml:"resources"`
	EstimatedDuration schedule.Summary       `json:"estimated_duration" yaml:"estimated_duration"`
	CreatedAt         time.Time              `json:"created_at" yaml:"created_at"`
}

// Topics returns the non-milestone timeline entries in schedule order.
func (r *Roadmap) Topics() []schedule.Entry {
	out := make([]schedule.Entry, 0, len(r.Timeline))
	for _, e := range r.Timeline {
		if !e.IsMilestone {
			out = append(out, e)
		}
	}
	return out
}

// Milestones returns the milestone timeline entries in schedule order.
func (r *Roadmap) Milestones() []schedule.Entry {
	out := make([]schedule.Entry, 0, len(r.Curriculum.Phases))
	for _, e := range r.Timeline {
		if e.IsMilestone {
			out = append(out, e)
		}
	}
	return out
}
