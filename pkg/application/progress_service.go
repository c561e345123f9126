package application

import (
	"fmt"

	"github.com/flowlabs/flowmap/pkg/domain"
	"github.com/flowlabs/flowmap/pkg/domain/progress"
	"github.com/flowlabs/flowmap/pkg/domain/roadmap"
)

// ProgressService tracks topic completion for the workspace's current
// roadmap. Transitions run through the topic state machine, so invalid
// moves (e.g. completing a topic that was never started) are rejected.
type ProgressService struct {
	repo  domain.WorkspaceRepository
	audit domain.AuditLogger
	actor string
}

func NewProgressService(repo domain.WorkspaceRepository, audit domain.AuditLogger) *ProgressService {
	return &ProgressService{repo: repo, audit: audit, actor: "cli"}
}

// SetActor changes the actor recorded on audit events.
func (s *ProgressService) SetActor(actor string) {
	s.actor = actor
}

// GetProgress loads the workspace's progress state, initializing a fresh
// all-pending state from the current roadmap when none exists yet.
func (s *ProgressService) GetProgress() (*progress.State, error) {
	state, err := s.repo.LoadProgress()
	if err == nil {
		return state, nil
	}
	if err != progress.ErrNoState {
		return nil, err
	}

	rm, err := s.repo.LoadRoadmap()
	if err != nil {
		return nil, err
	}
	return progressFor(rm), nil
}

// Transition applies an event (start, complete, stop, skip, reopen) to one
// topic and persists the resulting state.
func (s *ProgressService) Transition(topicID string, event string) (progress.TopicStatus, error) {
	rm, err := s.repo.LoadRoadmap()
	if err != nil {
		return "", err
	}
	if !hasTopic(rm, topicID) {
		return "", fmt.Errorf("unknown topic: %s", topicID)
	}

	state, err := s.repo.LoadProgress()
	if err != nil {
		if err != progress.ErrNoState {
			return "", err
		}
		state = progressFor(rm)
	}

	sm, err := progress.NewTopicStateMachine(state.StatusOf(topicID).String(), topicID)
	if err != nil {
		return "", err
	}
	if err := sm.Transition(event); err != nil {
		return "", err
	}
	next := sm.CurrentStatus()

	state.SetStatus(topicID, next)
	if err := s.repo.SaveProgress(state); err != nil {
		return "", fmt.Errorf("save progress: %w", err)
	}

	if err := s.audit.Log("topic.transition", s.actor, map[string]interface{}{
		"topic":  topicID,
		"event":  event,
		"status": next.String(),
	}); err != nil {
		return "", fmt.Errorf("write audit log: %w", err)
	}

	return next, nil
}

// progressFor builds an all-pending state covering every topic of the
// roadmap's curriculum.
func progressFor(rm *roadmap.Roadmap) *progress.State {
	return progress.NewState(rm.ID, rm.Curriculum.TopicIDs())
}

func hasTopic(rm *roadmap.Roadmap, topicID string) bool {
	for _, id := range rm.Curriculum.TopicIDs() {
		if id == topicID {
			return true
		}
	}
	return false
}
