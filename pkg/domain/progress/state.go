package progress

import (
	"errors"
	"time"
)

// ErrNoState is returned when no progress state exists for the workspace.
var ErrNoState = errors.New("no progress state found")

// TopicState is the tracked state of one topic.
type TopicState struct {
	Status    TopicStatus `json:"status" yaml:"status"`
	UpdatedAt time.Time   `json:"updated_at" yaml:"updated_at"`
}

// State tracks completion for every topic of one generated roadmap.
type State struct {
	RoadmapID   string                `json:"roadmap_id" yaml:"roadmap_id"`
	TopicStates map[string]TopicState `json:"topic_states" yaml:"topic_states"`
	UpdatedAt   time.Time             `json:"updated_at" yaml:"updated_at"`
}

// NewState initializes pending state for every topic id.
func NewState(roadmapID string, topicIDs []string) *State {
	now := time.Now()
	states := make(map[string]TopicState, len(topicIDs))
	for _, id := range topicIDs {
		states[id] = TopicState{Status: StatusPending, UpdatedAt: now}
	}
	return &State{
		RoadmapID:   roadmapID,
		TopicStates: states,
		UpdatedAt:   now,
	}
}

// StatusOf returns the tracked status for a topic, defaulting to pending for
// topics not yet recorded.
func (s *State) StatusOf(topicID string) TopicStatus {
	if ts, ok := s.TopicStates[topicID]; ok {
		return ts.Status
	}
	return StatusPending
}

// SetStatus records a topic's status.
func (s *State) SetStatus(topicID string, status TopicStatus) {
	now := time.Now()
	s.TopicStates[topicID] = TopicState{Status: status, UpdatedAt: now}
	s.UpdatedAt = now
}

// Completion returns the fraction of topics that are complete, in [0, 1].
func (s *State) Completion() float64 {
	if len(s.TopicStates) == 0 {
		return 0
	}
	complete := 0
	for _, ts := range s.TopicStates {
		if ts.Status.IsComplete() {
			complete++
		}
	}
	return float64(complete) / float64(len(s.TopicStates))
}
