// Package progress tracks topic completion against a generated roadmap.
// It operates on its own state copy; the roadmap artifact itself is never
// mutated.
package progress

import (
	"encoding/json"
	"fmt"
)

// TopicStatus is the completion state of a single topic.
type TopicStatus string

const (
	StatusPending    TopicStatus = "pending"
	StatusInProgress TopicStatus = "in_progress"
	StatusDone       TopicStatus = "done"
	StatusSkipped    TopicStatus = "skipped"
)

// validTransitions defines the allowed transitions and their events.
// Map: currentStatus -> event -> targetStatus
var validTransitions = map[TopicStatus]map[string]TopicStatus{
	StatusPending: {
		"start": StatusInProgress,
		"skip":  StatusSkipped,
	},
	StatusInProgress: {
		"complete": StatusDone,
		"stop":     StatusPending,
		"skip":     StatusSkipped,
	},
	StatusDone: {
		"reopen": StatusPending,
	},
	StatusSkipped: {
		"reopen": StatusPending,
	},
}

// AllTopicStatuses returns all valid topic statuses.
func AllTopicStatuses() []TopicStatus {
	return []TopicStatus{StatusPending, StatusInProgress, StatusDone, StatusSkipped}
}

// IsValid returns true if the status is a known topic status.
func (s TopicStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone, StatusSkipped:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s TopicStatus) String() string {
	return string(s)
}

// CanTransitionWith returns true if the event can trigger a transition from
// this status.
func (s TopicStatus) CanTransitionWith(event string) bool {
	transitions, ok := validTransitions[s]
	if !ok {
		return false
	}
	_, ok = transitions[event]
	return ok
}

// TransitionWith returns the target status for an event, or an error if the
// event is not allowed from this status.
func (s TopicStatus) TransitionWith(event string) (TopicStatus, error) {
	transitions, ok := validTransitions[s]
	if !ok {
		return s, fmt.Errorf("no transitions defined for status: %s", s)
	}
	target, ok := transitions[event]
	if !ok {
		return s, fmt.Errorf("event '%s' not allowed from status '%s'", event, s)
	}
	return target, nil
}

// ValidEvents returns all events that can be triggered from this status.
func (s TopicStatus) ValidEvents() []string {
	transitions, ok := validTransitions[s]
	if !ok {
		return nil
	}
	events := make([]string, 0, len(transitions))
	for event := range transitions {
		events = append(events, event)
	}
	return events
}

// IsComplete returns true if the topic needs no further work.
func (s TopicStatus) IsComplete() bool {
	return s == StatusDone || s == StatusSkipped
}

// DisplayName returns a human-readable name for the status.
func (s TopicStatus) DisplayName() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	case StatusSkipped:
		return "Skipped"
	default:
		return string(s)
	}
}

// ParseTopicStatus parses a string into a TopicStatus.
func ParseTopicStatus(s string) (TopicStatus, error) {
	status := TopicStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid topic status: %s", s)
	}
	return status, nil
}

// MarshalJSON implements json.Marshaler.
func (s TopicStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// UnmarshalJSON implements json.Unmarshaler. Empty strings load as pending
// for backward compatibility with older state files.
func (s *TopicStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str == "" {
		*s = StatusPending
		return nil
	}
	status := TopicStatus(str)
	if !status.IsValid() {
		return fmt.Errorf("invalid topic status: %s", str)
	}
	*s = status
	return nil
}
