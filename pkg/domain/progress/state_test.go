package progress_test

import (
	"testing"

	"github.com/flowlabs/flowmap/pkg/domain/progress"
)

func TestNewState(t *testing.T) {
	s := progress.NewState("rm-1", []string{"a", "b", "c"})

	if s.RoadmapID != "rm-1" {
		t.Errorf("RoadmapID = %s", s.RoadmapID)
	}
	if len(s.TopicStates) != 3 {
		t.Fatalf("expected 3 topic states, got %d", len(s.TopicStates))
	}
	for id, ts := range s.TopicStates {
		if ts.Status != progress.StatusPending {
			t.Errorf("topic %s starts as %s, want pending", id, ts.Status)
		}
	}
}

func TestState_StatusOf_DefaultsToPending(t *testing.T) {
	s := progress.NewState("rm-1", nil)
	if s.StatusOf("unknown") != progress.StatusPending {
		t.Error("expected pending for untracked topic")
	}
}

func TestState_Completion(t *testing.T) {
	s := progress.NewState("rm-1", []string{"a", "b", "c", "d"})
	if s.Completion() != 0 {
		t.Errorf("fresh state completion = %f", s.Completion())
	}

	s.SetStatus("a", progress.StatusDone)
	s.SetStatus("b", progress.StatusSkipped)
	if got := s.Completion(); got != 0.5 {
		t.Errorf("Completion() = %f, want 0.5", got)
	}

	empty := progress.NewState("rm-2", nil)
	if empty.Completion() != 0 {
		t.Error("empty state completion must be 0")
	}
}
