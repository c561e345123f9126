package application_test

import (
	"os"
	"strings"
	"testing"

	"github.com/flowlabs/flowmap/pkg/storage"
)

func TestAuditService_LogChainsHashes(t *testing.T) {
	_, audit := newWorkspace(t)

	if err := audit.Log("workspace.init", "cli", nil); err != nil {
		t.Fatalf("Log: %v", err)
	}
	if err := audit.Log("roadmap.generate", "cli", map[string]interface{}{"domain": "Machine Learning"}); err != nil {
		t.Fatalf("Log: %v", err)
	}

	events, err := audit.GetTimeline()
	if err != nil {
		t.Fatalf("GetTimeline: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	if events[0].PrevHash != "" {
		t.Error("first event must start the chain with an empty prev hash")
	}
	if events[1].PrevHash != events[0].Hash {
		t.Error("second event does not chain to the first")
	}
	for i, e := range events {
		if e.Hash != e.CalculateHash() {
			t.Errorf("event %d hash does not match its content", i)
		}
	}
}

func TestAuditService_VerifyIntegrity(t *testing.T) {
	repo, audit := newWorkspace(t)

	for _, action := range []string{"workspace.init", "roadmap.generate", "roadmap.export"} {
		if err := audit.Log(action, "cli", nil); err != nil {
			t.Fatalf("Log: %v", err)
		}
	}

	violations, err := audit.VerifyIntegrity()
	if err != nil {
		t.Fatalf("VerifyIntegrity: %v", err)
	}
	if len(violations) != 0 {
		t.Fatalf("clean trail reported violations: %v", violations)
	}

	// Tamper with the recorded actions and verify again.
	path, err := repo.ResolvePath(storage.EventsFile)
	if err != nil {
		t.Fatalf("ResolvePath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read events: %v", err)
	}
	tampered := strings.Replace(string(data), "roadmap.generate", "roadmap.tampered", 1)
	if err := os.WriteFile(path, []byte(tampered), 0600); err != nil {
		t.Fatalf("write tampered events: %v", err)
	}

	violations, err = audit.VerifyIntegrity()
	if err != nil {
		t.Fatalf("VerifyIntegrity: %v", err)
	}
	if len(violations) == 0 {
		t.Error("tampered trail passed verification")
	}
}

func TestAuditService_GetPace(t *testing.T) {
	_, audit := newWorkspace(t)

	pace, err := audit.GetPace()
	if err != nil {
		t.Fatalf("GetPace: %v", err)
	}
	if pace != 0 {
		t.Errorf("empty trail pace = %f", pace)
	}

	for _, topic := range []string{"math-basics", "statistics", "calculus"} {
		if err := audit.Log("topic.transition", "cli", map[string]interface{}{
			"topic":  topic,
			"event":  "complete",
			"status": "done",
		}); err != nil {
			t.Fatalf("Log: %v", err)
		}
	}
	// Non-completion events must not count toward pace.
	if err := audit.Log("topic.transition", "cli", map[string]interface{}{
		"topic":  "python-ml",
		"event":  "start",
		"status": "in_progress",
	}); err != nil {
		t.Fatalf("Log: %v", err)
	}

	pace, err = audit.GetPace()
	if err != nil {
		t.Fatalf("GetPace: %v", err)
	}
	// All completions happened just now, so the window floors at one week.
	if pace != 3 {
		t.Errorf("GetPace() = %f, want 3", pace)
	}
}
