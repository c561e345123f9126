package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/flowlabs/flowmap/pkg/application"
	"github.com/flowlabs/flowmap/pkg/domain/progress"
	"github.com/flowlabs/flowmap/pkg/domain/roadmap"
	"github.com/flowlabs/flowmap/pkg/storage"
)

func newWorkspace(t *testing.T) (*storage.FilesystemRepository, *application.AuditService) {
	t.Helper()
	repo := storage.NewFilesystemRepository(t.TempDir())
	if err := repo.Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return repo, application.NewAuditService(repo)
}

func TestProgressService_GetProgress_NoRoadmap(t *testing.T) {
	repo, audit := newWorkspace(t)
	svc := application.NewProgressService(repo, audit)

	if _, err := svc.GetProgress(); !errors.Is(err, roadmap.ErrNoRoadmap) {
		t.Fatalf("expected ErrNoRoadmap, got %v", err)
	}
}

func TestProgressService_Transition(t *testing.T) {
	repo, audit := newWorkspace(t)
	gen := newGenerator(t, repo)
	if _, err := gen.Generate(context.Background(), testProfile()); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	svc := application.NewProgressService(repo, audit)

	status, err := svc.Transition("math-basics", "start")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if status != progress.StatusInProgress {
		t.Errorf("status = %s, want in_progress", status)
	}

	status, err = svc.Transition("math-basics", "complete")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if status != progress.StatusDone {
		t.Errorf("status = %s, want done", status)
	}

	state, err := svc.GetProgress()
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if state.StatusOf("math-basics") != progress.StatusDone {
		t.Error("transition not persisted")
	}

	events, err := audit.GetTimeline()
	if err != nil {
		t.Fatalf("GetTimeline: %v", err)
	}
	transitions := 0
	for _, e := range events {
		if e.Action == "topic.transition" {
			transitions++
		}
	}
	if transitions != 2 {
		t.Errorf("recorded %d transition events, want 2", transitions)
	}
}

func TestProgressService_Transition_InvalidEvent(t *testing.T) {
	repo, audit := newWorkspace(t)
	gen := newGenerator(t, repo)
	if _, err := gen.Generate(context.Background(), testProfile()); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	svc := application.NewProgressService(repo, audit)

	if _, err := svc.Transition("math-basics", "complete"); err == nil {
		t.Error("expected error completing a pending topic")
	}

	state, err := svc.GetProgress()
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if state.StatusOf("math-basics") != progress.StatusPending {
		t.Error("rejected transition changed the persisted state")
	}
}

func TestProgressService_Transition_UnknownTopic(t *testing.T) {
	repo, audit := newWorkspace(t)
	gen := newGenerator(t, repo)
	if _, err := gen.Generate(context.Background(), testProfile()); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	svc := application.NewProgressService(repo, audit)

	if _, err := svc.Transition("no-such-topic", "start"); err == nil {
		t.Error("expected error for unknown topic")
	}
}
