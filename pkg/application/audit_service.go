package application

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/flowlabs/flowmap/pkg/domain"
)

type AuditService struct {
	repo domain.WorkspaceRepository
}

// Compile-time check that AuditService implements AuditLogger
var _ domain.AuditLogger = (*AuditService)(nil)

func NewAuditService(repo domain.WorkspaceRepository) *AuditService {
	return &AuditService{repo: repo}
}

func (s *AuditService) Log(action string, actor string, metadata map[string]interface{}) error {
	// Get the latest event to continue the hash chain. The read is best
	// effort: if the log is unreadable the chain restarts from an empty
	// prev hash and VerifyIntegrity reports the break.
	events, _ := s.repo.LoadEvents()
	prevHash := ""
	if len(events) > 0 {
		prevHash = events[len(events)-1].Hash
	}

	event := domain.Event{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		Action:    action,
		Actor:     actor,
		Metadata:  metadata,
		PrevHash:  prevHash,
	}
	event.Hash = event.CalculateHash()

	return s.repo.RecordEvent(event)
}

func (s *AuditService) GetTimeline() ([]domain.Event, error) {
	return s.repo.LoadEvents()
}

func (s *AuditService) VerifyIntegrity() ([]string, error) {
	events, err := s.repo.LoadEvents()
	if err != nil {
		return nil, err
	}

	var violations []string
	lastHash := ""

	for i, e := range events {
		if e.PrevHash != lastHash {
			violations = append(violations, fmt.Sprintf("Event %d (%s): PrevHash mismatch. Audit trail broken.", i, e.ID))
		}

		expected := e.CalculateHash()
		if e.Hash != expected {
			violations = append(violations, fmt.Sprintf("Event %d (%s): Content hash mismatch. Possible tampering.", i, e.ID))
		}

		lastHash = e.Hash
	}

	return violations, nil
}

// GetPace returns the average topics completed per week since the first
// completion event.
func (s *AuditService) GetPace() (float64, error) {
	events, err := s.repo.LoadEvents()
	if err != nil {
		return 0, err
	}

	if len(events) == 0 {
		return 0, nil
	}

	var firstDone time.Time
	doneCount := 0

	for _, e := range events {
		if e.Action == "topic.transition" && e.Metadata["status"] == "done" {
			if firstDone.IsZero() {
				firstDone = e.Timestamp
			}
			doneCount++
		}
	}

	if doneCount == 0 {
		return 0, nil
	}

	weeks := time.Since(firstDone).Hours() / (24.0 * 7.0)
	if weeks < 1 {
		weeks = 1 // Floor at 1 week to avoid large spikes
	}

	return float64(doneCount) / weeks, nil
}
