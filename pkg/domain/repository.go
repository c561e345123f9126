package domain

import (
	"github.com/flowlabs/flowmap/pkg/domain/progress"
	"github.com/flowlabs/flowmap/pkg/domain/roadmap"
)

// WorkspaceRepository persists the presentation-layer workspace: the most
// recently generated roadmap, topic progress, and the audit trail. The
// generation engine itself never requires persistence; its artifact is
// ephemeral until a caller chooses to keep it.
type WorkspaceRepository interface {
	Initialize() error
	IsInitialized() bool

	SaveRoadmap(r *roadmap.Roadmap) error
	LoadRoadmap() (*roadmap.Roadmap, error)

	SaveProgress(s *progress.State) error
	LoadProgress() (*progress.State, error)

	RecordEvent(e Event) error
	LoadEvents() ([]Event, error)
}
