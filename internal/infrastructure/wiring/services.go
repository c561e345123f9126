// Package wiring assembles the storage, application, and catalog layers into
// the service bundle shared by the CLI, HTTP, and MCP surfaces.
package wiring

import (
	"fmt"
	"os"
	"sync"

	"github.com/flowlabs/flowmap/pkg/application"
	"github.com/flowlabs/flowmap/pkg/storage"
)

// AppServices exposes the application layer services wired together with a
// workspace. The generator and catalogs can be swapped at runtime by
// ReloadCatalogs while server goroutines read them, so those live behind a
// mutex and are reached through the accessor methods; the remaining services
// are fixed for the life of the bundle.
type AppServices struct {
	Workspace *Workspace
	Progress  *application.ProgressService
	Export    *application.ExportService
	Share     *application.ShareService
	Audit     *application.AuditService // Concrete service for read operations like GetPace

	mu        sync.RWMutex
	generator *application.GeneratorService
	templates *storage.TemplateCatalog
	resources *storage.ResourceCatalog
	actor     string
}

// BuildAppServices constructs the workbench of services for a workspace root.
// Workspace-local catalog overrides in .flowmap/ take precedence over the
// embedded catalogs.
func BuildAppServices(root string) (*AppServices, error) {
	workspace := NewWorkspace(root)

	templates, resources, err := LoadCatalogs(workspace.Repo)
	if err != nil {
		return nil, err
	}

	shareBase := os.Getenv("FLOWMAP_SHARE_URL")

	services := &AppServices{
		Workspace: workspace,
		Progress:  application.NewProgressService(workspace.Repo, workspace.Audit),
		Export:    application.NewExportService(workspace.Repo, workspace.Audit),
		Share:     application.NewShareService(workspace.Repo, shareBase),
		Audit:     workspace.Audit,
		generator: application.NewGeneratorService(templates, resources, workspace.Repo, workspace.Audit),
		templates: templates,
		resources: resources,
		actor:     "cli",
	}

	return services, nil
}

// Generator returns the current generator service. Callers should re-fetch it
// per operation rather than caching it across catalog reloads.
func (s *AppServices) Generator() *application.GeneratorService {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generator
}

// Templates returns the current template catalog.
func (s *AppServices) Templates() *storage.TemplateCatalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.templates
}

// Resources returns the current resource catalog.
func (s *AppServices) Resources() *storage.ResourceCatalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resources
}

// SetActor changes the actor recorded on audit events across all services.
// The HTTP and MCP surfaces call this once at wiring time; reloads keep the
// actor on the rebuilt generator.
func (s *AppServices) SetActor(actor string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actor = actor
	s.generator.SetActor(actor)
	s.Progress.SetActor(actor)
	s.Export.SetActor(actor)
}

// LoadCatalogs resolves the template and resource catalogs for a workspace,
// preferring workspace-local overrides over the embedded data.
func LoadCatalogs(repo *storage.FilesystemRepository) (*storage.TemplateCatalog, *storage.ResourceCatalog, error) {
	templates, err := repo.LoadTemplateOverride()
	if err != nil {
		return nil, nil, fmt.Errorf("load template override: %w", err)
	}
	if templates == nil {
		templates, err = storage.EmbeddedTemplateCatalog()
		if err != nil {
			return nil, nil, err
		}
	}

	resources, err := repo.LoadResourceOverride()
	if err != nil {
		return nil, nil, fmt.Errorf("load resource override: %w", err)
	}
	if resources == nil {
		resources, err = storage.EmbeddedResourceCatalog()
		if err != nil {
			return nil, nil, err
		}
	}

	return templates, resources, nil
}

// ReloadCatalogs rebuilds the catalog-dependent services after a workspace
// catalog file changes. The watch surface calls this on debounced events;
// requests already in flight keep the generator they fetched.
func (s *AppServices) ReloadCatalogs() error {
	templates, resources, err := LoadCatalogs(s.Workspace.Repo)
	if err != nil {
		return err
	}

	generator := application.NewGeneratorService(templates, resources, s.Workspace.Repo, s.Workspace.Audit)

	s.mu.Lock()
	defer s.mu.Unlock()
	generator.SetActor(s.actor)
	s.templates = templates
	s.resources = resources
	s.generator = generator
	return nil
}
