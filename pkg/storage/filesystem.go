package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/retry"

	"github.com/flowlabs/flowmap/pkg/domain/progress"
	"github.com/flowlabs/flowmap/pkg/domain/roadmap"
)

const FlowmapDir = ".flowmap"
const RoadmapFile = "roadmap.json"
const ProgressFile = "progress.json"
const EventsFile = "events.jsonl"
const TemplatesFile = "templates.yaml"
const ResourcesFile = "resources.yaml"

// FilesystemRepository stores the workspace under <root>/.flowmap.
type FilesystemRepository struct {
	root        string
	retryConfig retry.Config
}

func NewFilesystemRepository(root string) *FilesystemRepository {
	return &FilesystemRepository{
		root: root,
		retryConfig: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  10 * time.Millisecond,
			BackoffPolicy: retry.BackoffExponential,
		},
	}
}

// Root returns the workspace root directory.
func (r *FilesystemRepository) Root() string {
	return r.root
}

// ResolvePath ensures the path is within the .flowmap directory and prevents traversal.
func (r *FilesystemRepository) ResolvePath(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename cannot be empty")
	}

	// Base directory is strictly root/.flowmap
	baseDir := filepath.Join(r.root, FlowmapDir)
	fullPath := filepath.Join(baseDir, filename)
	cleanPath := filepath.Clean(fullPath)

	// Check for traversal and ensure it's a direct child (no nested subdirs in .flowmap for now)
	if !strings.HasPrefix(cleanPath, baseDir) || filepath.Dir(cleanPath) != baseDir {
		return "", fmt.Errorf("invalid file path: %s", filename)
	}

	return cleanPath, nil
}

func (r *FilesystemRepository) Initialize() error {
	path := filepath.Join(r.root, FlowmapDir)
	// G301: Use 0700 for directories
	if err := os.MkdirAll(path, 0700); err != nil {
		return fmt.Errorf("failed to create .flowmap directory: %w", err)
	}
	return nil
}

func (r *FilesystemRepository) IsInitialized() bool {
	_, err := os.Stat(filepath.Join(r.root, FlowmapDir))
	return err == nil
}

func (r *FilesystemRepository) SaveRoadmap(rm *roadmap.Roadmap) error {
	path, err := r.ResolvePath(RoadmapFile)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(rm, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal roadmap: %w", err)
	}

	// G306: Use 0600 for files
	return os.WriteFile(path, data, 0600)
}

func (r *FilesystemRepository) LoadRoadmap() (*roadmap.Roadmap, error) {
	retryer := retry.New[*roadmap.Roadmap](r.retryConfig)

	return retryer.Do(context.Background(), func(ctx context.Context) (*roadmap.Roadmap, error) {
		path, err := r.ResolvePath(RoadmapFile)
		if err != nil {
			return nil, err
		}

		// #nosec G304 -- Path is resolved and validated via ResolvePath
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, roadmap.ErrNoRoadmap
			}
			return nil, fmt.Errorf("failed to read roadmap file: %w", err)
		}

		var rm roadmap.Roadmap
		if err := json.Unmarshal(data, &rm); err != nil {
			return nil, fmt.Errorf("failed to unmarshal roadmap: %w", err)
		}

		return &rm, nil
	})
}

func (r *FilesystemRepository) SaveProgress(s *progress.State) error {
	path, err := r.ResolvePath(ProgressFile)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

func (r *FilesystemRepository) LoadProgress() (*progress.State, error) {
	path, err := r.ResolvePath(ProgressFile)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, progress.ErrNoState
		}
		return nil, fmt.Errorf("failed to read progress file: %w", err)
	}

	var s progress.State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal progress: %w", err)
	}

	return &s, nil
}

// LoadTemplateOverride loads a workspace-local template catalog from
// .flowmap/templates.yaml. Returns (nil, nil) when no override exists.
func (r *FilesystemRepository) LoadTemplateOverride() (*TemplateCatalog, error) {
	path, err := r.ResolvePath(TemplatesFile)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read templates file: %w", err)
	}

	return ParseTemplateCatalog(data)
}

// LoadResourceOverride loads a workspace-local resource catalog from
// .flowmap/resources.yaml. Returns (nil, nil) when no override exists.
func (r *FilesystemRepository) LoadResourceOverride() (*ResourceCatalog, error) {
	path, err := r.ResolvePath(ResourcesFile)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read resources file: %w", err)
	}

	return ParseResourceCatalog(data)
}
