package fs

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/trebuchet-org/treb-tracker/internal/adapters/tomldoc"
	internalconfig "github.com/trebuchet-org/treb-tracker/internal/config"
	"github.com/trebuchet-org/treb-tracker/internal/domain/config"
	"github.com/trebuchet-org/treb-tracker/internal/usecase"
)

// ProjectConfigStoreAdapter implements ProjectConfigStore on treb.toml
type ProjectConfigStoreAdapter struct {
	log  *slog.Logger
	path string
}

// NewProjectConfigStoreAdapter creates a new ProjectConfigStoreAdapter
func NewProjectConfigStoreAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *ProjectConfigStoreAdapter {
	return &ProjectConfigStoreAdapter{
		log:  log.With("component", "ProjectConfigStore"),
		path: cfg.ConfigPath,
	}
}

// Path returns the path to treb.toml
func (s *ProjectConfigStoreAdapter) Path() string {
	return s.path
}

// Exists checks if treb.toml exists
func (s *ProjectConfigStoreAdapter) Exists() bool {
	return fileExists(s.path)
}

// Load reads treb.toml with defaults applied
func (s *ProjectConfigStoreAdapter) Load(ctx context.Context) (*config.ProjectConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return internalconfig.LoadProjectConfig(s.path)
}

// Set writes value at the dot-joined key. Other keys and values are kept,
// but the file is re-encoded: comments are dropped and formatting changes.
func (s *ProjectConfigStoreAdapter) Set(ctx context.Context, key string, value any) error {
	tree, err := readDocument(ctx, s.path)
	if errors.Is(err, os.ErrNotExist) {
		tree, err = tomldoc.New(), nil
	}
	if err != nil {
		return err
	}

	inserted, err := tree.Upsert(key, value)
	if err != nil {
		return err
	}

	if err := writeDocument(ctx, s.path, tree); err != nil {
		return err
	}

	s.log.Debug("updated project config", "key", key, "inserted", inserted)
	return nil
}

// Ensure ProjectConfigStoreAdapter implements ProjectConfigStore
var _ usecase.ProjectConfigStore = (*ProjectConfigStoreAdapter)(nil)
