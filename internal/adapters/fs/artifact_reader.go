package fs

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-tracker/internal/domain"
	"github.com/trebuchet-org/treb-tracker/internal/domain/config"
	"github.com/trebuchet-org/treb-tracker/internal/domain/models"
	"github.com/trebuchet-org/treb-tracker/internal/usecase"
)

// ArtifactReaderAdapter reads compiler output (<Name>.bin files) from the artifacts directory
type ArtifactReaderAdapter struct {
	projectRoot string
}

// NewArtifactReaderAdapter creates a new ArtifactReaderAdapter
func NewArtifactReaderAdapter(cfg *config.RuntimeConfig) *ArtifactReaderAdapter {
	return &ArtifactReaderAdapter{projectRoot: cfg.ProjectRoot}
}

// ListArtifacts returns one identity per .bin file in dir, sorted by name.
// Relative directories are resolved against the project root.
func (a *ArtifactReaderAdapter) ListArtifacts(ctx context.Context, dir string) ([]models.ContractIdentity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(a.projectRoot, dir)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.bin"))
	if err != nil {
		return nil, &domain.IOError{Op: "list", Path: dir, Err: err}
	}
	sort.Strings(files)

	artifacts := make([]models.ContractIdentity, 0, len(files))
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, &domain.IOError{Op: "read", Path: file, Err: err}
		}
		artifacts = append(artifacts, models.ContractIdentity{
			Name:     strings.TrimSuffix(filepath.Base(file), ".bin"),
			ByteCode: domain.NormalizeByteCode(string(data)),
		})
	}

	// solc emits empty .bin files for interfaces and abstract contracts
	return lo.Filter(artifacts, func(a models.ContractIdentity, _ int) bool {
		return a.ByteCode != "0x"
	}), nil
}

// Ensure ArtifactReaderAdapter implements ArtifactRepository
var _ usecase.ArtifactRepository = (*ArtifactReaderAdapter)(nil)
