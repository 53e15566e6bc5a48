package fs

import (
	"context"
	"errors"
	"os"

	"github.com/trebuchet-org/treb-tracker/internal/adapters/tomldoc"
	"github.com/trebuchet-org/treb-tracker/internal/domain"
)

// readDocument loads and parses a TOML document. A missing file is
// reported as os.ErrNotExist so callers can pick their own sentinel.
func readDocument(ctx context.Context, path string) (tomldoc.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, os.ErrNotExist
		}
		return nil, &domain.IOError{Op: "read", Path: path, Err: err}
	}

	tree, err := tomldoc.Parse(data)
	if err != nil {
		var formatErr *domain.FormatError
		if errors.As(err, &formatErr) {
			formatErr.Path = path
		}
		return nil, err
	}
	return tree, nil
}

// writeDocument serializes the tree and replaces the file contents
func writeDocument(ctx context.Context, path string, tree tomldoc.Tree) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := tree.Serialize()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return &domain.IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
