package compiler

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-tracker/internal/domain"
	"github.com/trebuchet-org/treb-tracker/internal/domain/config"
	"github.com/trebuchet-org/treb-tracker/internal/usecase"
)

// builtinFlags are the arguments passed ahead of the output directory and sources
var builtinFlags = map[string][]string{
	"solc":   {"--abi", "--bin", "--overwrite", "-o"},
	"solcjs": {"--abi", "--bin", "-o"},
}

// ResolverAdapter picks a compiler strategy from flags and treb.toml
type ResolverAdapter struct {
	log         *slog.Logger
	projectRoot string
	project     *config.ProjectConfig
}

// NewResolverAdapter creates a new ResolverAdapter
func NewResolverAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *ResolverAdapter {
	project := cfg.Project
	if project == nil {
		project = config.DefaultProjectConfig()
	}
	return &ResolverAdapter{
		log:         log.With("component", "CompilerResolver"),
		projectRoot: cfg.ProjectRoot,
		project:     project,
	}
}

// Resolve returns the strategy for compiler. Explicit options always win
// and are passed through untouched. Without options only built-in
// compilers are supported.
func (r *ResolverAdapter) Resolve(ctx context.Context, compiler string, options []string) (*domain.CompilerStrategy, error) {
	if compiler == "" {
		compiler = r.project.Compiler.Cmd
	}
	if len(options) == 0 {
		options = r.project.Compiler.Options
	}

	if len(options) > 0 {
		r.log.Debug("using custom compiler options", "compiler", compiler, "options", options)
		return &domain.CompilerStrategy{
			Name:    compiler,
			Command: compiler,
			Args:    options,
		}, nil
	}

	flags, ok := builtinFlags[compiler]
	if !ok {
		return nil, &domain.CompilerError{Compiler: compiler, Err: domain.ErrUnsupportedStrategy}
	}

	sources, err := r.sources()
	if err != nil {
		return nil, &domain.CompilerError{Compiler: compiler, Err: err}
	}
	if len(sources) == 0 {
		return nil, &domain.CompilerError{
			Compiler: compiler,
			Err:      fmt.Errorf("no sources match %v", r.project.Sources.SmartContracts),
		}
	}

	args := append([]string{}, flags...)
	args = append(args, r.project.Sources.Artifacts)
	args = append(args, sources...)

	return &domain.CompilerStrategy{
		Name:    compiler,
		Command: compiler,
		Args:    args,
		BuiltIn: true,
	}, nil
}

// sources expands the configured globs relative to the project root.
// Returned paths stay relative since the compiler runs in the project root.
func (r *ResolverAdapter) sources() ([]string, error) {
	var matches []string
	for _, pattern := range r.project.Sources.SmartContracts {
		found, err := filepath.Glob(filepath.Join(r.projectRoot, pattern))
		if err != nil {
			return nil, fmt.Errorf("invalid source pattern %q: %w", pattern, err)
		}
		for _, f := range found {
			rel, err := filepath.Rel(r.projectRoot, f)
			if err != nil {
				return nil, err
			}
			matches = append(matches, rel)
		}
	}
	return lo.Uniq(matches), nil
}

// Ensure ResolverAdapter implements CompilerResolver
var _ usecase.CompilerResolver = (*ResolverAdapter)(nil)
