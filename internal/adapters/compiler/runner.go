package compiler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"syscall"
	"time"

	"github.com/creack/pty"
	"github.com/trebuchet-org/treb-tracker/internal/domain"
	"github.com/trebuchet-org/treb-tracker/internal/domain/config"
	"github.com/trebuchet-org/treb-tracker/internal/usecase"
)

// RunnerAdapter executes compilers inside the project root
type RunnerAdapter struct {
	log         *slog.Logger
	projectRoot string
}

// NewRunnerAdapter creates a new RunnerAdapter
func NewRunnerAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *RunnerAdapter {
	return &RunnerAdapter{
		log:         log.With("component", "CompilerRunner"),
		projectRoot: cfg.ProjectRoot,
	}
}

// Run executes the strategy and returns its combined output
func (r *RunnerAdapter) Run(ctx context.Context, strategy *domain.CompilerStrategy) ([]byte, error) {
	start := time.Now()
	r.log.Debug("running compiler", "cmd", strategy.Command, "args", strategy.Args, "dir", r.projectRoot)

	cmd := exec.CommandContext(ctx, strategy.Command, strategy.Args...)
	cmd.Dir = r.projectRoot

	// Start with PTY so compilers keep their colored diagnostics
	ptyFile, err := pty.Start(cmd)
	if err != nil {
		return nil, &domain.CompilerError{Compiler: strategy.Name, Err: fmt.Errorf("failed to start: %w", err)}
	}
	defer func() {
		_ = ptyFile.Close()
	}()

	var output bytes.Buffer
	// Reading the pty master returns EIO once the child exits
	if _, err := io.Copy(&output, ptyFile); err != nil && !errors.Is(err, syscall.EIO) {
		r.log.Debug("error reading compiler output", "error", err)
	}

	waitErr := cmd.Wait()
	duration := time.Since(start)
	if waitErr != nil {
		r.log.Error("compiler failed", "error", waitErr, "duration", duration)
		return output.Bytes(), &domain.CompilerError{
			Compiler: strategy.Name,
			Err:      fmt.Errorf("%w\nOutput: %s", waitErr, output.String()),
		}
	}

	r.log.Debug("compiler finished", "duration", duration)
	return output.Bytes(), nil
}

// Ensure RunnerAdapter implements CompilerRunner
var _ usecase.CompilerRunner = (*RunnerAdapter)(nil)
