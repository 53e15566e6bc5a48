package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/trebuchet-org/treb-tracker/internal/domain"
)

// CompileProjectParams contains parameters for compiling the project
type CompileProjectParams struct {
	Compiler string
	Options  []string
}

// CompileProjectResult contains the result of compiling the project
type CompileProjectResult struct {
	Strategy *domain.CompilerStrategy
	Output   []byte
	Duration time.Duration
}

// CompileProject resolves a compiler strategy and runs it
type CompileProject struct {
	resolver CompilerResolver
	runner   CompilerRunner
	sink     ProgressSink
}

// NewCompileProject creates a new CompileProject use case
func NewCompileProject(resolver CompilerResolver, runner CompilerRunner, sink ProgressSink) *CompileProject {
	return &CompileProject{
		resolver: resolver,
		runner:   runner,
		sink:     sink,
	}
}

// Run executes the compile use case. Every failure is returned as a
// *domain.CompilationError.
func (uc *CompileProject) Run(ctx context.Context, params CompileProjectParams) (*CompileProjectResult, error) {
	strategy, err := uc.resolver.Resolve(ctx, params.Compiler, params.Options)
	if err != nil {
		return nil, &domain.CompilationError{Err: err}
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "compiling",
		Message: fmt.Sprintf("Compiling with %s", strategy.Name),
		Spinner: true,
	})

	start := time.Now()
	output, err := uc.runner.Run(ctx, strategy)
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "compiling"})
	if err != nil {
		return nil, &domain.CompilationError{Err: err}
	}

	return &CompileProjectResult{
		Strategy: strategy,
		Output:   output,
		Duration: time.Since(start),
	}, nil
}
