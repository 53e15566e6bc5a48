package domain

import (
	"errors"
	"fmt"
)

// ErrUnsupportedStrategy is returned when no built-in strategy exists for a compiler and no options were given
var ErrUnsupportedStrategy = errors.New("no built-in support for requested compiler")

const unsupportedCompilerHelp = `No built-in support for requested compiler.
To use this compiler, please specify necessary OPTIONS in compile command. E.g:

  treb-tracker compile --compiler solcjs -- <OPTIONS>...

OPTIONS can also be specified in the project's treb.toml file:

  [compiler]
    options = ["--option1", "--option2"]
`

// CompilerStrategy describes how to invoke a compiler for the project
type CompilerStrategy struct {
	Name    string
	Command string
	Args    []string
	BuiltIn bool
}

// CompilerError reports a failure to resolve or run a compiler
type CompilerError struct {
	Compiler string
	Err      error
}

func (e *CompilerError) Error() string {
	if e.Compiler == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("compiler %s: %v", e.Compiler, e.Err)
}

func (e *CompilerError) Unwrap() error { return e.Err }

// CompilationError is the user-facing wrapper for compile failures
type CompilationError struct {
	Err error
}

func (e *CompilationError) Error() string {
	if errors.Is(e.Err, ErrUnsupportedStrategy) {
		return unsupportedCompilerHelp
	}
	return e.Err.Error()
}

func (e *CompilationError) Unwrap() error { return e.Err }

// ConfigurationSetError is the user-facing wrapper for failures while writing project configuration
type ConfigurationSetError struct {
	Err error
}

func (e *ConfigurationSetError) Error() string {
	return fmt.Sprintf("Couldn't set configuration: %v", e.Err)
}

func (e *ConfigurationSetError) Unwrap() error { return e.Err }
