package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/trebuchet-org/treb-tracker/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CompileRenderer renders compiler runs
type CompileRenderer struct {
	out     io.Writer
	verbose bool
}

// NewCompileRenderer creates a new compile renderer. Compiler output is
// only echoed when verbose is set.
func NewCompileRenderer(out io.Writer, verbose bool) *CompileRenderer {
	return &CompileRenderer{out: out, verbose: verbose}
}

// Render reports a successful compiler run
func (r *CompileRenderer) Render(result *usecase.CompileProjectResult) error {
	kind := "custom"
	if result.Strategy.BuiltIn {
		kind = "built-in"
	}

	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s compilation finished in %s",
		cases.Title(language.English).String(result.Strategy.Name),
		result.Duration.Round(time.Millisecond),
	)))
	fmt.Fprintln(r.out, color.New(color.Faint).Sprintf("  %s strategy: %s %s",
		kind, result.Strategy.Command, strings.Join(result.Strategy.Args, " ")))

	if r.verbose && len(result.Output) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprint(r.out, string(result.Output))
	}
	return nil
}
