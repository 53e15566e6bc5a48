package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-tracker/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// RenderConfig renders the configuration display
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult) error {
	if result.Exists {
		fmt.Fprintln(r.out, "📋 Current config:")
	} else {
		fmt.Fprintln(r.out, "📋 No treb.toml found, using defaults:")
	}

	cfg := result.Config
	fmt.Fprintf(r.out, "Compiler:        %s\n", cfg.Compiler.Cmd)
	fmt.Fprintf(r.out, "Options:         %s\n", listOrUnset(cfg.Compiler.Options))
	fmt.Fprintf(r.out, "Artifacts:       %s\n", cfg.Sources.Artifacts)
	fmt.Fprintf(r.out, "Smart contracts: %s\n", listOrUnset(cfg.Sources.SmartContracts))

	if len(cfg.Deployment.Args) > 0 {
		fmt.Fprintln(r.out, "Constructor args:")
		names := lo.Keys(cfg.Deployment.Args)
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(r.out, "  %s: %s\n", name, listOrUnset(cfg.Deployment.Args[name]))
		}
	}

	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "📁 config file:   %s\n", getRelativePath(result.ConfigPath))
	if result.Tracking {
		fmt.Fprintf(r.out, "📦 tracking file: %s\n", getRelativePath(result.TrackingPath))
	} else {
		fmt.Fprintf(r.out, "📦 tracking file: %s\n", color.New(color.Faint).Sprint("(not created, run 'treb-tracker init')"))
	}
	return nil
}

// RenderSet renders the result of setting a configuration value
func (r *ConfigRenderer) RenderSet(result *usecase.SetConfigResult) error {
	value := fmt.Sprint(result.Value)
	if list, ok := result.Value.([]string); ok {
		value = listOrUnset(list)
	}
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Set %s to: %s", result.Key, value)))
	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

func listOrUnset(list []string) string {
	if len(list) == 0 {
		return "(not set)"
	}
	return "[" + strings.Join(list, ", ") + "]"
}
