package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/treb-tracker/internal/usecase"
)

var (
	deployedStyle = color.New(color.FgGreen)
	pendingStyle  = color.New(color.FgYellow)
)

// PlanRenderer renders deployment plans
type PlanRenderer struct {
	out io.Writer
}

// NewPlanRenderer creates a new plan renderer
func NewPlanRenderer(out io.Writer) *PlanRenderer {
	return &PlanRenderer{out: out}
}

// Render displays each contract with its tracked address or as pending
func (r *PlanRenderer) Render(result *usecase.PlanDeploymentResult) error {
	if len(result.Contracts) == 0 {
		fmt.Fprintf(r.out, "No compiled contracts found in %s\n", getRelativePath(result.ArtifactsDir))
		fmt.Fprintln(r.out, "Run 'treb-tracker compile' first.")
		return nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.AppendHeader(table.Row{"CONTRACT", "ARGS", "STATUS"})

	for _, c := range result.Contracts {
		status := pendingStyle.Sprint("needs deployment")
		if !c.NeedsDeployment() {
			status = deployedStyle.Sprintf("deployed at %s", c.Deployed.Address.Hex())
		}
		t.AppendRow(table.Row{
			nameStyle.Sprint(c.Contract.Name),
			len(c.Contract.Args),
			status,
		})
	}

	fmt.Fprintln(r.out, t.Render())
	fmt.Fprintln(r.out)

	pending := result.PendingCount()
	if pending == 0 {
		fmt.Fprintln(r.out, FormatSuccess("All contracts are already deployed on this chain"))
		return nil
	}
	fmt.Fprintf(r.out, "%d of %d contract(s) need deployment\n", pending, len(result.Contracts))
	return nil
}
