package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-tracker/internal/domain/models"
	"github.com/trebuchet-org/treb-tracker/internal/usecase"
	"gopkg.in/yaml.v3"
)

// OutputFormat selects how listings are written
type OutputFormat string

const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates an --output value
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case OutputTable, OutputJSON, OutputYAML:
		return f, nil
	case "":
		return OutputTable, nil
	default:
		return "", fmt.Errorf("invalid output format: %s (valid: table, json, yaml)", s)
	}
}

var (
	nameStyle    = color.New(color.FgGreen, color.Bold)
	keyStyle     = color.New(color.Faint)
	labelStyle   = color.New(color.FgWhite, color.Bold)
	addressStyle = color.New(color.FgCyan)
	chainHeader  = color.New(color.BgCyan, color.FgBlack, color.Bold)
)

// deploymentView is the machine readable form of a tracked deployment
type deploymentView struct {
	Chain       string `json:"chain" yaml:"chain"`
	Contract    string `json:"contract" yaml:"contract"`
	Address     string `json:"address" yaml:"address"`
	ContractKey string `json:"contractKey" yaml:"contractKey"`
}

func toView(d models.TrackedDeployment) deploymentView {
	return deploymentView{
		Chain:       d.ChainKey,
		Contract:    d.Record.Name,
		Address:     d.Record.Address.Hex(),
		ContractKey: d.ContractKey,
	}
}

// TrackingRenderer renders tracking database results
type TrackingRenderer struct {
	out io.Writer
}

// NewTrackingRenderer creates a new tracking renderer
func NewTrackingRenderer(out io.Writer) *TrackingRenderer {
	return &TrackingRenderer{out: out}
}

// RenderInit renders the result of creating the database
func (r *TrackingRenderer) RenderInit(result *usecase.InitTrackingResult) error {
	path := getRelativePath(result.Path)
	switch {
	case result.Reset:
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Reset tracking database at %s", path)))
	case result.Created:
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Created tracking database at %s", path)))
	case result.AlreadyExists:
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("Tracking database already exists at %s, left unchanged", path)))
	}
	return nil
}

// RenderTrack renders the result of tracking a deployment
func (r *TrackingRenderer) RenderTrack(result *usecase.TrackDeploymentResult) error {
	if result.CreatedDatabase {
		fmt.Fprintln(r.out, FormatSuccess("Created tracking database"))
	}

	verb := "Tracked"
	if !result.Inserted {
		verb = "Updated"
	}
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s %s at %s",
		verb,
		nameStyle.Sprint(result.Deployment.Record.Name),
		addressStyle.Sprint(result.Deployment.Record.Address.Hex()),
	)))
	r.renderKeys(result.Deployment.ChainKey, result.Deployment.ContractKey)
	return nil
}

// RenderShow renders a single deployment lookup
func (r *TrackingRenderer) RenderShow(result *usecase.ShowDeploymentResult) error {
	if !result.Found() {
		fmt.Fprintf(r.out, "%s is not tracked on this chain\n", nameStyle.Sprint(result.Contract.Name))
		r.renderKeys(result.ChainKey, result.ContractKey)
		return nil
	}

	labelStyle.Fprint(r.out, "Contract: ")
	nameStyle.Fprintln(r.out, result.Record.Name)
	labelStyle.Fprint(r.out, "Address:  ")
	addressStyle.Fprintln(r.out, result.Record.Address.Hex())
	r.renderKeys(result.ChainKey, result.ContractKey)
	return nil
}

// RenderShowJSON renders a single deployment lookup as JSON
func (r *TrackingRenderer) RenderShowJSON(result *usecase.ShowDeploymentResult) error {
	output := map[string]interface{}{
		"chain":       result.ChainKey,
		"contractKey": result.ContractKey,
		"contract":    result.Contract.Name,
		"found":       result.Found(),
	}
	if result.Found() {
		output["address"] = result.Record.Address.Hex()
	}
	return writeJSON(r.out, output)
}

// RenderList renders tracked deployments in the requested format
func (r *TrackingRenderer) RenderList(result *usecase.ListDeploymentsResult, format OutputFormat) error {
	views := lo.Map(result.Deployments, func(d models.TrackedDeployment, _ int) deploymentView {
		return toView(d)
	})

	switch format {
	case OutputJSON:
		return writeJSON(r.out, views)
	case OutputYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(views); err != nil {
			return err
		}
		return enc.Close()
	}

	if !result.DatabaseExists {
		fmt.Fprintln(r.out, "No tracking database found. Run 'treb-tracker init' to create one.")
		return nil
	}
	if len(result.Deployments) == 0 {
		fmt.Fprintln(r.out, "No deployments found")
		return nil
	}

	byChain := lo.GroupBy(result.Deployments, func(d models.TrackedDeployment) string {
		return d.ChainKey
	})
	chainKeys := lo.Uniq(lo.Map(result.Deployments, func(d models.TrackedDeployment, _ int) string {
		return d.ChainKey
	}))

	for i, chainKey := range chainKeys {
		if i > 0 {
			fmt.Fprintln(r.out)
		}
		fmt.Fprintln(r.out, chainHeader.Sprintf(" chain %s ", shortKey(chainKey)))
		fmt.Fprintln(r.out, renderDeploymentTable(byChain[chainKey]))
	}

	fmt.Fprintf(r.out, "\nTotal: %d deployment(s)\n", len(result.Deployments))
	return nil
}

func (r *TrackingRenderer) renderKeys(chainKey, contractKey string) {
	fmt.Fprintln(r.out, keyStyle.Sprintf("  chain key:    %s", chainKey))
	fmt.Fprintln(r.out, keyStyle.Sprintf("  contract key: %s", contractKey))
}

func renderDeploymentTable(deployments []models.TrackedDeployment) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateRows = false
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft},
	})

	t.AppendHeader(table.Row{"CONTRACT", "ADDRESS", "KEY"})
	for _, d := range deployments {
		t.AppendRow(table.Row{
			nameStyle.Sprint(d.Record.Name),
			addressStyle.Sprint(d.Record.Address.Hex()),
			keyStyle.Sprint(shortKey(d.ContractKey)),
		})
	}
	return t.Render()
}

// shortKey abbreviates a 0x-prefixed digest to 0x1234…abcd
func shortKey(key string) string {
	if len(key) <= 14 {
		return key
	}
	return key[:6] + "…" + key[len(key)-4:]
}

func writeJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}
