package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-tracker/internal/cli/render"
	"github.com/trebuchet-org/treb-tracker/internal/usecase"
)

// NewPlanCmd creates the plan command
func NewPlanCmd() *cobra.Command {
	var (
		block     string
		artifacts string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show which compiled contracts still need deploying",
		Long: `Compare the compiled artifacts (*.bin) against the tracking database and
report, per contract, whether a deployment can be reused or is still needed.

Constructor arguments come from [deployment.args] in treb.toml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			blockHash, err := parseBlockHash(block)
			if err != nil {
				return err
			}

			result, err := app.PlanDeployment.Run(cmd.Context(), usecase.PlanDeploymentParams{
				BlockHash:    blockHash,
				ArtifactsDir: artifacts,
			})
			if err != nil {
				return err
			}

			return render.NewPlanRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().StringVar(&block, "block", "", "Genesis block hash of the chain")
	cmd.Flags().StringVar(&artifacts, "artifacts", "", "Artifacts directory (defaults to sources.artifacts)")
	_ = cmd.MarkFlagRequired("block")

	return cmd
}
