package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-tracker/internal/cli/render"
	"github.com/trebuchet-org/treb-tracker/internal/usecase"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	var (
		contract contractFlags
		block    string
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show where a contract is deployed",
		Long: `Look up the tracked deployment of a contract on the chain identified
by its genesis block hash. The contract is identified by the same name,
bytecode and constructor arguments used when it was tracked.`,
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

			result, err := app.ShowDeployment.Run(cmd.Context(), usecase.ShowDeploymentParams{
				BlockHash: blockHash,
				Contract:  contract.identity(),
			})
			if err != nil {
				return err
			}

			renderer := render.NewTrackingRenderer(cmd.OutOrStdout())
			if jsonOut {
				return renderer.RenderShowJSON(result)
			}
			return renderer.RenderShow(result)
		},
	}

	contract.register(cmd.Flags())
	cmd.Flags().StringVar(&block, "block", "", "Genesis block hash of the chain")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	_ = cmd.MarkFlagRequired("block")

	return cmd
}
