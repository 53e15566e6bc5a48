package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-tracker/internal/cli/render"
	"github.com/trebuchet-org/treb-tracker/internal/usecase"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var (
		block  string
		all    bool
		output string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tracked deployments",
		Long: `List every deployment tracked for a chain, or for all chains with --all.

A missing tracking database lists nothing.`,
		Example: `  # List deployments on one chain
  treb-tracker list --block 0xd4e5...8fa3

  # Every chain, as YAML
  treb-tracker list --all --output yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			format, err := render.ParseOutputFormat(output)
			if err != nil {
				return err
			}

			params := usecase.ListDeploymentsParams{All: all}
			if !all {
				if block == "" {
					return fmt.Errorf("either --block or --all is required")
				}
				if params.BlockHash, err = parseBlockHash(block); err != nil {
					return err
				}
			}

			result, err := app.ListDeployments.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			return render.NewTrackingRenderer(cmd.OutOrStdout()).RenderList(result, format)
		},
	}

	cmd.Flags().StringVar(&block, "block", "", "Genesis block hash of the chain")
	cmd.Flags().BoolVar(&all, "all", false, "List deployments on every chain")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format (table, json, yaml)")
	cmd.MarkFlagsMutuallyExclusive("block", "all")

	return cmd
}
