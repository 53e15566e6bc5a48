package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-tracker/internal/cli/render"
	"github.com/trebuchet-org/treb-tracker/internal/usecase"
)

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the deployment tracking database",
		Long: `Create an empty .treb/tracking.toml in the project root.

If the database already holds deployments you are asked before it is
reset. Use --force to reset without asking.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.InitTracking.Run(cmd.Context(), usecase.InitTrackingParams{Force: force})
			if err != nil {
				return err
			}

			return render.NewTrackingRenderer(cmd.OutOrStdout()).RenderInit(result)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Reset an existing database without confirmation")

	return cmd
}
