package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-tracker/internal/cli/render"
	"github.com/trebuchet-org/treb-tracker/internal/usecase"
)

// NewConfigCmd creates the config command
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage treb.toml",
		Long: `Manage project settings stored in treb.toml

Available subcommands:
  config           Show current config
  config set       Set a config value

When run without subcommands, displays the current config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowConfig.Run(cmd.Context())
			if err != nil {
				return err
			}

			return render.NewConfigRenderer(cmd.OutOrStdout()).RenderConfig(result)
		},
	}

	cmd.AddCommand(NewConfigSetCmd())

	return cmd
}

// NewConfigSetCmd creates the config set subcommand
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a config value",
		Long: `Set a value in treb.toml, creating the file if needed.

Available keys:
  compiler.cmd                 compiler to run (solc, solcjs, ...)
  compiler.options             full compiler argument list
  sources.artifacts            artifacts directory
  sources.smart_contracts      contract source globs
  deployment.args.<Contract>   constructor arguments for a contract

List values are given comma separated or as a TOML array.

The file is rewritten on every set: other values are kept, but comments
and custom formatting in treb.toml are lost.

Examples:
  treb-tracker config set compiler.cmd solcjs
  treb-tracker config set sources.smart_contracts "contracts/*.sol,lib/*.sol"
  treb-tracker config set deployment.args.Token '["1000", "TKN"]'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.SetConfig.Run(cmd.Context(), usecase.SetConfigParams{
				Key:   args[0],
				Value: args[1],
			})
			if err != nil {
				return err
			}

			return render.NewConfigRenderer(cmd.OutOrStdout()).RenderSet(result)
		},
	}
}
