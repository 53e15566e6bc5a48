package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-tracker/internal/cli/render"
	"github.com/trebuchet-org/treb-tracker/internal/usecase"
)

// NewCompileCmd creates the compile command
func NewCompileCmd() *cobra.Command {
	var compiler string

	cmd := &cobra.Command{
		Use:   "compile [-- OPTIONS...]",
		Short: "Compile the project's contracts",
		Long: `Compile the contracts matched by sources.smart_contracts into
sources.artifacts.

solc and solcjs are supported out of the box. Any other compiler needs its
full argument list, either after -- or as compiler.options in treb.toml.`,
		Example: `  treb-tracker compile
  treb-tracker compile --compiler solcjs -- --bin --abi -o out contracts/Token.sol`,
		Args: func(cmd *cobra.Command, args []string) error {
			if dash := cmd.ArgsLenAtDash(); dash > 0 || (dash < 0 && len(args) > 0) {
				return fmt.Errorf("compiler options must follow --")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			var options []string
			if dash := cmd.ArgsLenAtDash(); dash >= 0 {
				options = args[dash:]
			}

			result, err := app.CompileProject.Run(cmd.Context(), usecase.CompileProjectParams{
				Compiler: compiler,
				Options:  options,
			})
			if err != nil {
				return err
			}

			return render.NewCompileRenderer(cmd.OutOrStdout(), app.Config.Debug).Render(result)
		},
	}

	cmd.Flags().StringVar(&compiler, "compiler", "", "Compiler to run (defaults to compiler.cmd)")

	return cmd
}
