package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/treb-tracker/internal/adapters/progress"
	"github.com/trebuchet-org/treb-tracker/internal/app"
	"github.com/trebuchet-org/treb-tracker/internal/config"
	"github.com/trebuchet-org/treb-tracker/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "treb-tracker",
		Short: "Track smart contract deployments per chain state",
		Long: `treb-tracker remembers which contracts were deployed where.

Deployments are keyed by a hash of the chain's genesis block and a hash of
the contract's name, bytecode and constructor arguments, and stored in
.treb/tracking.toml next to treb.toml. Re-running a deployment against the
same chain can then reuse the recorded address instead of deploying again.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot)
			bindGlobalFlags(v, cmd)

			appInstance, err := app.InitApp(v, newProgressSink(v, cmd))
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			cmd.SetContext(context.WithValue(cmd.Context(), appKey, appInstance))
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	for _, c := range []*cobra.Command{
		NewTrackCmd(),
		NewShowCmd(),
		NewListCmd(),
		NewPlanCmd(),
		NewCompileCmd(),
	} {
		c.GroupID = "main"
		rootCmd.AddCommand(c)
	}

	for _, c := range []*cobra.Command{
		NewInitCmd(),
		NewConfigCmd(),
	} {
		c.GroupID = "management"
		rootCmd.AddCommand(c)
	}

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// bindGlobalFlags binds command flags to viper
func bindGlobalFlags(v *viper.Viper, cmd *cobra.Command) {
	// Only bind flags that exist and have been changed
	if f := cmd.Flag("debug"); f != nil && f.Changed {
		v.Set("debug", f.Value.String())
	}
	if f := cmd.Flag("non-interactive"); f != nil && f.Changed {
		v.Set("non_interactive", f.Value.String())
	}
}

// newProgressSink shows a spinner unless output is meant for machines
func newProgressSink(v *viper.Viper, cmd *cobra.Command) usecase.ProgressSink {
	if v.GetBool("non_interactive") {
		return progress.NewNopSink()
	}
	if f := cmd.Flag("output"); f != nil && f.Value.String() != "table" {
		return progress.NewNopSink()
	}
	if f := cmd.Flag("json"); f != nil && f.Changed {
		return progress.NewNopSink()
	}
	return progress.NewSpinnerSink()
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
