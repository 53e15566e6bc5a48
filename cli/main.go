package main

import (
	"fmt"
	"os"

	"github.com/trebuchet-org/treb-tracker/internal/cli"
	"github.com/trebuchet-org/treb-tracker/internal/cli/render"
	"github.com/trebuchet-org/treb-tracker/internal/config"
)

// Set via -ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	config.SetBuildFlags(version, commit, date)

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if debug, _ := rootCmd.PersistentFlags().GetBool("debug"); debug {
			fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		}
		fmt.Fprintln(os.Stderr, render.FormatError(err))
		os.Exit(1)
	}
}
