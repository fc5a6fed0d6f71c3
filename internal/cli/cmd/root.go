// Package cmd provides Cobra CLI commands for cfgsmith.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cfgsmith/cfgsmith/internal/cli"
)

var (
	app       *cli.App
	buildInfo cli.BuildInfo
	schemaDir string

	rootCmd = &cobra.Command{
		Use:   "cfgsmith",
		Short: "Typed console-variable config management for CS2",
		Long: `Cfgsmith - a typed settings workbench for Counter-Strike 2 configs.

Every console variable is described by a typed schema (bool, int, float,
enum, bitmask, vectors, and more), so values are parsed, validated, and
formatted instead of being pushed around as raw strings.

Use the subcommands to inspect the loaded schema, edit values with full
validation, round-trip .cfg files, snapshot profiles, or classify a raw
console dump into schema definitions.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&schemaDir, "schema-dir", "", "directory of per-scope schema JSON files (overrides config)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info cli.BuildInfo) {
	buildInfo = info
}
