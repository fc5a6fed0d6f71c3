package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	generateScope  string
	generateOutput string
	generateFrom   string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate config text from the current state",
	Long: `Emit config text for a scope: one "command value" line per included
setting, in schema-declared order. Output is deterministic.

Examples:
  cfgsmith generate --from autoexec.cfg               # normalize a file to stdout
  cfgsmith generate --from in.cfg --scope player -o player.cfg`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&generateScope, "scope", "", "scope to emit (defaults to config)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "write to file instead of stdout")
	generateCmd.Flags().StringVar(&generateFrom, "from", "", "seed state from an existing config file first")
}

func runGenerate(_ *cobra.Command, _ []string) error {
	engine, err := GetApp().Engine(schemaDir)
	if err != nil {
		return err
	}

	if generateFrom != "" {
		text, err := os.ReadFile(generateFrom)
		if err != nil {
			return fmt.Errorf("read %s: %w", generateFrom, err)
		}
		report := engine.ParseConfigFile(string(text), "cli")
		for _, lineErr := range report.Errors {
			fmt.Fprintf(os.Stderr, "%s:%d: %v\n", generateFrom, lineErr.Line, lineErr.Err)
		}
	}

	scope, err := outputScope(generateScope)
	if err != nil {
		return err
	}
	text := engine.GenerateConfigFile(scope)

	if generateOutput == "" {
		fmt.Print(text)
		return nil
	}
	if err := os.WriteFile(generateOutput, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", generateOutput, err)
	}
	return nil
}
