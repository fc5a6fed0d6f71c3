package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a config file and report what it applies",
	Long: `Apply a config file against the loaded schema and report the result:
how many directives applied, how many named commands outside the schema,
and every line the typed validation rejected.

A non-zero exit status indicates at least one rejected line.

Examples:
  cfgsmith parse autoexec.cfg
  cfgsmith parse autoexec.cfg --json`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "output the report as JSON")
}

func runParse(_ *cobra.Command, args []string) error {
	engine, err := GetApp().Engine(schemaDir)
	if err != nil {
		return err
	}

	text, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}
	report := engine.ParseConfigFile(string(text), "cli")

	if parseJSON {
		type lineError struct {
			Line  int    `json:"line"`
			Text  string `json:"text"`
			Error string `json:"error"`
		}
		out := struct {
			Applied int         `json:"applied"`
			Skipped int         `json:"skipped"`
			Errors  []lineError `json:"errors"`
		}{Applied: report.Applied, Skipped: report.Skipped}
		for _, e := range report.Errors {
			out.Errors = append(out.Errors, lineError{Line: e.Line, Text: e.Text, Error: e.Err.Error()})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
	} else {
		fmt.Printf("applied %d, skipped %d unknown, %d rejected\n",
			report.Applied, report.Skipped, len(report.Errors))
		for _, e := range report.Errors {
			fmt.Fprintf(os.Stderr, "%s:%d: %q: %v\n", args[0], e.Line, e.Text, e.Err)
		}
	}

	if len(report.Errors) > 0 {
		return fmt.Errorf("%d line(s) rejected", len(report.Errors))
	}
	return nil
}
