package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cfgsmith/cfgsmith/internal/schema"
)

var (
	listJSON     bool
	listScope    string
	listIncluded bool
	listFilter   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List loaded commands and their current settings",
	Long: `List every command in the loaded schema with its kind, scope, current
value, and inclusion flag, in schema-declared order.

Examples:
  cfgsmith list                      # Everything
  cfgsmith list --scope player       # Player-scoped commands only
  cfgsmith list --included           # Only settings marked for output
  cfgsmith list --filter sensitivity # Substring match on command name`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	listCmd.Flags().StringVar(&listScope, "scope", "all", "scope filter (player, server, shared, uncategorized, all)")
	listCmd.Flags().BoolVar(&listIncluded, "included", false, "show only included settings")
	listCmd.Flags().StringVar(&listFilter, "filter", "", "substring filter on command name")
}

// listEntry is the JSON shape of one listed setting.
type listEntry struct {
	Command  string           `json:"command"`
	Kind     schema.ValueKind `json:"kind"`
	Scope    schema.Scope     `json:"scope"`
	Value    string           `json:"value"`
	Included bool             `json:"included"`
}

func runList(_ *cobra.Command, _ []string) error {
	engine, err := GetApp().Engine(schemaDir)
	if err != nil {
		return err
	}

	scope, err := schema.ParseScope(listScope)
	if err != nil {
		return err
	}

	var entries []listEntry
	for _, view := range engine.Settings() {
		if !view.Scope.Matches(scope) {
			continue
		}
		if listIncluded && !view.Included {
			continue
		}
		if listFilter != "" && !strings.Contains(view.Command, listFilter) {
			continue
		}
		entries = append(entries, listEntry{
			Command:  view.Command,
			Kind:     view.Kind,
			Scope:    view.Scope,
			Value:    view.Def.Type.FormatConfig(view.Value),
			Included: view.Included,
		})
	}

	if listJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COMMAND\tKIND\tSCOPE\tVALUE\tINCLUDED")
	for _, e := range entries {
		included := ""
		if e.Included {
			included = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.Command, e.Kind, e.Scope, e.Value, included)
	}
	return w.Flush()
}
