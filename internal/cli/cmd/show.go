package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cfgsmith/cfgsmith/internal/schema"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <command>",
	Short: "Show one command's definition and current setting",
	Long: `Display the full definition of a single command: its value kind, console
metadata, typed default, and the current session value.

Examples:
  cfgsmith show sensitivity
  cfgsmith show cl_crosshairstyle --json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVar(&showJSON, "json", false, "output as JSON")
}

func runShow(_ *cobra.Command, args []string) error {
	engine, err := GetApp().Engine(schemaDir)
	if err != nil {
		return err
	}

	name := args[0]
	def, ok := engine.Definition(name)
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}
	setting, _ := engine.GetSetting(name)

	if showJSON {
		out := struct {
			schema.CommandDefinition
			Scope    schema.Scope `json:"scope"`
			Value    string       `json:"value"`
			Included bool         `json:"included"`
		}{
			CommandDefinition: def.CommandDefinition,
			Scope:             def.Scope,
			Value:             def.Type.FormatConfig(setting.Value),
			Included:          setting.Included,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("Command:  %s\n", def.Command)
	fmt.Printf("Kind:     %s\n", def.Type.Kind())
	fmt.Printf("Scope:    %s\n", def.Scope)
	if meta := def.Type.Metadata(); meta != nil {
		if meta.Label != "" {
			fmt.Printf("Label:    %s\n", meta.Label)
		}
		if meta.HelperText != "" {
			fmt.Printf("Help:     %s\n", meta.HelperText)
		}
		if meta.RequiresCheats {
			fmt.Println("Cheats:   required (sv_cheats 1)")
		}
	}
	if def.Console.Description != "" {
		fmt.Printf("Console:  %s\n", def.Console.Description)
	}
	if len(def.Console.Flags) > 0 {
		fmt.Printf("Flags:    %s\n", strings.Join(def.Console.Flags, ", "))
	}
	fmt.Printf("Default:  %s\n", def.Type.FormatConfig(def.DefaultValue()))
	fmt.Printf("Value:    %s\n", def.Type.FormatConfig(setting.Value))
	fmt.Printf("Included: %v\n", setting.Included)
	return nil
}
