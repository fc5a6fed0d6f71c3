package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/cfgsmith/cfgsmith/internal/schema"
	"github.com/cfgsmith/cfgsmith/internal/schema/loader"
)

var schemaOut string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Build and inspect schema files",
}

var schemaImportCmd = &cobra.Command{
	Use:   "import <dump-file>",
	Short: "Classify a console dump into per-scope schema files",
	Long: `Read a raw console listing ("[Console] name : default : flags :
description" lines), classify each entry into a value kind, split the
result by scope, and write one schema JSON file per scope.

Examples:
  cfgsmith schema import cvars.txt --out ./schema`,
	Args: cobra.ExactArgs(1),
	RunE: runSchemaImport,
}

var schemaValidateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Load a schema directory and report what it contains",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSchemaValidate,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.AddCommand(schemaImportCmd)
	schemaCmd.AddCommand(schemaValidateCmd)

	schemaImportCmd.Flags().StringVar(&schemaOut, "out", ".", "directory to write the per-scope schema files")
}

func runSchemaImport(_ *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open %s: %w", args[0], err)
	}
	defer func() { _ = f.Close() }()

	defs, err := loader.ParseConsoleDump(f, time.Now().UTC())
	if err != nil {
		return err
	}

	byScope := make(map[schema.Scope][]schema.CommandDefinition)
	for _, def := range defs {
		byScope[def.Scope] = append(byScope[def.Scope], def.CommandDefinition)
	}

	if err := os.MkdirAll(schemaOut, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", schemaOut, err)
	}
	for _, scope := range schema.Scopes() {
		commands := byScope[scope]
		if len(commands) == 0 {
			continue
		}
		data, err := json.MarshalIndent(commands, "", "  ")
		if err != nil {
			return fmt.Errorf("encode %s schema: %w", scope, err)
		}
		path := filepath.Join(schemaOut, string(scope)+".json")
		if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Printf("%s: %d commands\n", path, len(commands))
	}
	return nil
}

func runSchemaValidate(_ *cobra.Command, args []string) error {
	app := GetApp()

	dir := app.Config.SchemaDir
	if schemaDir != "" {
		dir = schemaDir
	}
	if len(args) == 1 {
		dir = args[0]
	}

	defs, err := loader.LoadDir(app.Context(), dir)
	if err != nil {
		return err
	}

	byScope := make(map[schema.Scope]int)
	byKind := make(map[schema.ValueKind]int)
	for _, def := range defs {
		byScope[def.Scope]++
		byKind[def.Type.Kind()]++
	}

	fmt.Printf("%s: %d commands\n", dir, len(defs))
	for _, scope := range schema.Scopes() {
		if n := byScope[scope]; n > 0 {
			fmt.Printf("  %-14s %d\n", scope, n)
		}
	}
	kinds := make([]schema.ValueKind, 0, len(byKind))
	for kind := range byKind {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	fmt.Println("kinds:")
	for _, kind := range kinds {
		fmt.Printf("  %-14s %d\n", kind, byKind[kind])
	}
	return nil
}
