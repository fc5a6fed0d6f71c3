package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cfgsmith/cfgsmith/internal/schema"
	"github.com/cfgsmith/cfgsmith/internal/state"
)

var (
	setFile  string
	setScope string
)

var setCmd = &cobra.Command{
	Use:   "set <command> <value>",
	Short: "Set a command's value with full validation",
	Long: `Parse and validate a value for one command, then mark it included.

Without --file the validated config line is printed to stdout. With
--file the existing config is parsed first, the value applied on top,
and the file rewritten.

Examples:
  cfgsmith set sensitivity 2.5
  cfgsmith set cl_crosshairstyle 4 --file autoexec.cfg`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

var includeCmd = &cobra.Command{
	Use:   "include <command>...",
	Short: "Mark commands for inclusion in generated output",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runInclusion(args, true)
	},
}

var excludeCmd = &cobra.Command{
	Use:   "exclude <command>...",
	Short: "Drop commands from generated output, keeping their values",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runInclusion(args, false)
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(includeCmd)
	rootCmd.AddCommand(excludeCmd)

	for _, c := range []*cobra.Command{setCmd, includeCmd, excludeCmd} {
		c.Flags().StringVarP(&setFile, "file", "f", "", "config file to update in place")
		c.Flags().StringVar(&setScope, "scope", "", "scope for rewritten output (defaults to config)")
	}
}

func runSet(_ *cobra.Command, args []string) error {
	engine, err := GetApp().Engine(schemaDir)
	if err != nil {
		return err
	}

	if err := applyFile(engine); err != nil {
		return err
	}

	command, raw := args[0], args[1]
	if ok, msg := engine.TrySetValueFromString(command, raw, "cli"); !ok {
		return fmt.Errorf("set %s: %s", command, msg)
	}
	engine.SetIncluded(command, true, "cli")

	if setFile == "" {
		def, _ := engine.Definition(command)
		setting, _ := engine.GetSetting(command)
		fmt.Printf("%s %s\n", command, def.Type.FormatConfig(setting.Value))
		return nil
	}
	return rewriteFile(engine)
}

func runInclusion(commands []string, included bool) error {
	engine, err := GetApp().Engine(schemaDir)
	if err != nil {
		return err
	}

	if err := applyFile(engine); err != nil {
		return err
	}

	for _, command := range commands {
		if _, ok := engine.Definition(command); !ok {
			return fmt.Errorf("unknown command %q", command)
		}
		engine.SetIncluded(command, included, "cli")
	}

	if setFile == "" {
		return nil
	}
	return rewriteFile(engine)
}

// applyFile seeds the engine from --file when set. A missing file is fine;
// the rewrite creates it.
func applyFile(engine *state.ConfigState) error {
	if setFile == "" {
		return nil
	}
	text, err := os.ReadFile(setFile)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", setFile, err)
	}
	report := engine.ParseConfigFile(string(text), "cli")
	for _, lineErr := range report.Errors {
		fmt.Fprintf(os.Stderr, "%s:%d: %v\n", setFile, lineErr.Line, lineErr.Err)
	}
	return nil
}

func rewriteFile(engine *state.ConfigState) error {
	scope, err := outputScope(setScope)
	if err != nil {
		return err
	}
	if err := os.WriteFile(setFile, []byte(engine.GenerateConfigFile(scope)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", setFile, err)
	}
	return nil
}

// outputScope resolves a scope flag, falling back to the configured
// generate default.
func outputScope(flag string) (schema.Scope, error) {
	if flag == "" {
		return GetApp().Config.DefaultScope(), nil
	}
	return schema.ParseScope(flag)
}
