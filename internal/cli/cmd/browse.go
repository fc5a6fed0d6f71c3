package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/cfgsmith/cfgsmith/internal/cli/model"
	"github.com/cfgsmith/cfgsmith/internal/cli/styles"
)

var browseFile string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse and edit settings interactively",
	Long: `Interactive settings browser: filter commands, edit values with typed
validation, and toggle which settings land in generated output.

With --file the config is loaded first and, if anything changed,
rewritten on exit.

Examples:
  cfgsmith browse
  cfgsmith browse --file autoexec.cfg`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().StringVarP(&browseFile, "file", "f", "", "config file to edit")
	browseCmd.Flags().StringVar(&generateScope, "scope", "", "scope for rewritten output (defaults to config)")
}

func runBrowse(_ *cobra.Command, _ []string) error {
	app := GetApp()
	engine, err := app.Engine(schemaDir)
	if err != nil {
		return err
	}

	if browseFile != "" {
		text, err := os.ReadFile(browseFile)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("read %s: %w", browseFile, err)
		}
		if err == nil {
			report := engine.ParseConfigFile(string(text), "browse")
			for _, lineErr := range report.Errors {
				fmt.Fprintf(os.Stderr, "%s:%d: %v\n", browseFile, lineErr.Line, lineErr.Err)
			}
		}
	}

	theme := styles.NewTheme(styles.DefaultDarkPalette())
	m := model.NewBrowseModel(theme, engine, app.Config.Browse.ShowDescriptions)

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run browser: %w", err)
	}

	browseModel, ok := finalModel.(model.BrowseModel)
	if !ok {
		return fmt.Errorf("unexpected model type")
	}

	if browseFile != "" && browseModel.Dirty() {
		scope, err := outputScope(generateScope)
		if err != nil {
			return err
		}
		if err := os.WriteFile(browseFile, []byte(engine.GenerateConfigFile(scope)), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", browseFile, err)
		}
		fmt.Printf("wrote %s\n", browseFile)
	}
	return nil
}
