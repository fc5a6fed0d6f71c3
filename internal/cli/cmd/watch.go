package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cfgsmith/cfgsmith/internal/watcher"
)

var watchOutput string

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-validate a config file whenever it changes",
	Long: `Watch a config file and re-apply it through the typed schema on every
save, reporting rejected lines as they appear. With --output the
normalized config is rewritten after each change.

Runs until interrupted.

Examples:
  cfgsmith watch autoexec.cfg
  cfgsmith watch autoexec.cfg -o normalized.cfg`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "rewrite normalized output after each change")
	watchCmd.Flags().StringVar(&generateScope, "scope", "", "scope for normalized output (defaults to config)")
}

func runWatch(_ *cobra.Command, args []string) error {
	appCtx := GetApp()
	engine, err := appCtx.Engine(schemaDir)
	if err != nil {
		return err
	}
	scope, err := outputScope(generateScope)
	if err != nil {
		return err
	}

	path := args[0]
	apply := func(text string) {
		engine.ResetToDefaults()
		report := engine.ParseConfigFile(text, "watch")
		fmt.Printf("%s: applied %d, skipped %d, rejected %d\n",
			path, report.Applied, report.Skipped, len(report.Errors))
		for _, e := range report.Errors {
			fmt.Fprintf(os.Stderr, "%s:%d: %q: %v\n", path, e.Line, e.Text, e.Err)
		}
		if watchOutput != "" {
			if err := os.WriteFile(watchOutput, []byte(engine.GenerateConfigFile(scope)), 0o644); err != nil {
				fmt.Fprintf(os.Stderr, "write %s: %v\n", watchOutput, err)
			}
		}
	}

	// Apply once before watching so the first report does not wait for a
	// save.
	if text, err := os.ReadFile(path); err == nil {
		apply(string(text))
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read %s: %w", path, err)
	}

	w, err := watcher.New(path, apply)
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	ctx, stop := signal.NotifyContext(appCtx.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
