package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cfgsmith/cfgsmith/internal/store"
)

var profileFrom string

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Snapshot and restore named setting profiles",
	Long: `Profiles are named snapshots of the setting table stored in the local
database. Save captures every setting's value and inclusion flag; load
restores a snapshot on top of schema defaults.`,
}

var profileSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the current state as a profile",
	Long: `Snapshot the setting table under a name, replacing any existing
profile with that name.

Examples:
  cfgsmith profile save --from autoexec.cfg main
  cfgsmith profile save scratch`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileSave,
}

var profileLoadCmd = &cobra.Command{
	Use:   "load <name>",
	Short: "Restore a profile and emit its config",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileLoad,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved profiles",
	RunE:  runProfileList,
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileDelete,
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSaveCmd)
	profileCmd.AddCommand(profileLoadCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileDeleteCmd)

	profileSaveCmd.Flags().StringVar(&profileFrom, "from", "", "seed state from a config file before saving")
	profileLoadCmd.Flags().StringVar(&generateScope, "scope", "", "scope for the emitted config (defaults to config)")
	profileLoadCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "write the restored config to a file")
}

func runProfileSave(_ *cobra.Command, args []string) error {
	app := GetApp()
	engine, err := app.Engine(schemaDir)
	if err != nil {
		return err
	}

	if profileFrom != "" {
		text, err := os.ReadFile(profileFrom)
		if err != nil {
			return fmt.Errorf("read %s: %w", profileFrom, err)
		}
		report := engine.ParseConfigFile(string(text), "cli")
		for _, lineErr := range report.Errors {
			fmt.Fprintf(os.Stderr, "%s:%d: %v\n", profileFrom, lineErr.Line, lineErr.Err)
		}
	}

	db, err := app.Store()
	if err != nil {
		return err
	}

	var saved []store.SavedSetting
	for _, view := range engine.Settings() {
		saved = append(saved, store.SavedSetting{
			Command:  view.Command,
			Value:    view.Def.Type.FormatConfig(view.Value),
			Included: view.Included,
		})
	}
	if err := db.SaveProfile(app.Context(), args[0], saved); err != nil {
		return err
	}
	fmt.Printf("saved profile %q (%d settings)\n", args[0], len(saved))
	return nil
}

func runProfileLoad(_ *cobra.Command, args []string) error {
	app := GetApp()
	engine, err := app.Engine(schemaDir)
	if err != nil {
		return err
	}
	db, err := app.Store()
	if err != nil {
		return err
	}

	saved, err := db.LoadProfile(app.Context(), args[0])
	if err != nil {
		return err
	}

	engine.ResetToDefaults()
	for _, s := range saved {
		if ok, msg := engine.TrySetValueFromString(s.Command, s.Value, "profile"); !ok {
			fmt.Fprintf(os.Stderr, "profile %s: %s: %s\n", args[0], s.Command, msg)
			continue
		}
		engine.SetIncluded(s.Command, s.Included, "profile")
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

func runProfileList(_ *cobra.Command, _ []string) error {
	app := GetApp()
	db, err := app.Store()
	if err != nil {
		return err
	}
	profiles, err := db.ListProfiles(app.Context())
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		fmt.Println("no profiles saved")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCREATED\tUPDATED")
	for _, p := range profiles {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name,
			p.CreatedAt.Format("2006-01-02 15:04"),
			p.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func runProfileDelete(_ *cobra.Command, args []string) error {
	app := GetApp()
	db, err := app.Store()
	if err != nil {
		return err
	}
	if err := db.DeleteProfile(app.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("deleted profile %q\n", args[0])
	return nil
}
