package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(_ *cobra.Command, _ []string) error {
	info := GetApp().BuildInfo
	fmt.Printf("cfgsmith %s\n", info.Version)
	if info.Commit != "" {
		fmt.Printf("  commit: %s\n", info.Commit)
	}
	if info.BuildDate != "" {
		fmt.Printf("  built:  %s\n", info.BuildDate)
	}
	return nil
}
