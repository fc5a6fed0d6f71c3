package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cfgsmith/cfgsmith/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage cfgsmith configuration",
	Long:  `View the configuration file location and effective settings.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(_ *cobra.Command, _ []string) error {
		path, err := config.GetConfigFile()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg := GetApp().Config

	fmt.Printf("schema_dir:          %s\n", cfg.SchemaDir)
	fmt.Printf("database.path:       %s\n", cfg.Database.Path)
	fmt.Printf("logging.level:       %s\n", cfg.Logging.Level)
	fmt.Printf("logging.format:      %s\n", cfg.Logging.Format)
	fmt.Printf("generate.scope:      %s\n", cfg.Generate.DefaultScope)
	fmt.Printf("browse.page_size:    %d\n", cfg.Browse.PageSize)
	fmt.Printf("browse.descriptions: %v\n", cfg.Browse.ShowDescriptions)
	return nil
}
