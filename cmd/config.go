package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spindlewrit/spindlewrit/internal/cli"
	"github.com/spindlewrit/spindlewrit/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show effective configuration",
	Long: `Show the effective Spindlewrit configuration.

Displays defaults merged with .spindlewrit.yaml from the current
directory if present.`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println(cli.HeaderBox().Render(cli.StyleTitle.Render("Spindlewrit configuration")))
	fmt.Println()

	if _, err := os.Stat(config.FileName); os.IsNotExist(err) {
		fmt.Printf("No %s found (using defaults)\n\n", config.FileName)
	}

	fmt.Printf("  model:         %s\n", cfg.Model)
	fmt.Printf("  gemmaBaseURL:  %s\n", cfg.GemmaBaseURL)
	fmt.Printf("  taskstoreURL:  %s\n", cfg.TaskstoreURL)
	fmt.Printf("  defaultType:   %s\n", cfg.DefaultType)

	return nil
}
