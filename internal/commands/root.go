package commands

import (
	"github.com/spf13/cobra"

	"github.com/budgetbuddy-dev/budgetbuddy/internal/buildinfo"
	"github.com/budgetbuddy-dev/budgetbuddy/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "budgetbuddy",
		Short:   "Personal monthly budget ledger",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "path to budgetbuddy.yaml")

	rootCmd.AddCommand(
		newInitCommand(&configPath),
		newSummaryCommand(&configPath),
		newTxCommand(&configPath),
		newCategoryCommand(&configPath),
		newBudgetCommand(&configPath),
	)

	return rootCmd
}
