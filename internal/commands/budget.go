package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/budgetbuddy-dev/budgetbuddy/internal/model"
	"github.com/budgetbuddy-dev/budgetbuddy/internal/render"
)

func newBudgetCommand(configPath *string) *cobra.Command {
	budgetCmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage monthly budgets",
	}
	budgetCmd.AddCommand(newBudgetSetCommand(configPath))
	return budgetCmd
}

func newBudgetSetCommand(configPath *string) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "set <amount>",
		Short: "Set the budget for a month, replacing any existing one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := resolveMonth(month, 0)
			if err != nil {
				return err
			}
			a, err := openApp(cmd, *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := submitSheet(a.ledger, model.SetBudgetSheet, form{Amount: args[0], Month: key}); err != nil {
				return err
			}
			b, _ := a.ledger.Budget(key)
			fmt.Fprintln(cmd.OutOrStdout(), render.Success(fmt.Sprintf("Budget for %s set to %s", key.Label(), a.money.Format(b.Amount))))
			return nil
		},
	}

	addMonthFlag(cmd, &month)

	return cmd
}
