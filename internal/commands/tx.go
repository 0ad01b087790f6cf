package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/budgetbuddy-dev/budgetbuddy/internal/model"
	"github.com/budgetbuddy-dev/budgetbuddy/internal/render"
	"github.com/budgetbuddy-dev/budgetbuddy/internal/summary"
)

func newTxCommand(configPath *string) *cobra.Command {
	txCmd := &cobra.Command{
		Use:   "tx",
		Short: "Record and manage transactions",
	}
	txCmd.AddCommand(
		newTxAddCommand(configPath),
		newTxEditCommand(configPath),
		newTxDeleteCommand(configPath),
		newTxListCommand(configPath),
	)
	return txCmd
}

func addTxFlags(cmd *cobra.Command, f *form, note *string) {
	cmd.Flags().StringVar(&f.Amount, "amount", "", "amount, always positive")
	cmd.Flags().StringVar(&f.Category, "category", "", "category id or name")
	cmd.Flags().StringVar(&f.Date, "date", "", "date as YYYY-MM-DD")
	cmd.Flags().StringVar(note, "note", "", "optional note")
}

func newTxAddCommand(configPath *string) *cobra.Command {
	var f form
	var note string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f.Note = &note
			a, err := openApp(cmd, *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			txnID, err := submitSheet(a.ledger, model.AddTransactionSheet, f)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.Success("Added transaction "+txnID))
			return nil
		},
	}

	addTxFlags(cmd, &f, &note)
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func newTxEditCommand(configPath *string) *cobra.Command {
	var f form
	var note string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("note") {
				f.Note = &note
			}
			a, err := openApp(cmd, *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			txnID, err := submitSheet(a.ledger, model.EditTransactionSheet(args[0]), f)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.Success("Updated transaction "+txnID))
			return nil
		},
	}

	addTxFlags(cmd, &f, &note)

	return cmd
}

func newTxDeleteCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			_, existed := a.ledger.Transaction(args[0])
			if err := a.ledger.DeleteTransaction(args[0]); err != nil {
				return err
			}
			if !existed {
				fmt.Fprintln(cmd.OutOrStdout(), render.SubtleStyle.Render("No transaction "+args[0]))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.Success("Deleted transaction "+args[0]))
			return nil
		},
	}
}

func newTxListCommand(configPath *string) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a month's transactions, latest first",
		Args:  cobra.NoArgs,
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

			m := summary.Derive(a.ledger.Snapshot(), key)
			return render.Transactions(cmd.OutOrStdout(), m, a.ledger.CategoryService(), a.money)
		},
	}

	addMonthFlag(cmd, &month)

	return cmd
}
