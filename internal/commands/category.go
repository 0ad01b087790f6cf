package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/budgetbuddy-dev/budgetbuddy/internal/model"
	"github.com/budgetbuddy-dev/budgetbuddy/internal/render"
)

func newCategoryCommand(configPath *string) *cobra.Command {
	catCmd := &cobra.Command{
		Use:   "category",
		Short: "Manage categories",
	}
	catCmd.AddCommand(newCategoryAddCommand(configPath), newCategoryListCommand(configPath))
	return catCmd
}

func newCategoryAddCommand(configPath *string) *cobra.Command {
	var f form

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			catID, err := submitSheet(a.ledger, model.AddCategorySheet, f)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.Success("Added category "+catID))
			return nil
		},
	}

	cmd.Flags().StringVar(&f.Name, "name", "", "category name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&f.Icon, "icon", "", "display glyph")
	cmd.Flags().StringVar(&f.Color, "color", "", "display color, e.g. #4caf50")
	cmd.Flags().BoolVar(&f.IsIncome, "income", false, "count transactions in this category as income")

	return cmd
}

func newCategoryListCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			return render.Categories(cmd.OutOrStdout(), a.ledger.Categories())
		},
	}
}
