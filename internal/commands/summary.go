package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/budgetbuddy-dev/budgetbuddy/internal/model"
	"github.com/budgetbuddy-dev/budgetbuddy/internal/render"
	"github.com/budgetbuddy-dev/budgetbuddy/internal/summary"
)

func newSummaryCommand(configPath *string) *cobra.Command {
	var month string
	var offset int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show a month's budget, totals and transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := resolveMonth(month, offset)
			if err != nil {
				return err
			}

			a, err := openApp(cmd, *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			m := summary.NewMemo(a.ledger).Month(key)
			out := cmd.OutOrStdout()
			if err := render.Summary(out, m, a.money); err != nil {
				return err
			}
			fmt.Fprintln(out)
			return render.Transactions(out, m, a.ledger.CategoryService(), a.money)
		},
	}

	addMonthFlag(cmd, &month)
	cmd.Flags().IntVar(&offset, "offset", 0, "months to move from --month (negative goes back)")

	return cmd
}

func addMonthFlag(cmd *cobra.Command, month *string) {
	cmd.Flags().StringVar(month, "month", "", "month as YYYY-MM (default current month)")
}

// resolveMonth parses month, defaulting to the current month, and moves it
// by offset months.
func resolveMonth(month string, offset int) (model.MonthKey, error) {
	key := model.CurrentMonth()
	if month != "" {
		var err error
		if key, err = model.ParseMonthKey(month); err != nil {
			return model.MonthKey{}, err
		}
	}
	return key.Add(offset), nil
}
