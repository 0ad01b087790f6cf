package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/budgetbuddy-dev/budgetbuddy/internal/categories"
	"github.com/budgetbuddy-dev/budgetbuddy/internal/model"
	"github.com/budgetbuddy-dev/budgetbuddy/internal/summary"
)

const (
	barWidth      = 24
	uncategorized = "uncategorized"
)

// Summary writes the month's totals, budget bar and expense breakdown.
func Summary(w io.Writer, m summary.Month, money *Money) error {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(m.Key.Label()))
	b.WriteString("\n")
	row(&b, "Budget", money.Format(m.Budget))
	row(&b, "Income", IncomeStyle.Render(money.Format(m.Income)))
	row(&b, "Expense", ExpenseStyle.Render(money.Format(m.Expense)))
	if m.Overspent {
		row(&b, "Remaining", ExpenseStyle.Render(money.Format(m.Remaining)+" (over by "+money.Format(m.Balance.Neg())+")"))
	} else {
		row(&b, "Remaining", money.Format(m.Remaining))
	}
	row(&b, "Used", fmt.Sprintf("%s %d%%", bar(m.BarPercent, m.Overspent), m.PercentUsed))

	if len(m.ExpenseByCategory) > 0 {
		b.WriteString("\n")
		b.WriteString(TitleStyle.Render("By category"))
		b.WriteString("\n")
		for _, ct := range m.ExpenseByCategory {
			fmt.Fprintf(&b, "%s %s %-16s %s\n", Swatch(ct.Color), ct.Icon, ct.Name, money.Format(ct.Total))
		}
	}

	_, err := io.WriteString(w, BoxStyle.Render(strings.TrimRight(b.String(), "\n"))+"\n")
	return err
}

// Transactions writes the month's transactions, latest first. Amounts of
// income categories are prefixed with "+", expenses with "-".
func Transactions(w io.Writer, m summary.Month, cats *categories.Service, money *Money) error {
	var b strings.Builder

	if len(m.Transactions) == 0 {
		b.WriteString(SubtleStyle.Render("No transactions in " + m.Key.Label()))
		b.WriteString("\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	for _, t := range m.Transactions {
		name, icon, color := uncategorized, "?", ""
		sign, style := "-", ExpenseStyle
		if c, ok := cats.Get(t.CategoryID); ok {
			name, icon, color = c.Name, c.Icon, c.Color
			if c.IsIncome {
				sign, style = "+", IncomeStyle
			}
		} else {
			sign, style = " ", SubtleStyle
		}

		fmt.Fprintf(&b, "%s  %s %s %-16s %s",
			t.Date, Swatch(color), icon, name, style.Render(sign+money.Format(t.Amount)))
		if t.Note != "" {
			b.WriteString("  " + SubtleStyle.Render(t.Note))
		}
		b.WriteString("  " + SubtleStyle.Render(t.ID))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Categories writes the category list, income categories first.
func Categories(w io.Writer, cats []model.Category) error {
	svc := categories.NewService(cats)
	var b strings.Builder

	for _, group := range []struct {
		title string
		cats  []model.Category
	}{
		{"Income", svc.Income()},
		{"Expense", svc.Expense()},
	} {
		if len(group.cats) == 0 {
			continue
		}
		b.WriteString(TitleStyle.Render(group.title))
		b.WriteString("\n")
		for _, c := range group.cats {
			fmt.Fprintf(&b, "%s %s %-16s %s\n", Swatch(c.Color), c.Icon, c.Name, SubtleStyle.Render(c.ID))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func row(b *strings.Builder, label, value string) {
	b.WriteString(LabelStyle.Render(label))
	b.WriteString(value)
	b.WriteString("\n")
}

func bar(percent decimal.Decimal, overspent bool) string {
	filled := int(percent.Mul(decimal.NewFromInt(barWidth)).Div(decimal.NewFromInt(100)).IntPart())
	filled = max(0, min(barWidth, filled))
	style := IncomeStyle
	if overspent {
		style = ExpenseStyle
	}
	return style.Render(strings.Repeat("█", filled)) + SubtleStyle.Render(strings.Repeat("░", barWidth-filled))
}
