// Package summary derives the per-month view of a ledger: the month's
// transactions, income and expense totals, what is left of the budget and
// the expense breakdown by category. Nothing here mutates its input.
package summary

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/budgetbuddy-dev/budgetbuddy/internal/categories"
	"github.com/budgetbuddy-dev/budgetbuddy/internal/model"
)

var hundred = decimal.NewFromInt(100)

// CategoryTotal is the summed expense for one category in a month.
type CategoryTotal struct {
	CategoryID string
	Name       string
	Icon       string
	Color      string
	Total      decimal.Decimal
}

// Month is the derived view of one calendar month.
type Month struct {
	Key model.MonthKey

	// Transactions dated within the month, latest date first. Transactions
	// on the same date keep their stored (newest-added-first) order.
	Transactions []model.Transaction

	Budget  decimal.Decimal // zero when no budget is set
	Income  decimal.Decimal
	Expense decimal.Decimal

	// Balance is Budget + Income - Expense and may be negative.
	Balance decimal.Decimal
	// Remaining is Balance clamped at zero.
	Remaining decimal.Decimal
	// Overspent is true when Balance is negative.
	Overspent bool

	// PercentUsed is the net overspend (expense minus income, floored at
	// zero) as a whole percentage of the budget, capped at 100. A zero
	// budget divides by one.
	PercentUsed int
	// BarPercent is the progress-bar fill: the same ratio unrounded, and
	// zero when there is no budget.
	BarPercent decimal.Decimal

	// ExpenseByCategory is sorted by Total, largest first.
	ExpenseByCategory []CategoryTotal
}

// Derive computes the view of month from l.
func Derive(l model.Ledger, month model.MonthKey) Month {
	cats := categories.NewService(l.Categories)

	m := Month{
		Key:     month,
		Budget:  budgetFor(l.Budgets, month),
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}

	start, end := month.Bounds()
	for _, t := range l.Transactions {
		if t.Date.Before(start) || t.Date.After(end) {
			continue
		}
		m.Transactions = append(m.Transactions, t)
	}
	slices.SortStableFunc(m.Transactions, func(a, b model.Transaction) int {
		switch {
		case a.Date.After(b.Date):
			return -1
		case a.Date.Before(b.Date):
			return 1
		default:
			return 0
		}
	})

	var byCategory []CategoryTotal
	index := make(map[string]int)
	for _, t := range m.Transactions {
		cat, ok := cats.Get(t.CategoryID)
		if !ok {
			// Dangling reference: neither income nor expense.
			continue
		}
		if cat.IsIncome {
			m.Income = m.Income.Add(t.Amount)
			continue
		}
		m.Expense = m.Expense.Add(t.Amount)

		i, seen := index[cat.ID]
		if !seen {
			i = len(byCategory)
			index[cat.ID] = i
			byCategory = append(byCategory, CategoryTotal{
				CategoryID: cat.ID,
				Name:       cat.Name,
				Icon:       cat.Icon,
				Color:      cat.Color,
				Total:      decimal.Zero,
			})
		}
		byCategory[i].Total = byCategory[i].Total.Add(t.Amount)
	}
	slices.SortStableFunc(byCategory, func(a, b CategoryTotal) int {
		return b.Total.Cmp(a.Total)
	})
	m.ExpenseByCategory = byCategory

	m.Balance = m.Budget.Add(m.Income).Sub(m.Expense)
	m.Overspent = m.Balance.IsNegative()
	m.Remaining = decimal.Max(m.Balance, decimal.Zero)
	m.PercentUsed = percentUsed(m.Budget, m.Income, m.Expense)
	m.BarPercent = barPercent(m.Budget, m.Income, m.Expense)

	return m
}

// Net returns Income - Expense.
func (m Month) Net() decimal.Decimal {
	return m.Income.Sub(m.Expense)
}

func budgetFor(budgets []model.Budget, month model.MonthKey) decimal.Decimal {
	for _, b := range budgets {
		if b.Year == month.Year && b.Month == month.Month {
			return b.Amount
		}
	}
	return decimal.Zero
}

func overspend(income, expense decimal.Decimal) decimal.Decimal {
	return decimal.Max(expense.Sub(income), decimal.Zero)
}

func percentUsed(budget, income, expense decimal.Decimal) int {
	denominator := budget
	if denominator.IsZero() {
		denominator = decimal.NewFromInt(1)
	}
	pct := overspend(income, expense).Div(denominator).Mul(hundred).Round(0)
	if pct.GreaterThan(hundred) {
		return 100
	}
	return int(pct.IntPart())
}

func barPercent(budget, income, expense decimal.Decimal) decimal.Decimal {
	if budget.IsZero() {
		return decimal.Zero
	}
	return decimal.Min(overspend(income, expense).Div(budget).Mul(hundred), hundred)
}
