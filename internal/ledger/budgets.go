package ledger

import (
	"slices"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/budgetbuddy-dev/budgetbuddy/internal/model"
)

// SetBudget sets the target for (year, month). An existing budget for that
// month has its amount replaced in place; otherwise a new one is appended.
func (l *Ledger) SetBudget(year, month int, amount decimal.Decimal) (model.Budget, error) {
	key := model.MonthKey{Year: year, Month: month}
	if err := validateMonth(key); err != nil {
		return model.Budget{}, err
	}
	if err := validateAmount("amount", amount); err != nil {
		return model.Budget{}, err
	}

	next := slices.Clone(l.budgets)
	budget := model.Budget{Year: year, Month: month, Amount: amount}
	idx := l.budgetIndex(key)
	if idx >= 0 {
		next[idx].Amount = amount
		budget = next[idx]
	} else {
		next = append(next, budget)
	}

	if err := l.save(KeyBudgets, next); err != nil {
		return model.Budget{}, err
	}
	l.budgets = next
	l.version++

	l.log.WithFields(logrus.Fields{
		"key":     KeyBudgets,
		"month":   key.String(),
		"amount":  amount.String(),
		"replace": idx >= 0,
	}).Debug("Ledger.SetBudget.Complete")
	return budget, nil
}

// Budget returns the budget for the given month.
func (l *Ledger) Budget(key model.MonthKey) (model.Budget, bool) {
	idx := l.budgetIndex(key)
	if idx < 0 {
		return model.Budget{}, false
	}
	return l.budgets[idx], true
}

func (l *Ledger) budgetIndex(key model.MonthKey) int {
	return slices.IndexFunc(l.budgets, func(b model.Budget) bool {
		return b.Year == key.Year && b.Month == key.Month
	})
}
