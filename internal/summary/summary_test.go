package summary

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetbuddy-dev/budgetbuddy/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(year, month, day int) model.Date {
	return model.NewDate(year, time.Month(month), day)
}

func txn(id, catID, amount string, d model.Date) model.Transaction {
	return model.Transaction{ID: id, CategoryID: catID, Amount: dec(amount), Date: d}
}

var march = model.MonthKey{Year: 2024, Month: 3}

func testCategories() []model.Category {
	return []model.Category{
		{ID: "salary", Name: "Salario", Color: "#16A34A", IsIncome: true},
		{ID: "food", Name: "Comida", Color: "#EF4444"},
		{ID: "rent", Name: "Renta", Color: "#3B82F6"},
		{ID: "fun", Name: "Ocio", Color: "#A855F7"},
	}
}

func TestDerive_SingleCategoryScenario(t *testing.T) {
	l := model.Ledger{
		Categories: []model.Category{{ID: "c1", Name: "Comida", Color: "#EF4444"}},
		Transactions: []model.Transaction{
			txn("t1", "c1", "100", date(2024, 3, 5)),
			txn("t2", "c1", "50", date(2024, 3, 10)),
		},
		Budgets: []model.Budget{{Year: 2024, Month: 3, Amount: dec("200")}},
	}

	m := Derive(l, march)

	assert.True(t, m.Income.IsZero())
	assert.True(t, m.Expense.Equal(dec("150")))
	assert.True(t, m.Remaining.Equal(dec("50")))
	assert.True(t, m.Budget.Equal(dec("200")))
	assert.False(t, m.Overspent)
	assert.Equal(t, 75, m.PercentUsed)
	require.Len(t, m.ExpenseByCategory, 1)
	assert.Equal(t, "c1", m.ExpenseByCategory[0].CategoryID)
	assert.Equal(t, "Comida", m.ExpenseByCategory[0].Name)
	assert.Equal(t, "#EF4444", m.ExpenseByCategory[0].Color)
	assert.True(t, m.ExpenseByCategory[0].Total.Equal(dec("150")))
}

func TestDerive_ZeroBudgetCapsPercent(t *testing.T) {
	l := model.Ledger{
		Categories:   testCategories(),
		Transactions: []model.Transaction{txn("t1", "food", "100", date(2024, 3, 1))},
	}

	m := Derive(l, march)

	assert.True(t, m.Budget.IsZero())
	assert.Equal(t, 100, m.PercentUsed)
	assert.True(t, m.BarPercent.IsZero(), "no bar fill without a budget")
	assert.True(t, m.Remaining.IsZero())
	assert.True(t, m.Balance.Equal(dec("-100")))
	assert.True(t, m.Overspent)
}

func TestDerive_EmptyMonth(t *testing.T) {
	l := model.Ledger{
		Categories:   testCategories(),
		Transactions: []model.Transaction{txn("t1", "food", "100", date(2024, 4, 1))},
		Budgets:      []model.Budget{{Year: 2024, Month: 3, Amount: dec("500")}},
	}

	m := Derive(l, march)

	assert.Empty(t, m.Transactions)
	assert.True(t, m.Income.IsZero())
	assert.True(t, m.Expense.IsZero())
	assert.Empty(t, m.ExpenseByCategory)
	assert.True(t, m.Remaining.Equal(dec("500")), "remaining equals the budget")
	assert.Equal(t, 0, m.PercentUsed)
}

func TestDerive_EmptyLedger(t *testing.T) {
	m := Derive(model.Ledger{}, march)

	assert.Empty(t, m.Transactions)
	assert.True(t, m.Income.IsZero())
	assert.True(t, m.Expense.IsZero())
	assert.True(t, m.Remaining.IsZero())
	assert.Empty(t, m.ExpenseByCategory)
}

func TestDerive_MonthBoundaries(t *testing.T) {
	l := model.Ledger{
		Categories: testCategories(),
		Transactions: []model.Transaction{
			txn("before", "food", "1", date(2024, 2, 29)),
			txn("first", "food", "2", date(2024, 3, 1)),
			txn("last", "food", "4", date(2024, 3, 31)),
			txn("after", "food", "8", date(2024, 4, 1)),
			txn("lastyear", "food", "16", date(2023, 3, 15)),
		},
	}

	m := Derive(l, march)

	var ids []string
	for _, t := range m.Transactions {
		ids = append(ids, t.ID)
	}
	assert.ElementsMatch(t, []string{"first", "last"}, ids)
	assert.True(t, m.Expense.Equal(dec("6")))
}

func TestDerive_IncomeOffsetsExpense(t *testing.T) {
	l := model.Ledger{
		Categories: testCategories(),
		Transactions: []model.Transaction{
			txn("pay", "salary", "1000", date(2024, 3, 1)),
			txn("rent", "rent", "800", date(2024, 3, 2)),
			txn("food", "food", "400", date(2024, 3, 3)),
		},
		Budgets: []model.Budget{{Year: 2024, Month: 3, Amount: dec("400")}},
	}

	m := Derive(l, march)

	assert.True(t, m.Income.Equal(dec("1000")))
	assert.True(t, m.Expense.Equal(dec("1200")))
	assert.True(t, m.Remaining.Equal(dec("200")))
	assert.Equal(t, 50, m.PercentUsed, "net overspend 200 of 400")
	assert.True(t, m.BarPercent.Equal(dec("50")))

	for _, ct := range m.ExpenseByCategory {
		assert.NotEqual(t, "salary", ct.CategoryID, "income never appears in the breakdown")
	}
}

func TestDerive_PercentRounding(t *testing.T) {
	l := model.Ledger{
		Categories:   testCategories(),
		Transactions: []model.Transaction{txn("t", "food", "1", date(2024, 3, 1))},
		Budgets:      []model.Budget{{Year: 2024, Month: 3, Amount: dec("3")}},
	}

	m := Derive(l, march)

	assert.Equal(t, 33, m.PercentUsed)
	assert.True(t, m.BarPercent.GreaterThan(dec("33.33")))
	assert.True(t, m.BarPercent.LessThan(dec("33.34")))

	l.Budgets[0].Amount = dec("8")
	assert.Equal(t, 13, Derive(l, march).PercentUsed, "12.5 rounds half up")
}

func TestDerive_DanglingCategoryIsNeither(t *testing.T) {
	l := model.Ledger{
		Categories: testCategories(),
		Transactions: []model.Transaction{
			txn("ghost", "deleted", "999", date(2024, 3, 1)),
			txn("food", "food", "10", date(2024, 3, 1)),
		},
	}

	m := Derive(l, march)

	assert.Len(t, m.Transactions, 2, "still listed for the month")
	assert.True(t, m.Income.IsZero())
	assert.True(t, m.Expense.Equal(dec("10")))
	require.Len(t, m.ExpenseByCategory, 1)
}

func TestDerive_ExpenseByCategoryOrder(t *testing.T) {
	l := model.Ledger{
		Categories: testCategories(),
		Transactions: []model.Transaction{
			txn("a", "fun", "30", date(2024, 3, 1)),
			txn("b", "food", "50", date(2024, 3, 2)),
			txn("c", "rent", "50", date(2024, 3, 3)),
			txn("d", "fun", "5", date(2024, 3, 4)),
		},
	}

	m := Derive(l, march)

	require.Len(t, m.ExpenseByCategory, 3)
	var order []string
	for _, ct := range m.ExpenseByCategory {
		order = append(order, ct.CategoryID)
	}
	// Transactions are visited latest first (d, c, b, a), so rent is seen
	// before food and keeps that position on the 50/50 tie.
	assert.Equal(t, []string{"rent", "food", "fun"}, order)
	assert.True(t, m.ExpenseByCategory[2].Total.Equal(dec("35")))
}

func TestDerive_TransactionOrder(t *testing.T) {
	// Stored newest-added first; "late" was backdated after "mid" was added.
	l := model.Ledger{
		Categories: testCategories(),
		Transactions: []model.Transaction{
			txn("backdated", "food", "1", date(2024, 3, 2)),
			txn("mid-b", "food", "1", date(2024, 3, 15)),
			txn("mid-a", "food", "1", date(2024, 3, 15)),
			txn("late", "food", "1", date(2024, 3, 28)),
		},
	}

	m := Derive(l, march)

	var ids []string
	for _, t := range m.Transactions {
		ids = append(ids, t.ID)
	}
	assert.Equal(t, []string{"late", "mid-b", "mid-a", "backdated"}, ids)
}

func TestDerive_DoesNotMutateInput(t *testing.T) {
	txns := []model.Transaction{
		txn("early", "food", "1", date(2024, 3, 1)),
		txn("late", "food", "1", date(2024, 3, 30)),
	}
	l := model.Ledger{Categories: testCategories(), Transactions: txns}

	Derive(l, march)

	assert.Equal(t, "early", txns[0].ID)
}

func TestDerive_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	cats := testCategories()
	isIncome := make(map[string]bool)
	for _, c := range cats {
		isIncome[c.ID] = c.IsIncome
	}

	for round := 0; round < 50; round++ {
		var l model.Ledger
		l.Categories = cats
		n := rng.Intn(40)
		for i := 0; i < n; i++ {
			cat := cats[rng.Intn(len(cats))]
			d := date(2024, 2+rng.Intn(3), 1+rng.Intn(31))
			l.Transactions = append(l.Transactions,
				txn(fmt.Sprintf("t%d", i), cat.ID, fmt.Sprintf("%d.%02d", rng.Intn(500), rng.Intn(100)), d))
		}
		budget := decimal.NewFromInt(int64(rng.Intn(3) * 250))
		l.Budgets = []model.Budget{{Year: 2024, Month: 3, Amount: budget}}

		m := Derive(l, march)

		// Independent sums over the full set with the same date range.
		start, end := march.Bounds()
		income, expense := decimal.Zero, decimal.Zero
		for _, t := range l.Transactions {
			if t.Date.Before(start) || t.Date.After(end) {
				continue
			}
			if isIncome[t.CategoryID] {
				income = income.Add(t.Amount)
			} else {
				expense = expense.Add(t.Amount)
			}
		}
		assert.True(t, m.Net().Equal(income.Sub(expense)), "round %d: sum invariant", round)

		assert.False(t, m.Remaining.IsNegative(), "round %d: remaining never negative", round)
		assert.True(t, m.Remaining.Equal(decimal.Max(budget.Add(income).Sub(expense), decimal.Zero)))
		assert.GreaterOrEqual(t, m.PercentUsed, 0)
		assert.LessOrEqual(t, m.PercentUsed, 100)

		total := decimal.Zero
		for i, ct := range m.ExpenseByCategory {
			total = total.Add(ct.Total)
			if i+1 < len(m.ExpenseByCategory) {
				assert.False(t, ct.Total.LessThan(m.ExpenseByCategory[i+1].Total),
					"round %d: breakdown sorted descending", round)
			}
		}
		assert.True(t, total.Equal(m.Expense), "round %d: breakdown sums to expense", round)
	}
}
