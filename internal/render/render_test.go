package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetbuddy-dev/budgetbuddy/internal/categories"
	"github.com/budgetbuddy-dev/budgetbuddy/internal/model"
	"github.com/budgetbuddy-dev/budgetbuddy/internal/summary"
)

func testMoney(t *testing.T) *Money {
	t.Helper()
	m, err := NewMoney("USD", "en-US")
	require.NoError(t, err)
	return m
}

func testLedger() model.Ledger {
	return model.Ledger{
		Categories: []model.Category{
			{ID: "sal", Name: "Salario", Icon: "💼", Color: "#4caf50", IsIncome: true},
			{ID: "food", Name: "Comida", Icon: "🍔", Color: "#ff7043"},
		},
		Transactions: []model.Transaction{
			{ID: "t1", Date: model.NewDate(2024, time.March, 5), Amount: decimal.NewFromInt(150), CategoryID: "food", Note: "groceries"},
			{ID: "t2", Date: model.NewDate(2024, time.March, 1), Amount: decimal.NewFromInt(500), CategoryID: "sal"},
			{ID: "t3", Date: model.NewDate(2024, time.March, 2), Amount: decimal.NewFromInt(20), CategoryID: "gone"},
		},
		Budgets: []model.Budget{{Year: 2024, Month: 3, Amount: decimal.NewFromInt(1000)}},
	}
}

func TestNewMoney(t *testing.T) {
	m, err := NewMoney("CRC", "es-CR")
	require.NoError(t, err)
	assert.Equal(t, "CRC", m.Code())

	_, err = NewMoney("NOPE", "es-CR")
	assert.Error(t, err)

	_, err = NewMoney("USD", "???")
	assert.Error(t, err)
}

func TestMoneyFormat(t *testing.T) {
	m := testMoney(t)
	assert.Contains(t, m.Format(decimal.NewFromInt(150)), "150")
	assert.Contains(t, m.Format(decimal.NewFromInt(1500)), "1,500")

	neg := m.Format(decimal.NewFromInt(-30))
	assert.True(t, neg[0] == '-', "negative amount should start with a minus: %q", neg)
	assert.Contains(t, neg, "30")
}

func TestSummary(t *testing.T) {
	month := summary.Derive(testLedger(), model.MonthKey{Year: 2024, Month: 3})

	var buf bytes.Buffer
	require.NoError(t, Summary(&buf, month, testMoney(t)))
	out := buf.String()

	assert.Contains(t, out, "March 2024")
	assert.Contains(t, out, "Budget")
	assert.Contains(t, out, "1,000")
	assert.Contains(t, out, "Comida")
	assert.Contains(t, out, "0%")
	assert.NotContains(t, out, "over by")
}

func TestSummary_Overspent(t *testing.T) {
	l := testLedger()
	l.Transactions = append(l.Transactions, model.Transaction{
		ID: "t4", Date: model.NewDate(2024, time.March, 9), Amount: decimal.NewFromInt(2000), CategoryID: "food",
	})
	month := summary.Derive(l, model.MonthKey{Year: 2024, Month: 3})
	require.True(t, month.Overspent)

	var buf bytes.Buffer
	require.NoError(t, Summary(&buf, month, testMoney(t)))
	assert.Contains(t, buf.String(), "over by")
	assert.Contains(t, buf.String(), "100%")
}

func TestTransactions(t *testing.T) {
	l := testLedger()
	month := summary.Derive(l, model.MonthKey{Year: 2024, Month: 3})

	var buf bytes.Buffer
	require.NoError(t, Transactions(&buf, month, categories.NewService(l.Categories), testMoney(t)))
	out := buf.String()

	assert.Contains(t, out, "2024-03-05")
	assert.Contains(t, out, "groceries")
	assert.Contains(t, out, "+")
	assert.Contains(t, out, uncategorized)
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("2024-03-05")), bytes.Index(buf.Bytes(), []byte("2024-03-01")))
}

func TestTransactions_Empty(t *testing.T) {
	month := summary.Derive(testLedger(), model.MonthKey{Year: 2024, Month: 4})

	var buf bytes.Buffer
	require.NoError(t, Transactions(&buf, month, categories.NewService(nil), testMoney(t)))
	assert.Contains(t, buf.String(), "No transactions in April 2024")
}

func TestCategories(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Categories(&buf, testLedger().Categories))
	out := buf.String()

	assert.Contains(t, out, "Income")
	assert.Contains(t, out, "Expense")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Salario")), bytes.Index(buf.Bytes(), []byte("Comida")))
}

func TestBar(t *testing.T) {
	assert.Equal(t, 0, countRune(bar(decimal.Zero, false), '█'))
	assert.Equal(t, barWidth/2, countRune(bar(decimal.NewFromInt(50), false), '█'))
	assert.Equal(t, barWidth, countRune(bar(decimal.NewFromInt(100), true), '█'))
}

func countRune(s string, r rune) int {
	n := 0
	for _, c := range s {
		if c == r {
			n++
		}
	}
	return n
}
