package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/budgetbuddy-dev/budgetbuddy/internal/model"
)

type countingSource struct {
	ledger    model.Ledger
	version   uint64
	snapshots int
}

func (s *countingSource) Snapshot() model.Ledger {
	s.snapshots++
	return s.ledger
}

func (s *countingSource) Version() uint64 {
	return s.version
}

func TestMemo(t *testing.T) {
	src := &countingSource{ledger: model.Ledger{
		Categories:   testCategories(),
		Transactions: []model.Transaction{txn("t1", "food", "10", date(2024, 3, 1))},
	}}
	memo := NewMemo(src)

	m := memo.Month(march)
	assert.True(t, m.Expense.Equal(dec("10")))
	memo.Month(march)
	assert.Equal(t, 1, src.snapshots, "same version and month reuses the result")

	memo.Month(march.Next())
	assert.Equal(t, 2, src.snapshots, "month change recomputes")

	src.ledger.Transactions = append(src.ledger.Transactions, txn("t2", "food", "5", date(2024, 3, 2)))
	src.version++
	m = memo.Month(march)
	assert.Equal(t, 3, src.snapshots, "version change recomputes")
	assert.True(t, m.Expense.Equal(dec("15")))
}
