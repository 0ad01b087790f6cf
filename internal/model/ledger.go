package model

// Ledger is a point-in-time copy of all three collections.
type Ledger struct {
	Categories   []Category
	Transactions []Transaction
	Budgets      []Budget
}
