package model

import "fmt"

// SheetKind enumerates the input forms the presentation layer can open.
type SheetKind int

const (
	SheetClosed SheetKind = iota
	SheetAddTransaction
	SheetEditTransaction
	SheetAddCategory
	SheetSetBudget
)

func (k SheetKind) String() string {
	switch k {
	case SheetClosed:
		return "closed"
	case SheetAddTransaction:
		return "add-txn"
	case SheetEditTransaction:
		return "edit-txn"
	case SheetAddCategory:
		return "add-cat"
	case SheetSetBudget:
		return "set-budget"
	default:
		return fmt.Sprintf("sheet(%d)", int(k))
	}
}

// Sheet is the currently open form. Only SheetEditTransaction carries a
// payload: the id of the transaction being edited.
type Sheet struct {
	Kind          SheetKind
	transactionID string
}

// Constructors for each Sheet case.
var (
	ClosedSheet         = Sheet{Kind: SheetClosed}
	AddTransactionSheet = Sheet{Kind: SheetAddTransaction}
	AddCategorySheet    = Sheet{Kind: SheetAddCategory}
	SetBudgetSheet      = Sheet{Kind: SheetSetBudget}
)

// EditTransactionSheet opens the edit form for the given transaction.
func EditTransactionSheet(id string) Sheet {
	return Sheet{Kind: SheetEditTransaction, transactionID: id}
}

// TransactionID returns the edited transaction's id. ok is false for every
// kind other than SheetEditTransaction.
func (s Sheet) TransactionID() (id string, ok bool) {
	if s.Kind != SheetEditTransaction {
		return "", false
	}
	return s.transactionID, true
}

// IsOpen reports whether any form is open.
func (s Sheet) IsOpen() bool {
	return s.Kind != SheetClosed
}

func (s Sheet) String() string {
	if s.Kind == SheetEditTransaction {
		return fmt.Sprintf("%s(%s)", s.Kind, s.transactionID)
	}
	return s.Kind.String()
}
