package ledger

import (
	"slices"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/budgetbuddy-dev/budgetbuddy/internal/model"
)

// NewTransaction holds the fields for AddTransaction.
type NewTransaction struct {
	Date       model.Date
	Amount     decimal.Decimal
	Note       string
	CategoryID string
}

// TransactionPatch lists the fields UpdateTransaction replaces. Nil fields
// are left unchanged.
type TransactionPatch struct {
	Date       *model.Date
	Amount     *decimal.Decimal
	Note       *string
	CategoryID *string
}

// AddTransaction stores a new transaction under a fresh id and puts it at
// the front of the collection.
func (l *Ledger) AddTransaction(params NewTransaction) (model.Transaction, error) {
	if err := validateDate(params.Date); err != nil {
		return model.Transaction{}, err
	}
	if err := validateAmount("amount", params.Amount); err != nil {
		return model.Transaction{}, err
	}
	if err := validateCategoryRef(l.CategoryService(), params.CategoryID); err != nil {
		return model.Transaction{}, err
	}

	txn := model.Transaction{
		ID: l.uniqueID(func(candidate string) bool {
			_, ok := l.Transaction(candidate)
			return ok
		}),
		Date:       params.Date,
		Amount:     params.Amount,
		Note:       params.Note,
		CategoryID: params.CategoryID,
	}

	next := make([]model.Transaction, 0, len(l.transactions)+1)
	next = append(next, txn)
	next = append(next, l.transactions...)
	if err := l.commitTransactions(next); err != nil {
		return model.Transaction{}, err
	}

	l.log.WithFields(logrus.Fields{
		"key":   KeyTransactions,
		"id":    txn.ID,
		"count": len(next),
	}).Debug("Ledger.AddTransaction.Complete")
	return txn, nil
}

// UpdateTransaction merges patch into the transaction with the given id.
// An unknown id is a silent no-op.
func (l *Ledger) UpdateTransaction(txnID string, patch TransactionPatch) error {
	idx := l.transactionIndex(txnID)
	if idx < 0 {
		l.log.WithField("id", txnID).Debug("Ledger.UpdateTransaction.NotFound")
		return nil
	}

	updated := l.transactions[idx]
	if patch.Date != nil {
		if err := validateDate(*patch.Date); err != nil {
			return err
		}
		updated.Date = *patch.Date
	}
	if patch.Amount != nil {
		if err := validateAmount("amount", *patch.Amount); err != nil {
			return err
		}
		updated.Amount = *patch.Amount
	}
	if patch.Note != nil {
		updated.Note = *patch.Note
	}
	if patch.CategoryID != nil && *patch.CategoryID != updated.CategoryID {
		if err := validateCategoryRef(l.CategoryService(), *patch.CategoryID); err != nil {
			return err
		}
		updated.CategoryID = *patch.CategoryID
	}

	next := slices.Clone(l.transactions)
	next[idx] = updated
	if err := l.commitTransactions(next); err != nil {
		return err
	}

	l.log.WithFields(logrus.Fields{"key": KeyTransactions, "id": txnID}).Debug("Ledger.UpdateTransaction.Complete")
	return nil
}

// DeleteTransaction removes the transaction with the given id. An unknown
// id is a silent no-op.
func (l *Ledger) DeleteTransaction(txnID string) error {
	idx := l.transactionIndex(txnID)
	if idx < 0 {
		l.log.WithField("id", txnID).Debug("Ledger.DeleteTransaction.NotFound")
		return nil
	}

	next := slices.Delete(slices.Clone(l.transactions), idx, idx+1)
	if err := l.commitTransactions(next); err != nil {
		return err
	}

	l.log.WithFields(logrus.Fields{
		"key":   KeyTransactions,
		"id":    txnID,
		"count": len(next),
	}).Debug("Ledger.DeleteTransaction.Complete")
	return nil
}

// Transaction returns the transaction with the given id.
func (l *Ledger) Transaction(txnID string) (model.Transaction, bool) {
	idx := l.transactionIndex(txnID)
	if idx < 0 {
		return model.Transaction{}, false
	}
	return l.transactions[idx], true
}

func (l *Ledger) transactionIndex(txnID string) int {
	return slices.IndexFunc(l.transactions, func(t model.Transaction) bool {
		return t.ID == txnID
	})
}

func (l *Ledger) commitTransactions(next []model.Transaction) error {
	if err := l.save(KeyTransactions, next); err != nil {
		return err
	}
	l.transactions = next
	l.version++
	return nil
}
