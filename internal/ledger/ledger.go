// Package ledger owns the categories, transactions and budgets of a single
// user and keeps each collection synced to a kv.Store.
package ledger

import (
	"io"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/budgetbuddy-dev/budgetbuddy/internal/categories"
	"github.com/budgetbuddy-dev/budgetbuddy/internal/id"
	"github.com/budgetbuddy-dev/budgetbuddy/internal/kv"
	"github.com/budgetbuddy-dev/budgetbuddy/internal/model"
)

// Storage keys, one per collection.
const (
	KeyCategories   = "bb.categories"
	KeyTransactions = "bb.txns"
	KeyBudgets      = "bb.budgets"
)

// Ledger is the in-memory copy of the three collections. Every mutation is
// written through to the store before it returns. A Ledger is meant for a
// single actor and is not safe for concurrent use.
type Ledger struct {
	store  kv.Store
	log    *logrus.Logger
	newID  id.Generator
	seeded bool

	categories   []model.Category
	transactions []model.Transaction
	budgets      []model.Budget
	version      uint64
}

// Option configures Open.
type Option func(*Ledger)

// WithLogger sets the logger used for mutation and persistence events.
func WithLogger(log *logrus.Logger) Option {
	return func(l *Ledger) { l.log = log }
}

// WithIDGenerator replaces id.New for new categories and transactions.
func WithIDGenerator(gen id.Generator) Option {
	return func(l *Ledger) { l.newID = gen }
}

// Open loads each collection from store. On first run the default
// categories are seeded and saved; missing transactions and budgets start
// out empty.
func Open(store kv.Store, opts ...Option) (*Ledger, error) {
	l := &Ledger{store: store, newID: id.New}
	for _, opt := range opts {
		opt(l)
	}
	if l.log == nil {
		l.log = logrus.New()
		l.log.SetOutput(io.Discard)
	}

	found, err := l.load(KeyCategories, &l.categories)
	if err != nil {
		return nil, err
	}
	if !found {
		seed := categories.DefaultCategories(l.newID)
		if err := l.save(KeyCategories, seed); err != nil {
			return nil, err
		}
		l.categories = seed
		l.seeded = true
		l.log.WithField("count", len(seed)).Info("Ledger.SeedCategories.Complete")
	}

	if _, err := l.load(KeyTransactions, &l.transactions); err != nil {
		return nil, err
	}
	if _, err := l.load(KeyBudgets, &l.budgets); err != nil {
		return nil, err
	}

	l.log.WithFields(logrus.Fields{
		"categories":   len(l.categories),
		"transactions": len(l.transactions),
		"budgets":      len(l.budgets),
	}).Debug("Ledger.Open.Complete")

	return l, nil
}

// Seeded reports whether Open created the default categories.
func (l *Ledger) Seeded() bool {
	return l.seeded
}

// Version increases by one with every successful mutation.
func (l *Ledger) Version() uint64 {
	return l.version
}

// Categories returns a copy of all categories in insertion order.
func (l *Ledger) Categories() []model.Category {
	return slices.Clone(l.categories)
}

// Transactions returns a copy of all transactions, most recently added first.
func (l *Ledger) Transactions() []model.Transaction {
	return slices.Clone(l.transactions)
}

// Budgets returns a copy of all budgets.
func (l *Ledger) Budgets() []model.Budget {
	return slices.Clone(l.budgets)
}

// Snapshot returns copies of all three collections.
func (l *Ledger) Snapshot() model.Ledger {
	return model.Ledger{
		Categories:   l.Categories(),
		Transactions: l.Transactions(),
		Budgets:      l.Budgets(),
	}
}

// CategoryService returns a lookup service over the current categories.
func (l *Ledger) CategoryService() *categories.Service {
	return categories.NewService(l.Categories())
}

func (l *Ledger) load(key string, dst any) (bool, error) {
	found, err := kv.Load(l.store, key, dst)
	if err != nil {
		l.log.WithError(err).WithField("key", key).Error("Ledger.Load.Error")
		return found, &PersistenceError{Key: key, Op: "load", Err: err}
	}
	return found, nil
}

func (l *Ledger) save(key string, v any) error {
	if err := kv.Save(l.store, key, v); err != nil {
		l.log.WithError(err).WithField("key", key).Error("Ledger.Save.Error")
		return &PersistenceError{Key: key, Op: "save", Err: err}
	}
	return nil
}

// uniqueID draws from the generator until it returns an id not in taken.
func (l *Ledger) uniqueID(taken func(string) bool) string {
	for {
		candidate := l.newID()
		if candidate != "" && !taken(candidate) {
			return candidate
		}
	}
}
