package ledger

import (
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/budgetbuddy-dev/budgetbuddy/internal/model"
)

// NewCategory holds the fields for AddCategory.
type NewCategory struct {
	Name     string
	Icon     string
	Color    string
	IsIncome bool
}

// AddCategory appends a category under a fresh id.
func (l *Ledger) AddCategory(params NewCategory) (model.Category, error) {
	if err := validateName(params.Name); err != nil {
		return model.Category{}, err
	}

	cat := model.Category{
		ID: l.uniqueID(func(candidate string) bool {
			_, ok := l.Category(candidate)
			return ok
		}),
		Name:     strings.TrimSpace(params.Name),
		Icon:     params.Icon,
		Color:    params.Color,
		IsIncome: params.IsIncome,
	}

	next := append(slices.Clone(l.categories), cat)
	if err := l.save(KeyCategories, next); err != nil {
		return model.Category{}, err
	}
	l.categories = next
	l.version++

	l.log.WithFields(logrus.Fields{
		"key":   KeyCategories,
		"id":    cat.ID,
		"count": len(next),
	}).Debug("Ledger.AddCategory.Complete")
	return cat, nil
}

// Category returns the category with the given id.
func (l *Ledger) Category(catID string) (model.Category, bool) {
	idx := slices.IndexFunc(l.categories, func(c model.Category) bool {
		return c.ID == catID
	})
	if idx < 0 {
		return model.Category{}, false
	}
	return l.categories[idx], true
}
