package categories

import (
	"strings"

	"github.com/budgetbuddy-dev/budgetbuddy/internal/model"
)

// Service provides in-memory lookup over a set of categories.
type Service struct {
	categories []model.Category
	byID       map[string]model.Category
}

// NewService creates a Service from a slice of categories.
func NewService(categories []model.Category) *Service {
	byID := make(map[string]model.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	return &Service{categories: categories, byID: byID}
}

// All returns all categories in their stored order.
func (s *Service) All() []model.Category {
	return s.categories
}

// Get returns a category by ID.
func (s *Service) Get(id string) (model.Category, bool) {
	c, ok := s.byID[id]
	return c, ok
}

// Exists reports whether a category ID exists.
func (s *Service) Exists(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// Find resolves ref as an ID first, then as a case-insensitive name.
func (s *Service) Find(ref string) (model.Category, bool) {
	if c, ok := s.byID[ref]; ok {
		return c, true
	}
	for _, c := range s.categories {
		if strings.EqualFold(c.Name, strings.TrimSpace(ref)) {
			return c, true
		}
	}
	return model.Category{}, false
}

// Income returns the categories that count toward income.
func (s *Service) Income() []model.Category {
	return s.filter(true)
}

// Expense returns the categories that count toward expense.
func (s *Service) Expense() []model.Category {
	return s.filter(false)
}

func (s *Service) filter(income bool) []model.Category {
	var result []model.Category
	for _, c := range s.categories {
		if c.IsIncome == income {
			result = append(result, c)
		}
	}
	return result
}
