package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/budgetbuddy-dev/budgetbuddy/internal/model"
)

// CategoryChecker tests whether a category ID exists.
type CategoryChecker interface {
	Exists(id string) bool
}

func validateAmount(field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return &ValidationError{
			Field:  field,
			Reason: fmt.Sprintf("%s is negative; amounts are stored as magnitudes", amount),
			Err:    ErrInvalidAmount,
		}
	}
	return nil
}

func validateDate(d model.Date) error {
	if d.IsZero() {
		return &ValidationError{Field: "date", Reason: "date is required", Err: ErrInvalidDate}
	}
	return nil
}

func validateCategoryRef(cats CategoryChecker, categoryID string) error {
	if categoryID == "" {
		return &ValidationError{Field: "categoryId", Reason: "category is required", Err: ErrInvalidCategory}
	}
	if !cats.Exists(categoryID) {
		return &ValidationError{
			Field:  "categoryId",
			Reason: fmt.Sprintf("unknown category %q", categoryID),
			Err:    ErrInvalidCategory,
		}
	}
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Reason: "name must not be empty", Err: ErrInvalidName}
	}
	return nil
}

func validateMonth(key model.MonthKey) error {
	if !key.Valid() {
		return &ValidationError{
			Field:  "month",
			Reason: fmt.Sprintf("month %d not in 1..12", key.Month),
			Err:    ErrInvalidMonth,
		}
	}
	return nil
}
