package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/budgetbuddy-dev/budgetbuddy/internal/ledger"
	"github.com/budgetbuddy-dev/budgetbuddy/internal/model"
)

var (
	errAmountNotPositive = errors.New("amount must be greater than zero")
	errNameRequired      = errors.New("name is required")
	errSheetClosed       = errors.New("no form is open")
)

const (
	defaultCategoryIcon  = "🏷️"
	defaultCategoryColor = "#9e9e9e"
)

// form carries the raw field values of whichever sheet is being submitted.
// For the edit sheet, empty strings and a nil Note leave a field unchanged.
type form struct {
	Amount   string
	Category string
	Date     string
	Note     *string

	Name     string
	Icon     string
	Color    string
	IsIncome bool

	Month model.MonthKey
}

// submitSheet validates f for sheet and applies it to l. It returns the id
// of the created or edited record, or the month key for a budget.
func submitSheet(l *ledger.Ledger, sheet model.Sheet, f form) (string, error) {
	switch sheet.Kind {
	case model.SheetAddTransaction:
		return submitAddTransaction(l, f)
	case model.SheetEditTransaction:
		txnID, _ := sheet.TransactionID()
		return txnID, submitEditTransaction(l, txnID, f)
	case model.SheetAddCategory:
		return submitAddCategory(l, f)
	case model.SheetSetBudget:
		return submitSetBudget(l, f)
	case model.SheetClosed:
		return "", errSheetClosed
	default:
		return "", fmt.Errorf("unknown sheet %s", sheet)
	}
}

func submitAddTransaction(l *ledger.Ledger, f form) (string, error) {
	amount, err := parsePositiveAmount(f.Amount)
	if err != nil {
		return "", err
	}
	cat, err := resolveCategory(l, f.Category)
	if err != nil {
		return "", err
	}
	date := model.Today()
	if f.Date != "" {
		if date, err = model.ParseDate(f.Date); err != nil {
			return "", err
		}
	}
	var note string
	if f.Note != nil {
		note = strings.TrimSpace(*f.Note)
	}

	t, err := l.AddTransaction(ledger.NewTransaction{
		Date:       date,
		Amount:     amount,
		Note:       note,
		CategoryID: cat.ID,
	})
	if err != nil {
		return "", err
	}
	return t.ID, nil
}

func submitEditTransaction(l *ledger.Ledger, txnID string, f form) error {
	if _, ok := l.Transaction(txnID); !ok {
		return fmt.Errorf("no transaction with id %q", txnID)
	}

	var patch ledger.TransactionPatch
	if f.Amount != "" {
		amount, err := parsePositiveAmount(f.Amount)
		if err != nil {
			return err
		}
		patch.Amount = &amount
	}
	if f.Category != "" {
		cat, err := resolveCategory(l, f.Category)
		if err != nil {
			return err
		}
		patch.CategoryID = &cat.ID
	}
	if f.Date != "" {
		date, err := model.ParseDate(f.Date)
		if err != nil {
			return err
		}
		patch.Date = &date
	}
	if f.Note != nil {
		note := strings.TrimSpace(*f.Note)
		patch.Note = &note
	}

	return l.UpdateTransaction(txnID, patch)
}

func submitAddCategory(l *ledger.Ledger, f form) (string, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return "", errNameRequired
	}
	icon := f.Icon
	if icon == "" {
		icon = defaultCategoryIcon
	}
	color := f.Color
	if color == "" {
		color = defaultCategoryColor
	}

	c, err := l.AddCategory(ledger.NewCategory{
		Name:     name,
		Icon:     icon,
		Color:    color,
		IsIncome: f.IsIncome,
	})
	if err != nil {
		return "", err
	}
	return c.ID, nil
}

func submitSetBudget(l *ledger.Ledger, f form) (string, error) {
	amount, err := parsePositiveAmount(f.Amount)
	if err != nil {
		return "", err
	}
	b, err := l.SetBudget(f.Month.Year, f.Month.Month, amount)
	if err != nil {
		return "", err
	}
	return b.Key().String(), nil
}

func parsePositiveAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, errAmountNotPositive
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	if !d.IsPositive() {
		return decimal.Zero, errAmountNotPositive
	}
	return d, nil
}

func resolveCategory(l *ledger.Ledger, ref string) (model.Category, error) {
	if strings.TrimSpace(ref) == "" {
		return model.Category{}, errors.New("category is required")
	}
	c, ok := l.CategoryService().Find(ref)
	if !ok {
		return model.Category{}, fmt.Errorf("unknown category %q", ref)
	}
	return c, nil
}
