package render

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Money formats amounts in one currency for one locale.
type Money struct {
	unit    currency.Unit
	scale   int
	printer *message.Printer
}

// NewMoney parses an ISO 4217 code and a BCP 47 locale tag.
func NewMoney(code, locale string) (*Money, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("parsing currency %q: %w", code, err)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parsing locale %q: %w", locale, err)
	}
	scale, _ := currency.Standard.Rounding(unit)
	return &Money{unit: unit, scale: scale, printer: message.NewPrinter(tag)}, nil
}

// Code returns the ISO currency code.
func (m *Money) Code() string {
	return m.unit.String()
}

// Format renders d with the currency symbol and the locale's grouping.
func (m *Money) Format(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + m.Format(d.Neg())
	}
	sym := m.printer.Sprint(currency.Symbol(m.unit))
	return sym + m.printer.Sprint(number.Decimal(d.InexactFloat64(), number.Scale(m.scale)))
}
