package model

import "github.com/shopspring/decimal"

// Budget is the spending target for one calendar month. There is at most
// one Budget per (Year, Month).
type Budget struct {
	Year   int             `json:"year"`
	Month  int             `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// Key returns the month this budget applies to.
func (b Budget) Key() MonthKey {
	return MonthKey{Year: b.Year, Month: b.Month}
}
