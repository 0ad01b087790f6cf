package model

import "github.com/shopspring/decimal"

// Transaction is a single income or expense record. Amount is always a
// non-negative magnitude; polarity comes from the referenced category.
type Transaction struct {
	ID         string          `json:"id"`
	Date       Date            `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Note       string          `json:"note,omitempty"`
	CategoryID string          `json:"categoryId"`
}
