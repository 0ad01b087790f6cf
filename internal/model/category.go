package model

// Category labels transactions. IsIncome decides whether transactions
// referencing it count toward income or expense.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	IsIncome bool   `json:"isIncome"`
}

// Kind returns "income" or "expense".
func (c Category) Kind() string {
	if c.IsIncome {
		return "income"
	}
	return "expense"
}
