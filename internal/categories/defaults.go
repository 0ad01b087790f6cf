package categories

import (
	"github.com/budgetbuddy-dev/budgetbuddy/internal/id"
	"github.com/budgetbuddy-dev/budgetbuddy/internal/model"
)

// DefaultCategories returns the categories seeded on first run, each with a
// fresh id from newID.
func DefaultCategories(newID id.Generator) []model.Category {
	if newID == nil {
		newID = id.New
	}
	seed := []model.Category{
		{Name: "Salario", Icon: "💵", Color: "#16A34A", IsIncome: true},
		{Name: "Venta", Icon: "🛒", Color: "#10B981", IsIncome: true},
		{Name: "Comida", Icon: "🍽️", Color: "#EF4444"},
		{Name: "Transporte", Icon: "🚗", Color: "#22C55E"},
		{Name: "Servicios", Icon: "⚡", Color: "#F59E0B"},
		{Name: "Renta", Icon: "🏠", Color: "#3B82F6"},
		{Name: "Ocio", Icon: "✨", Color: "#A855F7"},
	}
	for i := range seed {
		seed[i].ID = newID()
	}
	return seed
}
