// Package render prints ledger views to a terminal using lipgloss.
package render

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// AccentColor is the main theme color.
	AccentColor = lipgloss.Color("#6C5CE7")
	// IncomeColor marks income amounts.
	IncomeColor = lipgloss.Color("#00B894")
	// ExpenseColor marks expense amounts and overspend.
	ExpenseColor = lipgloss.Color("#E17055")
	// SubtleColor is for secondary text.
	SubtleColor = lipgloss.Color("#666666")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(AccentColor)

	LabelStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Width(12)

	IncomeStyle = lipgloss.NewStyle().
			Foreground(IncomeColor)

	ExpenseStyle = lipgloss.NewStyle().
			Foreground(ExpenseColor)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(IncomeColor)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(0, 1)
)

// Swatch returns a colored block for a category color such as "#4caf50".
func Swatch(color string) string {
	if color == "" {
		return " "
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("■")
}

// Success formats a confirmation message.
func Success(msg string) string {
	return SuccessStyle.Render("✓ " + msg)
}
