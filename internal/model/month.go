package model

import (
	"fmt"
	"time"

	"github.com/budgetbuddy-dev/budgetbuddy/internal/id"
)

// MonthKey identifies a calendar month bucket.
type MonthKey struct {
	Year  int
	Month int // 1-12
}

// MonthOf returns the month containing d.
func MonthOf(d Date) MonthKey {
	return MonthKey{Year: d.Year(), Month: int(d.Month())}
}

// ParseMonthKey parses "YYYY-MM".
func ParseMonthKey(s string) (MonthKey, error) {
	year, month, err := id.ParseMonthKey(s)
	if err != nil {
		return MonthKey{}, err
	}
	return MonthKey{Year: year, Month: month}, nil
}

// CurrentMonth returns the month containing today's local date.
func CurrentMonth() MonthKey {
	return MonthOf(Today())
}

// Valid reports whether Month is within 1..12.
func (k MonthKey) Valid() bool {
	return k.Month >= 1 && k.Month <= 12
}

// Add returns the month delta months away from k. Year boundaries roll
// over in both directions, so month 13 is January of the next year and
// month 0 is December of the previous one.
func (k MonthKey) Add(delta int) MonthKey {
	idx := k.Year*12 + (k.Month - 1) + delta
	year := idx / 12
	month := idx % 12
	if month < 0 {
		month += 12
		year--
	}
	return MonthKey{Year: year, Month: month + 1}
}

// Next returns the following month.
func (k MonthKey) Next() MonthKey { return k.Add(1) }

// Prev returns the preceding month.
func (k MonthKey) Prev() MonthKey { return k.Add(-1) }

// Bounds returns the first and last day of the month, both inclusive.
func (k MonthKey) Bounds() (start, end Date) {
	start = NewDate(k.Year, time.Month(k.Month), 1)
	end = NewDate(k.Year, time.Month(k.Month)+1, 0)
	return start, end
}

// Contains reports whether d falls within the month.
func (k MonthKey) Contains(d Date) bool {
	start, end := k.Bounds()
	return !d.Before(start) && !d.After(end)
}

// Label returns a human-readable name such as "March 2024".
func (k MonthKey) Label() string {
	return fmt.Sprintf("%s %d", time.Month(k.Month), k.Year)
}

func (k MonthKey) String() string {
	return id.FormatMonthKey(k.Year, k.Month)
}
