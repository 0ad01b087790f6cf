package id

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Generator returns a fresh opaque identifier on each call.
type Generator func() string

// New returns a random (version 4) UUID string.
func New() string {
	return uuid.NewString()
}

// FormatMonthKey returns a month key like "2025-01".
func FormatMonthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// ParseMonthKey parses "2025-01" into year and month.
func ParseMonthKey(key string) (year, month int, err error) {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid month key format: %q", key)
	}

	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year in month key %q: %w", key, err)
	}

	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month in month key %q: %w", key, err)
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("month %d out of range in month key %q", month, key)
	}

	return year, month, nil
}
