package dto

import (
	"fmt"
	"time"
)

// Date/time fields cross the HTTP boundary as ISO-8601 strings; date-only
// inputs (billDate, filter bounds) also accept YYYY-MM-DD.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate parses an ISO-8601 timestamp or a plain date.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

// FormatTime renders a timestamp as an ISO-8601 string.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// FormatTimePtr renders a nullable timestamp, preserving JSON null.
func FormatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatTime(*t)
	return &s
}
