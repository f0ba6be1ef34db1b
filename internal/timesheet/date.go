package timesheet

import (
	"strings"
	"time"
)

// Checked in priority order; the first column present in the row is the
// one that gets parsed.
var dateColumns = []string{"Start date", "Date", "Start time"}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/2006",
	time.RFC3339,
}

// NormalizeDate resolves the row's work date, truncated to a UTC
// calendar day. It returns nil when no recognized column is present or
// the value fails every known layout: a missing date never fails the
// row, it only excludes it from date-dependent metrics.
func NormalizeDate(row RawRow) *time.Time {
	for _, column := range dateColumns {
		value, ok := row[column]
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		for _, layout := range dateLayouts {
			parsed, err := time.Parse(layout, value)
			if err != nil {
				continue
			}
			day := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			return &day
		}
		return nil
	}
	return nil
}
