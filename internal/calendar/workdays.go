// Package calendar counts the qualifying days left in the current
// billing period, which always ends on the last day of the month that
// contains the reference date.
package calendar

import (
	"time"

	"github.com/avelinec/tallysheet/internal/domain"
)

// RemainingWorkdays counts the calendar days from the reference date
// (inclusive) through the end of its month (inclusive) whose weekday is
// in the workday set. An empty set qualifies no day at all.
func RemainingWorkdays(reference time.Time, workdays domain.WorkdaySet) int {
	if workdays.Empty() {
		return 0
	}

	day := time.Date(reference.Year(), reference.Month(), reference.Day(), 0, 0, 0, 0, time.UTC)
	end := EndOfMonth(reference)

	count := 0
	for !day.After(end) {
		if workdays.Contains(mondayIndex(day.Weekday())) {
			count++
		}
		day = day.AddDate(0, 0, 1)
	}
	return count
}

// EndOfMonth returns the last calendar day of the month containing t.
func EndOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC)
}

// mondayIndex maps Go's Sunday-based weekday to the 0=Monday..6=Sunday
// indexing used by domain.WorkdaySet.
func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
