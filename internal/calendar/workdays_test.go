package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avelinec/tallysheet/internal/domain"
)

// 2024-01-15 is a Monday; January 2024 ends on Wednesday the 31st.
var jan15 = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

func TestRemainingWorkdays_EmptySetQualifiesNothing(t *testing.T) {
	assert.Zero(t, RemainingWorkdays(jan15, domain.NewWorkdaySet()))
	assert.Zero(t, RemainingWorkdays(time.Date(2030, time.July, 1, 0, 0, 0, 0, time.UTC), domain.WorkdaySet{}))
}

func TestRemainingWorkdays_CountsThroughMonthEnd(t *testing.T) {
	tests := []struct {
		name     string
		workdays domain.WorkdaySet
		want     int
	}{
		{name: "mondays only", workdays: domain.NewWorkdaySet(0), want: 3},       // 15th, 22nd, 29th
		{name: "sundays only", workdays: domain.NewWorkdaySet(6), want: 2},       // 21st, 28th
		{name: "weekdays", workdays: domain.NewWorkdaySet(0, 1, 2, 3, 4), want: 13},
		{name: "every day", workdays: domain.NewWorkdaySet(0, 1, 2, 3, 4, 5, 6), want: 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RemainingWorkdays(jan15, tt.workdays))
		})
	}
}

func TestRemainingWorkdays_ReferenceDayIsInclusive(t *testing.T) {
	// The reference date itself counts when its weekday qualifies.
	lastDay := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC) // Wednesday
	assert.Equal(t, 1, RemainingWorkdays(lastDay, domain.NewWorkdaySet(2)))
	assert.Zero(t, RemainingWorkdays(lastDay, domain.NewWorkdaySet(0)))
}

func TestRemainingWorkdays_LeapFebruary(t *testing.T) {
	// 2024-02-26 is a Monday and February 2024 runs through the 29th.
	feb26 := time.Date(2024, time.February, 26, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 4, RemainingWorkdays(feb26, domain.NewWorkdaySet(0, 1, 2, 3, 4)))
}

func TestRemainingWorkdays_IgnoresTimeOfDay(t *testing.T) {
	lateInTheDay := time.Date(2024, time.January, 31, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, 1, RemainingWorkdays(lateInTheDay, domain.NewWorkdaySet(2)))
}

func TestEndOfMonth(t *testing.T) {
	tests := []struct {
		in   time.Time
		want time.Time
	}{
		{in: jan15, want: time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)},
		{in: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), want: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)},
		{in: time.Date(2023, time.February, 10, 0, 0, 0, 0, time.UTC), want: time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC)},
		{in: time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), want: time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		assert.True(t, EndOfMonth(tt.in).Equal(tt.want), "EndOfMonth(%v) = %v, want %v", tt.in, EndOfMonth(tt.in), tt.want)
	}
}
