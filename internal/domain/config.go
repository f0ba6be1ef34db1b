package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Config is the caller-supplied configuration for one computation. It
// is built fresh per request and never mutated afterwards.
type Config struct {
	HourlyRate    float64
	GoalAmount    float64
	BaseCurrency  string
	Workdays      WorkdaySet
	ReferenceDate time.Time
}

// WorkdaySet is the set of billable weekdays, indexed 0=Monday through
// 6=Sunday. An empty set means no day qualifies.
type WorkdaySet map[int]struct{}

// NewWorkdaySet builds a set from weekday indices, silently skipping
// anything outside 0..6.
func NewWorkdaySet(indices ...int) WorkdaySet {
	set := WorkdaySet{}
	for _, i := range indices {
		if i >= 0 && i <= 6 {
			set[i] = struct{}{}
		}
	}
	return set
}

func (s WorkdaySet) Contains(index int) bool {
	_, ok := s[index]
	return ok
}

func (s WorkdaySet) Empty() bool { return len(s) == 0 }

// ParseAmount turns a form-supplied rate or goal into a usable number.
// Missing, unparsable, or negative input coerces to zero so a malformed
// goal or rate never blocks billing totals.
func ParseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// ParseWorkdays turns repeated form values into a WorkdaySet, coercing
// each value the same way ParseAmount coerces numbers: anything that is
// not a weekday index 0..6 is ignored.
func ParseWorkdays(raw []string) WorkdaySet {
	indices := make([]int, 0, len(raw))
	for _, v := range raw {
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			continue
		}
		indices = append(indices, i)
	}
	return NewWorkdaySet(indices...)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
