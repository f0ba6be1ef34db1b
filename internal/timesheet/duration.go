// Package timesheet normalizes raw time-tracking export rows into
// domain.TimeEntry values. Exports disagree on column names and
// duration encodings, so each logical field has an explicit prioritized
// candidate list; the first present column wins.
package timesheet

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RawRow is one export row as received from the parsing side: column
// name to cell value. The package never mutates it.
type RawRow map[string]string

// ErrUnparsableDuration marks a row whose duration cell could not be
// read. The validator drops such rows and counts them.
var ErrUnparsableDuration = errors.New("the duration value could not be parsed")

// errNoDurationColumn is row-scoped; the validator promotes it to
// domain.ErrNoDurationColumn only when it holds for the whole dataset.
var errNoDurationColumn = errors.New("no recognized duration column present")

type durationCandidate struct {
	column string
	parse  func(string) (float64, error)
}

// Checked in priority order: a clock-format duration, a pre-computed
// decimal-hours column, then a generic numeric field.
var durationCandidates = []durationCandidate{
	{column: "Duration", parse: parseClock},
	{column: "Duration (h)", parse: parseDecimalHours},
	{column: "Hours", parse: parseDecimalHours},
}

// NormalizeDuration resolves the row's worked time to decimal hours.
// The first candidate column present in the row decides: if its value
// does not parse, the row fails with ErrUnparsableDuration rather than
// falling through to lower-priority columns.
func NormalizeDuration(row RawRow) (float64, error) {
	for _, candidate := range durationCandidates {
		value, ok := row[candidate.column]
		if !ok {
			continue
		}
		hours, err := candidate.parse(strings.TrimSpace(value))
		if err != nil {
			return 0, fmt.Errorf("%w: %q in column %q", ErrUnparsableDuration, value, candidate.column)
		}
		return hours, nil
	}
	return 0, errNoDurationColumn
}

// parseClock reads an HH:MM:SS duration. Hours may exceed 23; minutes
// and seconds must stay below 60.
func parseClock(value string) (float64, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("expected HH:MM:SS, got %q", value)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 {
		return 0, fmt.Errorf("bad hours in %q", value)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("bad minutes in %q", value)
	}
	s, err := strconv.Atoi(parts[2])
	if err != nil || s < 0 || s > 59 {
		return 0, fmt.Errorf("bad seconds in %q", value)
	}

	return float64(h) + float64(m)/60 + float64(s)/3600, nil
}

func parseDecimalHours(value string) (float64, error) {
	hours, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours < 0 {
		return 0, fmt.Errorf("hours out of range: %q", value)
	}
	return hours, nil
}
