package timesheet

import (
	"errors"
	"strings"

	"github.com/avelinec/tallysheet/internal/domain"
)

const (
	projectColumn     = "Project"
	descriptionColumn = "Description"
)

// Validate normalizes every raw row, dropping the ones without a usable
// duration. It returns the surviving entries plus the rejected-row
// count. Two conditions abort the whole dataset: no recognized duration
// column exists in any row (domain.ErrNoDurationColumn), or zero rows
// survive (domain.ErrEmptyDataset). Both are returned as a
// domain.DatasetError carrying the rejected-row count, and the count
// return value is valid even when an error is returned.
func Validate(rows []RawRow) ([]domain.TimeEntry, int, error) {
	entries := make([]domain.TimeEntry, 0, len(rows))
	rejected := 0
	sawDurationColumn := false

	for _, row := range rows {
		hours, err := NormalizeDuration(row)
		if errors.Is(err, errNoDurationColumn) {
			rejected++
			continue
		}
		sawDurationColumn = true
		if err != nil {
			rejected++
			continue
		}

		project := strings.TrimSpace(row[projectColumn])
		if project == "" {
			project = domain.UnassignedProject
		}

		entries = append(entries, domain.TimeEntry{
			Project:       project,
			Description:   strings.TrimSpace(row[descriptionColumn]),
			DurationHours: hours,
			WorkDate:      NormalizeDate(row),
		})
	}

	if len(rows) > 0 && !sawDurationColumn {
		return nil, rejected, &domain.DatasetError{Reason: domain.ErrNoDurationColumn, RejectedRows: rejected}
	}
	if len(entries) == 0 {
		return nil, rejected, &domain.DatasetError{Reason: domain.ErrEmptyDataset, RejectedRows: rejected}
	}

	return entries, rejected, nil
}
