// Package billing turns validated time entries into per-project
// aggregates and invoice line items.
package billing

import (
	"github.com/avelinec/tallysheet/internal/domain"
)

// Aggregate groups entries by project in first-seen order and prices
// each group at the hourly rate. Every entry lands in exactly one
// group; dataset totals are the sum over groups.
func Aggregate(entries []domain.TimeEntry, hourlyRate float64) domain.AggregationResult {
	var result domain.AggregationResult
	index := make(map[string]int)

	for _, entry := range entries {
		i, ok := index[entry.Project]
		if !ok {
			i = len(result.Groups)
			index[entry.Project] = i
			result.Groups = append(result.Groups, domain.ProjectGroup{Project: entry.Project})
		}
		result.Groups[i].TotalHours += entry.DurationHours
	}

	for i := range result.Groups {
		result.Groups[i].Amount = result.Groups[i].TotalHours * hourlyRate
		result.TotalHours += result.Groups[i].TotalHours
		result.TotalAmount += result.Groups[i].Amount
	}

	return result
}

// LineItems builds one invoice line per entry, in input order.
func LineItems(entries []domain.TimeEntry, hourlyRate float64) []domain.LineItem {
	lines := make([]domain.LineItem, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, domain.LineItem{
			Project:     entry.Project,
			Description: entry.Description,
			Hours:       entry.DurationHours,
			Amount:      entry.DurationHours * hourlyRate,
		})
	}
	return lines
}

// DaysWorked counts the distinct calendar days among date-bearing
// entries. Entries without a work date do not contribute.
func DaysWorked(entries []domain.TimeEntry) int {
	days := make(map[string]struct{})
	for _, entry := range entries {
		if entry.WorkDate == nil {
			continue
		}
		days[entry.WorkDate.Format("2006-01-02")] = struct{}{}
	}
	return len(days)
}
