// Package projection computes pace-against-goal metrics: what has been
// earned so far this period, what is left to reach the target, and the
// daily pace needed to close the gap.
package projection

import "github.com/avelinec/tallysheet/internal/domain"

// Inputs are the already-aggregated figures the projection works from.
type Inputs struct {
	TotalHours        float64
	HourlyRate        float64
	GoalAmount        float64
	DaysWorked        int
	RemainingWorkdays int
}

// Project derives the summary report in a single pass. Every division
// is guarded: a zero rate, zero remaining workdays, or zero days worked
// each report zero for the metrics they would otherwise divide by.
func Project(in Inputs) domain.SummaryReport {
	report := domain.SummaryReport{
		TotalHours:        in.TotalHours,
		DaysWorked:        in.DaysWorked,
		RemainingWorkdays: in.RemainingWorkdays,
	}

	report.EarnedSoFar = in.TotalHours * in.HourlyRate

	report.RemainingGoal = in.GoalAmount - report.EarnedSoFar
	if report.RemainingGoal < 0 {
		report.RemainingGoal = 0
	}

	if in.HourlyRate > 0 {
		report.RequiredHours = report.RemainingGoal / in.HourlyRate
	}

	if in.RemainingWorkdays > 0 {
		report.RequiredDailyAverage = report.RequiredHours / float64(in.RemainingWorkdays)
	}

	var hoursPerDay float64
	if in.DaysWorked > 0 {
		hoursPerDay = in.TotalHours / float64(in.DaysWorked)
	}
	report.ProjectedPeriodIncome = report.EarnedSoFar +
		hoursPerDay*float64(in.RemainingWorkdays)*in.HourlyRate

	return report
}
