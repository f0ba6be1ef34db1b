// Package domain holds the data model shared by the billing pipeline:
// normalized time entries, per-computation configuration, and the two
// output documents handed to the rendering side.
package domain

import "time"

// UnassignedProject is the group label for entries that carry no
// project name.
const UnassignedProject = "Unassigned"

// TimeEntry is one normalized row of worked time. WorkDate is nil when
// no timestamp column could be resolved for the row; such entries still
// count toward hour and amount totals but are excluded from
// date-dependent metrics.
type TimeEntry struct {
	Project       string
	Description   string
	DurationHours float64
	WorkDate      *time.Time
}

// ProjectGroup is the per-project slice of an aggregation.
type ProjectGroup struct {
	Project    string  `json:"project"`
	TotalHours float64 `json:"totalHours"`
	Amount     float64 `json:"amount"`
}

// AggregationResult groups entries by project in first-seen order.
// TotalHours and TotalAmount are sums over the groups.
type AggregationResult struct {
	Groups      []ProjectGroup
	TotalHours  float64
	TotalAmount float64
}

// LineItem is one invoice line, corresponding to a single time entry.
type LineItem struct {
	Project     string  `json:"project"`
	Description string  `json:"description,omitempty"`
	Hours       float64 `json:"hours"`
	Amount      float64 `json:"amount"`
}

// InvoiceDocument is the renderable invoice model. Header fields are
// passed through verbatim; turning them into HTML or PDF is the
// rendering side's job.
type InvoiceDocument struct {
	Number         string         `json:"number"`
	IssueDate      string         `json:"issueDate,omitempty"`
	DueDate        string         `json:"dueDate,omitempty"`
	Company        string         `json:"company,omitempty"`
	CompanyAddress string         `json:"companyAddress,omitempty"`
	Client         string         `json:"client,omitempty"`
	ClientAddress  string         `json:"clientAddress,omitempty"`
	BankDetails    string         `json:"bankDetails,omitempty"`
	Currency       string         `json:"currency,omitempty"`
	HourlyRate     float64        `json:"hourlyRate"`
	Lines          []LineItem     `json:"lines"`
	Groups         []ProjectGroup `json:"groups"`
	TotalHours     float64        `json:"totalHours"`
	TotalAmount    float64        `json:"totalAmount"`
	RejectedRows   int            `json:"rejectedRows"`
}

// Rounded returns a copy with every monetary and hour figure rounded to
// two decimals. Internal computation stays full precision; this is
// applied once, at the serving boundary.
func (d InvoiceDocument) Rounded() InvoiceDocument {
	out := d
	out.HourlyRate = round2(d.HourlyRate)
	out.TotalHours = round2(d.TotalHours)
	out.TotalAmount = round2(d.TotalAmount)
	out.Lines = make([]LineItem, len(d.Lines))
	for i, line := range d.Lines {
		line.Hours = round2(line.Hours)
		line.Amount = round2(line.Amount)
		out.Lines[i] = line
	}
	out.Groups = roundedGroups(d.Groups)
	return out
}

// SummaryReport is the goal-pace projection for the current month.
// Currency is the configuration's opaque label passed through for the
// rendering side; the engine never converts or validates it.
type SummaryReport struct {
	Currency              string  `json:"currency,omitempty"`
	TotalHours            float64 `json:"totalHours"`
	DaysWorked            int     `json:"daysWorked"`
	RemainingWorkdays     int     `json:"remainingWorkdays"`
	EarnedSoFar           float64 `json:"earnedSoFar"`
	RemainingGoal         float64 `json:"remainingGoal"`
	RequiredHours         float64 `json:"requiredHours"`
	RequiredDailyAverage  float64 `json:"requiredDailyAverage"`
	ProjectedPeriodIncome float64 `json:"projectedPeriodIncome"`
	RejectedRows          int     `json:"rejectedRows"`
}

// Rounded returns a copy with the numeric fields rounded to two
// decimals, for the serving boundary.
func (r SummaryReport) Rounded() SummaryReport {
	out := r
	out.TotalHours = round2(r.TotalHours)
	out.EarnedSoFar = round2(r.EarnedSoFar)
	out.RemainingGoal = round2(r.RemainingGoal)
	out.RequiredHours = round2(r.RequiredHours)
	out.RequiredDailyAverage = round2(r.RequiredDailyAverage)
	out.ProjectedPeriodIncome = round2(r.ProjectedPeriodIncome)
	return out
}

func roundedGroups(groups []ProjectGroup) []ProjectGroup {
	out := make([]ProjectGroup, len(groups))
	for i, g := range groups {
		g.TotalHours = round2(g.TotalHours)
		g.Amount = round2(g.Amount)
		out[i] = g
	}
	return out
}
