package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelinec/tallysheet/internal/domain"
)

func entry(project string, hours float64) domain.TimeEntry {
	return domain.TimeEntry{Project: project, DurationHours: hours}
}

func datedEntry(project string, hours float64, y int, m time.Month, d int) domain.TimeEntry {
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return domain.TimeEntry{Project: project, DurationHours: hours, WorkDate: &date}
}

func TestAggregate_GroupsByProject(t *testing.T) {
	entries := []domain.TimeEntry{
		entry("A", 1),
		entry("A", 2),
		entry("B", 0.5),
	}

	result := Aggregate(entries, 20)

	require.Len(t, result.Groups, 2)
	assert.Equal(t, domain.ProjectGroup{Project: "A", TotalHours: 3, Amount: 60}, result.Groups[0])
	assert.Equal(t, domain.ProjectGroup{Project: "B", TotalHours: 0.5, Amount: 10}, result.Groups[1])
	assert.Equal(t, 3.5, result.TotalHours)
	assert.Equal(t, 70.0, result.TotalAmount)
}

func TestAggregate_FirstSeenOrder(t *testing.T) {
	entries := []domain.TimeEntry{
		entry("Zephyr", 1),
		entry("Atlas", 1),
		entry("Zephyr", 1),
		entry("Mistral", 1),
	}

	result := Aggregate(entries, 10)

	projects := make([]string, 0, len(result.Groups))
	for _, g := range result.Groups {
		projects = append(projects, g.Project)
	}
	assert.Equal(t, []string{"Zephyr", "Atlas", "Mistral"}, projects)
}

func TestAggregate_TotalsMatchGroupSums(t *testing.T) {
	entries := []domain.TimeEntry{
		entry("A", 0.1), entry("B", 0.2), entry("C", 0.3),
		entry("A", 1.0 / 3.0), entry("B", 2.0 / 7.0), entry("C", 0.125),
	}

	result := Aggregate(entries, 33.33)

	var hours, amount float64
	for _, g := range result.Groups {
		hours += g.TotalHours
		amount += g.Amount
	}
	assert.InEpsilon(t, hours, result.TotalHours, 1e-9)
	assert.InEpsilon(t, amount, result.TotalAmount, 1e-9)
}

func TestAggregate_Empty(t *testing.T) {
	result := Aggregate(nil, 20)
	assert.Empty(t, result.Groups)
	assert.Zero(t, result.TotalHours)
	assert.Zero(t, result.TotalAmount)
}

func TestLineItems(t *testing.T) {
	entries := []domain.TimeEntry{
		{Project: "A", Description: "refactor", DurationHours: 2},
		{Project: "B", DurationHours: 0.5},
	}

	lines := LineItems(entries, 40)

	require.Len(t, lines, 2)
	assert.Equal(t, domain.LineItem{Project: "A", Description: "refactor", Hours: 2, Amount: 80}, lines[0])
	assert.Equal(t, domain.LineItem{Project: "B", Hours: 0.5, Amount: 20}, lines[1])
}

func TestDaysWorked_DistinctDates(t *testing.T) {
	entries := []domain.TimeEntry{
		datedEntry("A", 1, 2024, time.March, 18),
		datedEntry("A", 2, 2024, time.March, 18),
		datedEntry("B", 1, 2024, time.March, 19),
		entry("C", 1), // undated, must not count
	}

	assert.Equal(t, 2, DaysWorked(entries))
}

func TestDaysWorked_NoDatedEntries(t *testing.T) {
	assert.Zero(t, DaysWorked([]domain.TimeEntry{entry("A", 1)}))
	assert.Zero(t, DaysWorked(nil))
}
