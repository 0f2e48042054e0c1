package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shin-da/ojt-tracking-system-sub000/pkg/errors"
	"github.com/Shin-da/ojt-tracking-system-sub000/utils"
)

var refWednesday = utils.MustParseDate("2024-02-14")

func TestProjectZeroState(t *testing.T) {
	report, err := Project(0, 0, 500, refWednesday, nil)
	require.NoError(t, err)

	assert.Equal(t, 0.0, report.ProgressPercentage)
	assert.Equal(t, 500.0, report.RemainingHours)
	assert.Equal(t, 0.0, report.DailyAverage)
	// No history: paced at 8h standard days, ceil(500/8) = 63.
	assert.Equal(t, 63, report.EstimatedCompletionDays)
	require.NotNil(t, report.EstimatedCompletionDate)
	assert.Equal(t, AddBusinessDays(refWednesday, 63, nil), *report.EstimatedCompletionDate)
	// ceil(63/5) = 13 weeks, ceil(500/13) = 39.
	assert.Equal(t, 39.0, report.WeeklyHoursNeeded)
}

func TestProjectAlreadyComplete(t *testing.T) {
	report, err := Project(500, 60, 500, refWednesday, nil)
	require.NoError(t, err)

	assert.Equal(t, 0.0, report.RemainingHours)
	assert.Equal(t, 0, report.EstimatedCompletionDays)
	assert.Nil(t, report.EstimatedCompletionDate)
	assert.Equal(t, 0.0, report.WeeklyHoursNeeded)
	assert.Equal(t, 100.0, report.ProgressPercentage)
}

func TestProjectOverTarget(t *testing.T) {
	report, err := Project(550, 70, 500, refWednesday, nil)
	require.NoError(t, err)

	assert.Equal(t, 100.0, report.ProgressPercentage)
	assert.Equal(t, 110.0, report.RawProgressPercentage)
	assert.Equal(t, 0.0, report.RemainingHours)
	assert.Nil(t, report.EstimatedCompletionDate)
}

func TestProjectInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name          string
		requiredHours float64
	}{
		{name: "Zero", requiredHours: 0},
		{name: "Negative", requiredHours: -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Project(100, 10, tt.requiredHours, refWednesday, nil)
			assert.ErrorIs(t, err, errors.InvalidConfiguration)
		})
	}
}

func TestProjectTwoDayHistory(t *testing.T) {
	report, err := Project(13, 2, 500, refWednesday, nil)
	require.NoError(t, err)

	assert.Equal(t, 2.6, report.ProgressPercentage)
	assert.Equal(t, 487.0, report.RemainingHours)
	assert.Equal(t, 6.5, report.DailyAverage)
	// ceil(487/6.5) = 75
	assert.Equal(t, 75, report.EstimatedCompletionDays)
}

func TestProjectOneDayRemaining(t *testing.T) {
	report, err := Project(492, 1, 500, refWednesday, nil)
	require.NoError(t, err)

	assert.Equal(t, 8.0, report.RemainingHours)
	assert.Equal(t, 1, report.EstimatedCompletionDays)
	require.NotNil(t, report.EstimatedCompletionDate)
	assert.Equal(t, utils.MustParseDate("2024-02-15"), *report.EstimatedCompletionDate)
	assert.Equal(t, 8.0, report.WeeklyHoursNeeded)
}

func TestProjectDeterministic(t *testing.T) {
	first, err := Project(120.5, 16, 500, refWednesday, nil)
	require.NoError(t, err)
	second, err := Project(120.5, 16, 500, refWednesday, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAddBusinessDays(t *testing.T) {
	friday := utils.MustParseDate("2024-02-16")

	tests := []struct {
		name     string
		from     time.Time
		days     int
		exclude  []time.Time
		expected time.Time
	}{
		{
			name:     "Zero days stays put",
			from:     friday,
			days:     0,
			expected: friday,
		},
		{
			name:     "One day from Friday lands on Monday",
			from:     friday,
			days:     1,
			expected: utils.MustParseDate("2024-02-19"),
		},
		{
			name:     "Full week from Wednesday",
			from:     refWednesday,
			days:     5,
			expected: utils.MustParseDate("2024-02-21"),
		},
		{
			name:     "Holiday on Monday pushes to Tuesday",
			from:     friday,
			days:     1,
			exclude:  []time.Time{utils.MustParseDate("2024-02-19")},
			expected: utils.MustParseDate("2024-02-20"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddBusinessDays(tt.from, tt.days, tt.exclude)
			assert.Equal(t, tt.expected, got)
		})
	}
}
