package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Shin-da/ojt-tracking-system-sub000/model"
	"github.com/Shin-da/ojt-tracking-system-sub000/utils"
)

func entry(date, timeIn, timeOut string, hours float64) model.TimeLog {
	return model.TimeLog{
		Date:        utils.MustParseDate(date),
		TimeIn:      timeIn,
		TimeOut:     timeOut,
		HoursWorked: hours,
	}
}

func TestAggregateEmpty(t *testing.T) {
	s := Aggregate(nil)

	assert.Zero(t, s.TotalHours)
	assert.Zero(t, s.TotalDays)
	assert.Empty(t, s.Daily)
	assert.Empty(t, s.Weekly)
	assert.Empty(t, s.Monthly)
	assert.Empty(t, s.Heatmap)
}

func TestAggregateTwoDays(t *testing.T) {
	entries := []model.TimeLog{
		entry("2024-02-12", "08:00", "17:00", 9.0),
		entry("2024-02-13", "08:00", "12:00", 4.0),
	}

	s := Aggregate(entries)

	assert.Equal(t, 13.0, s.TotalHours)
	assert.Equal(t, 2, s.TotalDays)
	assert.Equal(t, 9.0, s.Daily["2024-02-12"])
	assert.Equal(t, 4.0, s.Daily["2024-02-13"])

	// 2024-02-12 is a Monday of ISO week 7.
	assert.Equal(t, PeriodBucket{Hours: 13.0, Days: 2}, s.Weekly["2024-W07"])
	assert.Equal(t, PeriodBucket{Hours: 13.0, Days: 2}, s.Monthly["2024-02"])

	assert.Equal(t, []HeatmapPoint{
		{Date: "2024-02-12", Hours: 9.0},
		{Date: "2024-02-13", Hours: 4.0},
	}, s.Heatmap)
}

func TestAggregateSameDayEntriesAreAdditive(t *testing.T) {
	entries := []model.TimeLog{
		entry("2024-03-01", "08:00", "12:00", 4.0),
		entry("2024-03-01", "13:00", "16:30", 3.5),
	}

	s := Aggregate(entries)

	assert.Equal(t, 7.5, s.Daily["2024-03-01"])
	assert.Equal(t, 1, s.TotalDays)
	assert.Equal(t, 7.5, s.TotalHours)
	assert.Len(t, s.Heatmap, 1)
}

func TestAggregateWeekSpansYearBoundary(t *testing.T) {
	// 2024-12-30 (Mon) and 2025-01-02 (Thu) share ISO week 2025-W01.
	entries := []model.TimeLog{
		entry("2024-12-30", "08:00", "16:00", 8.0),
		entry("2025-01-02", "08:00", "16:00", 8.0),
	}

	s := Aggregate(entries)

	assert.Equal(t, PeriodBucket{Hours: 16.0, Days: 2}, s.Weekly["2025-W01"])
	assert.Len(t, s.Monthly, 2)
	assert.Equal(t, PeriodBucket{Hours: 8.0, Days: 1}, s.Monthly["2024-12"])
	assert.Equal(t, PeriodBucket{Hours: 8.0, Days: 1}, s.Monthly["2025-01"])
}

func TestAggregateAdditivity(t *testing.T) {
	entries := []model.TimeLog{
		entry("2024-02-12", "08:00", "17:00", 9.0),
		entry("2024-02-13", "08:00", "12:00", 4.0),
		entry("2024-02-19", "08:00", "16:30", 8.5),
		entry("2024-03-04", "09:00", "15:00", 6.0),
	}

	s := Aggregate(entries)

	var dailySum, weeklySum, monthlySum float64
	for _, h := range s.Daily {
		dailySum += h
	}
	for _, b := range s.Weekly {
		weeklySum += b.Hours
	}
	for _, b := range s.Monthly {
		monthlySum += b.Hours
	}

	assert.Equal(t, s.TotalHours, dailySum)
	assert.Equal(t, s.TotalHours, weeklySum)
	assert.Equal(t, s.TotalHours, monthlySum)
}

func TestAggregateDeterministic(t *testing.T) {
	entries := []model.TimeLog{
		entry("2024-02-13", "08:00", "12:00", 4.0),
		entry("2024-02-12", "08:00", "17:00", 9.0),
		entry("2024-02-12", "18:00", "19:00", 1.0),
	}

	first := Aggregate(entries)
	second := Aggregate(entries)

	assert.Equal(t, first, second)
}

func TestSummarySeriesSorted(t *testing.T) {
	entries := []model.TimeLog{
		entry("2024-03-04", "09:00", "15:00", 6.0),
		entry("2024-02-12", "08:00", "17:00", 9.0),
		entry("2023-12-11", "08:00", "16:00", 8.0),
	}

	s := Aggregate(entries)

	weekly := s.WeeklySeries()
	assert.Equal(t, []string{"2023-W50", "2024-W07", "2024-W10"}, []string{weekly[0].Period, weekly[1].Period, weekly[2].Period})

	monthly := s.MonthlySeries()
	assert.Equal(t, []string{"2023-12", "2024-02", "2024-03"}, []string{monthly[0].Period, monthly[1].Period, monthly[2].Period})
}
