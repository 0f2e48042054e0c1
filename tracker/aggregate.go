package tracker

import (
	"fmt"
	"sort"

	"github.com/Shin-da/ojt-tracking-system-sub000/model"
	"github.com/Shin-da/ojt-tracking-system-sub000/utils"
)

// PeriodBucket is the rollup for one week or month.
type PeriodBucket struct {
	Hours float64 `json:"hours"`
	Days  int     `json:"days"`
}

// PeriodEntry is a PeriodBucket paired with its sort key, for serialization.
type PeriodEntry struct {
	Period string  `json:"period"`
	Hours  float64 `json:"hours"`
	Days   int     `json:"days"`
}

type HeatmapPoint struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours_worked"`
}

// Summary is the full rollup of a set of time logs. All values derive from
// the input alone; aggregating the same input twice yields identical output.
type Summary struct {
	TotalHours float64
	TotalDays  int
	Daily      map[string]float64      // "2006-01-02" -> hours
	Weekly     map[string]PeriodBucket // "2024-W07" (ISO year/week, Monday start)
	Monthly    map[string]PeriodBucket // "2024-02"
	Heatmap    []HeatmapPoint          // daily map flattened, ascending by date
}

// Aggregate rolls raw time logs into daily, weekly and monthly buckets.
// Multiple logs on one date are additive; distinct dates count once toward
// TotalDays. An empty input yields zero totals and empty maps, not an error.
func Aggregate(entries []model.TimeLog) Summary {
	s := Summary{
		Daily:   make(map[string]float64),
		Weekly:  make(map[string]PeriodBucket),
		Monthly: make(map[string]PeriodBucket),
		Heatmap: []HeatmapPoint{},
	}

	byDate := utils.GroupBy(entries, func(e model.TimeLog) string {
		return utils.FormatDate(e.Date)
	})

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	for _, date := range dates {
		var dayHours float64
		for _, e := range byDate[date] {
			dayHours += e.HoursWorked
		}
		dayHours = round2(dayHours)

		s.Daily[date] = dayHours
		s.Heatmap = append(s.Heatmap, HeatmapPoint{Date: date, Hours: dayHours})
		s.TotalHours += dayHours
		s.TotalDays++

		day := utils.MustParseDate(date)

		isoYear, isoWeek := day.ISOWeek()
		weekKey := fmt.Sprintf("%04d-W%02d", isoYear, isoWeek)
		week := s.Weekly[weekKey]
		week.Hours = round2(week.Hours + dayHours)
		week.Days++
		s.Weekly[weekKey] = week

		monthKey := fmt.Sprintf("%04d-%02d", day.Year(), int(day.Month()))
		month := s.Monthly[monthKey]
		month.Hours = round2(month.Hours + dayHours)
		month.Days++
		s.Monthly[monthKey] = month
	}

	s.TotalHours = round2(s.TotalHours)
	return s
}

// WeeklySeries returns the weekly buckets ordered by week.
func (s Summary) WeeklySeries() []PeriodEntry {
	return sortedSeries(s.Weekly)
}

// MonthlySeries returns the monthly buckets ordered by month.
func (s Summary) MonthlySeries() []PeriodEntry {
	return sortedSeries(s.Monthly)
}

func sortedSeries(buckets map[string]PeriodBucket) []PeriodEntry {
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	series := make([]PeriodEntry, 0, len(keys))
	for _, k := range keys {
		series = append(series, PeriodEntry{Period: k, Hours: buckets[k].Hours, Days: buckets[k].Days})
	}
	return series
}
