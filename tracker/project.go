package tracker

import (
	"math"
	"time"

	"github.com/Shin-da/ojt-tracking-system-sub000/pkg/errors"
	"github.com/Shin-da/ojt-tracking-system-sub000/utils"
)

// ProgressReport carries the forward-looking metrics derived from a Summary.
// EstimatedCompletionDate is nil when the target is already met.
type ProgressReport struct {
	RequiredHours           float64
	TotalHours              float64
	RemainingHours          float64
	ProgressPercentage      float64 // clamped to 100
	RawProgressPercentage   float64 // unclamped, for >100% display
	DailyAverage            float64
	EstimatedCompletionDays int
	EstimatedCompletionDate *time.Time
	WeeklyHoursNeeded       float64
}

// Project derives progress metrics from aggregated totals. referenceDate is
// explicit so projections are reproducible; holidays are skipped alongside
// weekends when advancing the completion date. Fails with
// InvalidConfiguration when requiredHours is zero or negative.
func Project(totalHours float64, totalDays int, requiredHours float64, referenceDate time.Time, holidays []time.Time) (ProgressReport, error) {
	if requiredHours <= 0 {
		return ProgressReport{}, errors.InvalidConfiguration
	}

	rawPct := round2(totalHours / requiredHours * 100)
	remaining := round2(math.Max(0, requiredHours-totalHours))

	var dailyAverage float64
	if totalDays > 0 {
		dailyAverage = round2(totalHours / float64(totalDays))
	}

	var days int
	switch {
	case remaining <= 0:
		days = 0
	case dailyAverage == 0:
		days = int(math.Ceil(remaining / FallbackDailyHours))
	default:
		days = int(math.Ceil(remaining / dailyAverage))
	}

	report := ProgressReport{
		RequiredHours:           requiredHours,
		TotalHours:              round2(totalHours),
		RemainingHours:          remaining,
		ProgressPercentage:      math.Min(100, rawPct),
		RawProgressPercentage:   rawPct,
		DailyAverage:            dailyAverage,
		EstimatedCompletionDays: days,
	}

	if days > 0 {
		completion := AddBusinessDays(referenceDate, days, holidays)
		report.EstimatedCompletionDate = &completion

		weeks := math.Ceil(float64(days) / 5)
		report.WeeklyHoursNeeded = math.Ceil(remaining / weeks)
	}

	return report, nil
}

// AddBusinessDays advances from the given date by n working days, skipping
// Saturdays, Sundays and any date in the exclusion list.
func AddBusinessDays(from time.Time, n int, exclude []time.Time) time.Time {
	skip := make(map[string]struct{}, len(exclude))
	for _, d := range exclude {
		skip[utils.FormatDate(d)] = struct{}{}
	}

	day := utils.DateOnly(from)
	for n > 0 {
		day = day.AddDate(0, 0, 1)
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}
		if _, holiday := skip[utils.FormatDate(day)]; holiday {
			continue
		}
		n--
	}
	return day
}
