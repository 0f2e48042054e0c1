package tracker

import (
	"fmt"
	"math"
	"time"

	"github.com/Shin-da/ojt-tracking-system-sub000/pkg/errors"
)

const (
	// Lunch is deducted when a log starts before noon and runs to 13:00 or later.
	LunchStartHour = 12
	LunchEndHour   = 13
	LunchDeduction = 1.0

	// FallbackDailyHours paces the completion estimate for users with no history.
	FallbackDailyHours = 8.0
)

// ParseClock parses a wall-clock time string (e.g. "08:00") on the zero date.
func ParseClock(timeStr string) (time.Time, error) {
	t, err := time.Parse("15:04", timeStr)
	if err != nil {
		// Try with seconds
		t, err = time.Parse("15:04:05", timeStr)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock time %q: %w", timeStr, err)
	}
	return t, nil
}

// ComputeHoursWorked returns the decimal hours between two wall-clock times on
// the same day, less one hour when includeLunchBreak is set and the span
// covers the midday break. Fails with InvalidTimeRange when timeOut is not
// after timeIn; overnight spans are not supported.
func ComputeHoursWorked(timeIn, timeOut string, includeLunchBreak bool) (float64, error) {
	in, err := ParseClock(timeIn)
	if err != nil {
		return 0, err
	}
	out, err := ParseClock(timeOut)
	if err != nil {
		return 0, err
	}

	if !out.After(in) {
		return 0, errors.InvalidTimeRange
	}

	hours := out.Sub(in).Hours()
	if includeLunchBreak && in.Hour() < LunchStartHour && out.Hour() >= LunchEndHour {
		hours -= LunchDeduction
	}

	return round2(hours), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
