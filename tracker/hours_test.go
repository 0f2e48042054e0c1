package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Shin-da/ojt-tracking-system-sub000/pkg/errors"
)

func TestComputeHoursWorked(t *testing.T) {
	tests := []struct {
		name       string
		timeIn     string
		timeOut    string
		lunchBreak bool
		expected   float64
	}{
		{
			name:       "Full day with lunch",
			timeIn:     "08:00",
			timeOut:    "17:00",
			lunchBreak: true,
			expected:   8.0,
		},
		{
			name:       "Full day without lunch",
			timeIn:     "08:00",
			timeOut:    "17:00",
			lunchBreak: false,
			expected:   9.0,
		},
		{
			name:       "Morning only, lunch requested but not spanned",
			timeIn:     "09:00",
			timeOut:    "11:00",
			lunchBreak: true,
			expected:   2.0,
		},
		{
			name:       "Afternoon only, lunch requested but started after noon",
			timeIn:     "12:00",
			timeOut:    "18:00",
			lunchBreak: true,
			expected:   6.0,
		},
		{
			name:       "Ends during lunch hour, no deduction",
			timeIn:     "08:00",
			timeOut:    "12:30",
			lunchBreak: true,
			expected:   4.5,
		},
		{
			name:       "Barely spans lunch window",
			timeIn:     "11:59",
			timeOut:    "13:00",
			lunchBreak: true,
			expected:   0.02,
		},
		{
			name:       "Fractional span across lunch rounds to two decimals",
			timeIn:     "11:59",
			timeOut:    "13:30",
			lunchBreak: true,
			expected:   0.52,
		},
		{
			name:       "Fractional span rounds to two decimals",
			timeIn:     "08:10",
			timeOut:    "16:30",
			lunchBreak: false,
			expected:   8.33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours, err := ComputeHoursWorked(tt.timeIn, tt.timeOut, tt.lunchBreak)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, hours)
		})
	}
}

func TestComputeHoursWorkedInvalidRange(t *testing.T) {
	tests := []struct {
		name    string
		timeIn  string
		timeOut string
	}{
		{name: "Out before in", timeIn: "17:00", timeOut: "08:00"},
		{name: "Out equals in", timeIn: "08:00", timeOut: "08:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeHoursWorked(tt.timeIn, tt.timeOut, false)
			assert.ErrorIs(t, err, errors.InvalidTimeRange)
		})
	}
}

func TestComputeHoursWorkedUnparsableInput(t *testing.T) {
	_, err := ComputeHoursWorked("8am", "17:00", false)
	assert.Error(t, err)

	_, err = ComputeHoursWorked("08:00", "", false)
	assert.Error(t, err)
}

func TestParseClockAcceptsSeconds(t *testing.T) {
	clock, err := ParseClock("08:30:00")
	assert.NoError(t, err)
	assert.Equal(t, 8, clock.Hour())
	assert.Equal(t, 30, clock.Minute())
}
