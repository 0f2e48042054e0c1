package utils

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseCSV(t *testing.T) {
	csvData := `date,time_in,time_out,notes
2024-02-12,08:00,17:00,orientation
2024-02-13,08:00,12:00,half day`

	reader := strings.NewReader(csvData)

	got, err := ParseCSV(reader)
	if err != nil {
		t.Fatalf("ParseCSV returned error: %v", err)
	}

	want := [][]string{
		{"date", "time_in", "time_out", "notes"},
		{"2024-02-12", "08:00", "17:00", "orientation"},
		{"2024-02-13", "08:00", "12:00", "half day"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseCSV returned %+v, want %+v", got, want)
	}
}
