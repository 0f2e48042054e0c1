package common

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Shin-da/ojt-tracking-system-sub000/utils"
)

// DateOnly is a calendar date on the wire ("2006-01-02"), with no time
// component.
type DateOnly struct {
	time.Time
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	if s == "" {
		d.Time = time.Time{}
		return nil
	}

	t, err := utils.ParseDate(s)
	if err != nil {
		return fmt.Errorf("invalid date format: %v", err)
	}

	d.Time = t
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(utils.FormatDate(d.Time))
}
