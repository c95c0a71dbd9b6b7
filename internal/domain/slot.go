package domain

import (
	"time"

	"github.com/brambleappmatus/biztree-sub002/pkg/types"
)

// Slot is a bookable interval presented in the business's wall-clock time
type Slot struct {
	Interval
	StartTime types.TimeString
	EndTime   types.TimeString
}

// NewSlot converts an absolute interval into a slot in loc.
// A slot ending exactly at midnight is shown as "24:00".
func NewSlot(iv Interval, loc *time.Location) Slot {
	local := iv.In(loc)
	end := types.NewTimeString(local.End)
	if end == "00:00" && local.End.After(local.Start) && local.End.YearDay() != local.Start.YearDay() {
		end = "24:00"
	}
	return Slot{
		Interval:  iv,
		StartTime: types.NewTimeString(local.Start),
		EndTime:   end,
	}
}

// DurationMinutes returns the slot length in minutes
func (s Slot) DurationMinutes() int {
	return int(s.Duration() / time.Minute)
}
