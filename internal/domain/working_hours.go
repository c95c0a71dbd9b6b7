package domain

import (
	"time"

	"github.com/brambleappmatus/biztree-sub002/pkg/types"
)

// WorkingHours is the opening window of a business on one day of week.
// DayOfWeek follows time.Weekday (Sunday = 0).
type WorkingHours struct {
	BusinessID int64
	DayOfWeek  int
	OpenTime   types.TimeString
	CloseTime  types.TimeString
	IsClosed   bool
}

// WeeklySchedule indexes working hours by weekday.
// A missing weekday means the business is closed.
type WeeklySchedule map[time.Weekday]*WorkingHours

// NewWeeklySchedule builds a schedule; when several entries share a weekday
// the first one wins and out-of-range weekdays are ignored.
func NewWeeklySchedule(hours []*WorkingHours) WeeklySchedule {
	schedule := make(WeeklySchedule, len(hours))
	for _, h := range hours {
		if h == nil || h.DayOfWeek < 0 || h.DayOfWeek > 6 {
			continue
		}
		day := time.Weekday(h.DayOfWeek)
		if _, exists := schedule[day]; exists {
			continue
		}
		schedule[day] = h
	}
	return schedule
}

// ForDate returns the entry for the date's weekday, nil when missing
func (s WeeklySchedule) ForDate(date time.Time) *WorkingHours {
	return s[date.Weekday()]
}

// IsOpenOn returns true when the business has a non-closed entry for the date
func (s WeeklySchedule) IsOpenOn(date time.Time) bool {
	h := s.ForDate(date)
	return h != nil && !h.IsClosed
}
