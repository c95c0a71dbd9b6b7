package scheduling

import (
	"time"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
)

// Snapshot is the consistent set of inputs of one availability computation.
// The engine never mutates it.
type Snapshot struct {
	Service  *domain.Service
	Business *domain.Business
	Schedule domain.WeeklySchedule

	// Bookings are the business's bookings overlapping the requested range.
	// Non-occupying ones are ignored.
	Bookings    []*domain.Booking
	Tables      []*domain.Table
	BusyWindows []domain.ExternalBusyWindow

	Location *time.Location
	Now      time.Time
}

func (s *Snapshot) location() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

// DayRange returns [midnight, next midnight) of the date in loc.
func DayRange(date time.Time, loc *time.Location) domain.Interval {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := date.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return domain.Interval{Start: start, End: start.AddDate(0, 0, 1)}
}

// MonthRange returns [first day, first day of next month) in loc.
func MonthRange(year int, month time.Month, loc *time.Location) domain.Interval {
	if loc == nil {
		loc = time.UTC
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return domain.Interval{Start: start, End: start.AddDate(0, 1, 0)}
}
