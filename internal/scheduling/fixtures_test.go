package scheduling

import (
	"time"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
	"github.com/brambleappmatus/biztree-sub002/pkg/ptr"
	"github.com/brambleappmatus/biztree-sub002/pkg/types"
)

// 2025-06-02 is a Monday
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func clock(hour, minute int) time.Time {
	return time.Date(2025, 6, 2, hour, minute, 0, 0, time.UTC)
}

func weekdays(openTime, closeTime types.TimeString) domain.WeeklySchedule {
	hours := make([]*domain.WorkingHours, 0, 7)
	for day := 0; day < 7; day++ {
		h := &domain.WorkingHours{DayOfWeek: day, OpenTime: openTime, CloseTime: closeTime}
		if day == 0 || day == 6 {
			h.IsClosed = true
		}
		hours = append(hours, h)
	}
	return domain.NewWeeklySchedule(hours)
}

func hourlyService(id int64, minutes int) *domain.Service {
	return &domain.Service{ID: id, BusinessID: 1, DurationMinutes: minutes, CalendarMode: domain.ModeHourly}
}

func newSnapshot(service *domain.Service) *Snapshot {
	return &Snapshot{
		Service:  service,
		Business: &domain.Business{ID: 1},
		Schedule: weekdays("08:00", "17:00"),
		Location: time.UTC,
		Now:      time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC),
	}
}

func booking(serviceID int64, mode domain.CalendarMode, start, end time.Time, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          start.Unix(),
		BusinessID:  1,
		ServiceID:   serviceID,
		ServiceMode: mode,
		StartTime:   start,
		EndTime:     end,
		Status:      status,
	}
}

func tableBooking(tableID int64, start, end time.Time) *domain.Booking {
	b := booking(10, domain.ModeTableReservation, start, end, domain.StatusConfirmed)
	b.TableID = ptr.Ptr(tableID)
	return b
}

func starts(slots []domain.Interval) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Start.Format(domain.TimeFormat))
	}
	return out
}
