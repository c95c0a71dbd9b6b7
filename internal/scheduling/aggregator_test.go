package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
)

var juneWeekends = []string{
	"2025-06-01", "2025-06-07", "2025-06-08", "2025-06-14", "2025-06-15",
	"2025-06-21", "2025-06-22", "2025-06-28", "2025-06-29",
}

func TestAggregator_ClosedDayIsUnavailable(t *testing.T) {
	snap := newSnapshot(&domain.Service{ID: 1, CalendarMode: domain.ModeTableReservation})
	snap.Schedule = domain.NewWeeklySchedule([]*domain.WorkingHours{
		{DayOfWeek: 1, OpenTime: "08:00", CloseTime: "17:00", IsClosed: true},
	})
	snap.Tables = []*domain.Table{{ID: 1, Capacity: 10}}

	agg, err := NewAggregator(snap, Query{})
	require.NoError(t, err)

	assert.False(t, agg.HasAvailableSlot(monday))
	assert.Empty(t, agg.AvailableSlots(monday))
	assert.Contains(t, agg.FullyBookedDates(2025, time.June), "2025-06-02")
}

func TestAggregator_FirstAvailableSlot(t *testing.T) {
	snap := newSnapshot(hourlyService(1, 60))
	snap.Bookings = []*domain.Booking{
		booking(1, domain.ModeHourly, clock(8, 0), clock(10, 0), domain.StatusPending),
	}
	agg, err := NewAggregator(snap, Query{})
	require.NoError(t, err)

	slot, ok := agg.FirstAvailableSlot(monday)

	require.True(t, ok)
	assert.Equal(t, clock(10, 0), slot.Start)
}

func TestAggregator_DefaultDuration(t *testing.T) {
	snap := newSnapshot(hourlyService(1, 0))
	snap.Schedule = domain.NewWeeklySchedule([]*domain.WorkingHours{
		{DayOfWeek: 1, OpenTime: "08:00", CloseTime: "09:00"},
	})
	agg, err := NewAggregator(snap, Query{})
	require.NoError(t, err)

	assert.Equal(t, []string{"08:00", "08:30"}, starts(agg.AvailableSlots(monday)))
}

func TestAggregator_FullyBookedDates(t *testing.T) {
	snap := newSnapshot(hourlyService(1, 60))
	// one day completely booked
	snap.Bookings = []*domain.Booking{
		booking(1, domain.ModeHourly,
			time.Date(2025, 6, 11, 8, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 11, 17, 0, 0, 0, time.UTC),
			domain.StatusConfirmed),
	}
	agg, err := NewAggregator(snap, Query{})
	require.NoError(t, err)

	want := append([]string{}, juneWeekends[:3]...)
	want = append(want, "2025-06-11")
	want = append(want, juneWeekends[3:]...)

	first := agg.FullyBookedDates(2025, time.June)
	second := agg.FullyBookedDates(2025, time.June)

	assert.Equal(t, want, first)
	assert.Equal(t, first, second)
}

func TestAggregator_FullyBookedDates_PastDays(t *testing.T) {
	snap := newSnapshot(hourlyService(1, 60))
	snap.Now = time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)
	agg, err := NewAggregator(snap, Query{})
	require.NoError(t, err)

	got := agg.FullyBookedDates(2025, time.June)

	assert.Contains(t, got, "2025-06-02")
	assert.Contains(t, got, "2025-06-03")
	assert.NotContains(t, got, "2025-06-04", "afternoon slots remain")
	assert.NotContains(t, got, "2025-06-05")
}

func TestMonthRange(t *testing.T) {
	rng := MonthRange(2024, time.February, time.UTC)

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), rng.Start)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), rng.End)
	assert.Equal(t, 29*24*time.Hour, rng.Duration())
}
