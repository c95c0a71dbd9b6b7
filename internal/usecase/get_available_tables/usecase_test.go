package get_available_tables

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
	"github.com/brambleappmatus/biztree-sub002/internal/scheduling"
	"github.com/brambleappmatus/biztree-sub002/internal/service/snapshot"
	"github.com/brambleappmatus/biztree-sub002/pkg/logger"
	"github.com/brambleappmatus/biztree-sub002/pkg/ptr"
	"github.com/brambleappmatus/biztree-sub002/pkg/types"
)

type fakeLoader struct {
	snap *scheduling.Snapshot
	err  error
	opts snapshot.Options
	rng  domain.Interval
}

func (f *fakeLoader) Load(_ context.Context, _ int64, rangeOf snapshot.RangeFunc, opts snapshot.Options) (*scheduling.Snapshot, error) {
	f.opts = opts
	if f.err != nil {
		return nil, f.err
	}
	f.rng = rangeOf(f.snap.Location)
	return f.snap, nil
}

var date = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func at(hour int) time.Time {
	return date.Add(time.Duration(hour) * time.Hour)
}

func restaurant() *scheduling.Snapshot {
	return &scheduling.Snapshot{
		Service:  &domain.Service{ID: 5, BusinessID: 7, DurationMinutes: 120, CalendarMode: domain.ModeTableReservation, RequiresTable: true},
		Business: &domain.Business{ID: 7},
		Tables: []*domain.Table{
			{ID: 3, BusinessID: 7, Name: "T3", Capacity: 6},
			{ID: 1, BusinessID: 7, Name: "T1", Capacity: 2},
			{ID: 2, BusinessID: 7, Name: "T2", Capacity: 4},
		},
		Bookings: []*domain.Booking{{
			ID: 1, BusinessID: 7, ServiceID: 5, ServiceMode: domain.ModeTableReservation,
			StartTime: at(18), EndTime: at(20), Status: domain.StatusConfirmed, TableID: ptr.Ptr(int64(2)),
		}},
		Location: time.UTC,
		Now:      date.AddDate(0, 0, -1),
	}
}

func ids(tables []*domain.Table) []int64 {
	out := make([]int64, 0, len(tables))
	for _, t := range tables {
		out = append(out, t.ID)
	}
	return out
}

func TestExecute_ExcludesOccupiedTables(t *testing.T) {
	loader := &fakeLoader{snap: restaurant()}
	uc := NewUseCase(loader, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 5, Date: date, StartTime: types.TimeString("19:00")})
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 3}, ids(resp.Tables))
	assert.Equal(t, types.TimeString("19:00"), resp.Slot.StartTime)
	assert.Equal(t, types.TimeString("21:00"), resp.Slot.EndTime)
	assert.True(t, loader.opts.SkipExternal)
	assert.Equal(t, date, loader.rng.Start)
}

func TestExecute_TouchingBookingDoesNotBlock(t *testing.T) {
	uc := NewUseCase(&fakeLoader{snap: restaurant()}, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 5, Date: date, StartTime: types.TimeString("20:00"), DurationMinutes: 60})
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2, 3}, ids(resp.Tables))
	assert.Equal(t, 60, resp.Slot.DurationMinutes())
}

func TestExecute_CancelledBookingIgnored(t *testing.T) {
	snap := restaurant()
	snap.Bookings[0].Status = domain.StatusCancelled
	uc := NewUseCase(&fakeLoader{snap: snap}, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 5, Date: date, StartTime: types.TimeString("18:30")})
	require.NoError(t, err)
	assert.Len(t, resp.Tables, 3)
}

func TestExecute_NoTables(t *testing.T) {
	snap := restaurant()
	snap.Tables = nil
	uc := NewUseCase(&fakeLoader{snap: snap}, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 5, Date: date, StartTime: types.TimeString("12:00")})
	require.NoError(t, err)
	assert.Empty(t, resp.Tables)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeLoader{snap: restaurant()}, logger.NewNop())

	cases := []*Request{
		{ServiceID: 0, Date: date, StartTime: "19:00"},
		{ServiceID: 5, StartTime: "19:00"},
		{ServiceID: 5, Date: date, StartTime: "7pm"},
		{ServiceID: 5, Date: date, StartTime: "19:00", DurationMinutes: -30},
		{ServiceID: 5, Date: date, StartTime: "19:00", DurationMinutes: domain.MaxDurationMinutes + 1},
	}
	for _, req := range cases {
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestExecute_MapsLoaderErrors(t *testing.T) {
	req := &Request{ServiceID: 5, Date: date, StartTime: "19:00"}

	_, err := NewUseCase(&fakeLoader{err: snapshot.ErrServiceNotFound}, logger.NewNop()).Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = NewUseCase(&fakeLoader{err: snapshot.ErrBusinessNotFound}, logger.NewNop()).Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrBusinessNotFound)

	_, err = NewUseCase(&fakeLoader{err: errors.New("db")}, logger.NewNop()).Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInternal)
}
