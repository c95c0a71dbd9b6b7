package externalcalendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
)

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) ListBusyWindows(ctx context.Context, business *domain.Business, rng domain.Interval) ([]domain.ExternalBusyWindow, error) {
	args := m.Called(ctx, business, rng)
	windows, _ := args.Get(0).([]domain.ExternalBusyWindow)
	return windows, args.Error(1)
}

type recorder struct {
	outcomes []string
}

func (r *recorder) ObserveExternalFetch(outcome string) {
	r.outcomes = append(r.outcomes, outcome)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var june = domain.Interval{
	Start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
}

func connected() *domain.Business {
	return &domain.Business{
		ID:       7,
		Calendar: &domain.CalendarCredentials{AccessToken: "token", RefreshToken: "refresh"},
	}
}

func window(day, fromHour, toHour int, marker string) domain.ExternalBusyWindow {
	return domain.ExternalBusyWindow{
		Interval: domain.Interval{
			Start: time.Date(2025, 6, day, fromHour, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 6, day, toHour, 0, 0, 0, time.UTC),
		},
		SourceID: "evt",
		Marker:   marker,
	}
}

func TestBusyWindows_NoCredentials(t *testing.T) {
	provider := &mockProvider{}
	rec := &recorder{}
	r := NewReconciler(provider, nil, Config{}, rec, nopLogger{})

	got := r.BusyWindows(context.Background(), &domain.Business{ID: 1}, june)

	assert.Empty(t, got)
	assert.NotNil(t, got)
	assert.Equal(t, []string{OutcomeSkipped}, rec.outcomes)
	provider.AssertNotCalled(t, "ListBusyWindows", mock.Anything, mock.Anything, mock.Anything)
}

func TestBusyWindows_DropsSelfOriginAndOutOfRange(t *testing.T) {
	provider := &mockProvider{}
	business := connected()
	outside := domain.ExternalBusyWindow{Interval: domain.Interval{
		Start: time.Date(2025, 7, 2, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 7, 2, 11, 0, 0, 0, time.UTC),
	}}
	provider.On("ListBusyWindows", mock.Anything, business, june).Return([]domain.ExternalBusyWindow{
		window(2, 10, 11, ""),
		window(3, 10, 11, "42"),
		window(4, 12, 12, ""),
		outside,
	}, nil)

	r := NewReconciler(provider, nil, Config{}, nil, nopLogger{})
	got := r.BusyWindows(context.Background(), business, june)

	require.Len(t, got, 1)
	assert.Equal(t, window(2, 10, 11, ""), got[0])
	provider.AssertExpectations(t)
}

func TestBusyWindows_FailOpen(t *testing.T) {
	provider := &mockProvider{}
	provider.On("ListBusyWindows", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("401 unauthorized"))
	rec := &recorder{}

	r := NewReconciler(provider, nil, Config{Policy: PolicyOpen}, rec, nopLogger{})
	got := r.BusyWindows(context.Background(), connected(), june)

	assert.Empty(t, got)
	assert.Equal(t, []string{OutcomeFailure}, rec.outcomes)
}

func TestBusyWindows_FailClosed(t *testing.T) {
	provider := &mockProvider{}
	provider.On("ListBusyWindows", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	r := NewReconciler(provider, nil, Config{Policy: PolicyClosed}, nil, nopLogger{})
	got := r.BusyWindows(context.Background(), connected(), june)

	require.Len(t, got, 1)
	assert.Equal(t, june, got[0].Interval)
	assert.False(t, got[0].IsSelfOrigin())
}

func TestBusyWindows_Timeout(t *testing.T) {
	provider := &mockProvider{}
	provider.On("ListBusyWindows", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			<-args.Get(0).(context.Context).Done()
		}).
		Return(nil, context.DeadlineExceeded)
	rec := &recorder{}

	r := NewReconciler(provider, nil, Config{Timeout: 20 * time.Millisecond}, rec, nopLogger{})
	got := r.BusyWindows(context.Background(), connected(), june)

	assert.Empty(t, got)
	assert.Equal(t, []string{OutcomeTimeout}, rec.outcomes)
}

func TestBusyWindows_UsesCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	provider := &mockProvider{}
	business := connected()
	provider.On("ListBusyWindows", mock.Anything, business, june).
		Return([]domain.ExternalBusyWindow{window(2, 10, 11, "")}, nil).Once()
	rec := &recorder{}

	r := NewReconciler(provider, NewRedisCache(client, time.Minute, "test:"), Config{}, rec, nopLogger{})

	first := r.BusyWindows(context.Background(), business, june)
	second := r.BusyWindows(context.Background(), business, june)

	require.Len(t, second, 1)
	assert.True(t, first[0].Start.Equal(second[0].Start))
	assert.True(t, first[0].End.Equal(second[0].End))
	assert.Equal(t, []string{OutcomeSuccess, OutcomeCacheHit}, rec.outcomes)
	assert.True(t, mr.Exists("test:"+cacheKey(business.ID, june)))
	provider.AssertNumberOfCalls(t, "ListBusyWindows", 1)
}

func TestBusyWindows_FallbackIsNotCached(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	provider := &mockProvider{}
	provider.On("ListBusyWindows", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("boom"))

	r := NewReconciler(provider, NewRedisCache(client, time.Minute, ""), Config{Policy: PolicyClosed}, nil, nopLogger{})
	r.BusyWindows(context.Background(), connected(), june)

	assert.Empty(t, mr.Keys())
}

func TestParseFailurePolicy(t *testing.T) {
	p, err := ParseFailurePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyOpen, p)

	p, err = ParseFailurePolicy(" Closed ")
	require.NoError(t, err)
	assert.Equal(t, PolicyClosed, p)

	_, err = ParseFailurePolicy("maybe")
	assert.ErrorIs(t, err, ErrInvalidPolicy)
}
