package get_day_availability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
	getDayAvailability "github.com/brambleappmatus/biztree-sub002/internal/usecase/get_day_availability"
	"github.com/brambleappmatus/biztree-sub002/pkg/logger"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *getDayAvailability.Request) (*getDayAvailability.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*getDayAvailability.Response)
	return resp, args.Error(1)
}

func serve(uc GetDayAvailabilityUseCase, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/services/{serviceId}/availability", NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &getDayAvailability.Request{ServiceID: 3, Date: date, NumberOfPeople: 2}).
		Return(&getDayAvailability.Response{
			Date:            date,
			ServiceID:       3,
			DurationMinutes: 60,
			HasAvailable:    true,
			Slots: []domain.Slot{
				domain.NewSlot(domain.NewInterval(date.Add(9*time.Hour), time.Hour), time.UTC),
			},
		}, nil)

	rec := serve(uc, "/api/v1/services/3/availability?date=2025-06-02&people=2")

	require.Equal(t, http.StatusOK, rec.Code)
	var body DayAvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2025-06-02", body.Date)
	assert.True(t, body.HasAvailable)
	assert.Equal(t, []Slot{{StartTime: "09:00", EndTime: "10:00"}}, body.Slots)
	uc.AssertExpectations(t)
}

func TestHandle_BadRequest(t *testing.T) {
	uc := &mockUseCase{}
	targets := []string{
		"/api/v1/services/abc/availability?date=2025-06-02",
		"/api/v1/services/3/availability",
		"/api/v1/services/3/availability?date=02.06.2025",
		"/api/v1/services/3/availability?date=2025-06-02&people=many",
	}
	for _, target := range targets {
		rec := serve(uc, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_UseCaseErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{getDayAvailability.ErrInvalidInput, http.StatusBadRequest},
		{getDayAvailability.ErrServiceNotFound, http.StatusNotFound},
		{getDayAvailability.ErrBusinessNotFound, http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		uc := &mockUseCase{}
		uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tc.err)

		rec := serve(uc, "/api/v1/services/3/availability?date=2025-06-02")
		assert.Equal(t, tc.status, rec.Code, tc.err.Error())
	}
}
