package get_available_tables

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
	getAvailableTables "github.com/brambleappmatus/biztree-sub002/internal/usecase/get_available_tables"
	"github.com/brambleappmatus/biztree-sub002/pkg/logger"
	"github.com/brambleappmatus/biztree-sub002/pkg/types"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableTables.Request) (*getAvailableTables.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*getAvailableTables.Response)
	return resp, args.Error(1)
}

func serve(uc GetAvailableTablesUseCase, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/services/{serviceId}/available-tables", NewHandler(uc, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	slot := domain.NewInterval(date.Add(19*time.Hour), 90*time.Minute)

	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &getAvailableTables.Request{
		ServiceID: 5, Date: date, StartTime: types.TimeString("19:00"), DurationMinutes: 90,
	}).Return(&getAvailableTables.Response{
		ServiceID: 5,
		Slot:      domain.NewSlot(slot, time.UTC),
		Tables:    []*domain.Table{{ID: 1, Name: "Window", Capacity: 2}},
	}, nil)

	rec := serve(uc, "/api/v1/services/5/available-tables?date=2025-06-02&time=19:00&duration=90")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"serviceId": 5,
		"date": "2025-06-02",
		"startTime": "19:00",
		"endTime": "20:30",
		"tables": [{"id": 1, "name": "Window", "capacity": 2}]
	}`, rec.Body.String())
}

func TestHandle_BadRequest(t *testing.T) {
	uc := &mockUseCase{}
	for _, target := range []string{
		"/api/v1/services/5/available-tables?time=19:00",
		"/api/v1/services/5/available-tables?date=2025-06-02",
		"/api/v1/services/5/available-tables?date=2025-06-02&time=7pm",
		"/api/v1/services/5/available-tables?date=2025-06-02&time=19:00&duration=long",
	} {
		assert.Equal(t, http.StatusBadRequest, serve(uc, target).Code, target)
	}
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_UseCaseErrors(t *testing.T) {
	cases := map[error]int{
		getAvailableTables.ErrInvalidInput:     http.StatusBadRequest,
		getAvailableTables.ErrServiceNotFound:  http.StatusNotFound,
		getAvailableTables.ErrBusinessNotFound: http.StatusNotFound,
		errors.New("boom"):                     http.StatusInternalServerError,
	}
	for err, status := range cases {
		uc := &mockUseCase{}
		uc.On("Execute", mock.Anything, mock.Anything).Return(nil, err)
		assert.Equal(t, status, serve(uc, "/api/v1/services/5/available-tables?date=2025-06-02&time=19:00").Code)
	}
}
