package get_fully_booked_dates

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

	getFullyBookedDates "github.com/brambleappmatus/biztree-sub002/internal/usecase/get_fully_booked_dates"
	"github.com/brambleappmatus/biztree-sub002/pkg/logger"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *getFullyBookedDates.Request) (*getFullyBookedDates.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*getFullyBookedDates.Response)
	return resp, args.Error(1)
}

func serve(uc GetFullyBookedDatesUseCase, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/services/{serviceId}/fully-booked-dates", NewHandler(uc, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &getFullyBookedDates.Request{ServiceID: 3, Year: 2025, Month: time.June}).
		Return(&getFullyBookedDates.Response{ServiceID: 3, Year: 2025, Month: time.June, Dates: []string{"2025-06-01", "2025-06-07"}}, nil)

	rec := serve(uc, "/api/v1/services/3/fully-booked-dates?year=2025&month=6")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"serviceId":3,"year":2025,"month":6,"dates":["2025-06-01","2025-06-07"]}`, rec.Body.String())
}

func TestHandle_EmptyDatesIsArray(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).
		Return(&getFullyBookedDates.Response{ServiceID: 3, Year: 2025, Month: time.June}, nil)

	rec := serve(uc, "/api/v1/services/3/fully-booked-dates?year=2025&month=6")

	assert.JSONEq(t, `{"serviceId":3,"year":2025,"month":6,"dates":[]}`, rec.Body.String())
}

func TestHandle_BadRequest(t *testing.T) {
	uc := &mockUseCase{}
	for _, target := range []string{
		"/api/v1/services/x/fully-booked-dates?year=2025&month=6",
		"/api/v1/services/3/fully-booked-dates?month=6",
		"/api/v1/services/3/fully-booked-dates?year=2025&month=june",
		"/api/v1/services/3/fully-booked-dates?year=2025&month=6&people=-",
	} {
		assert.Equal(t, http.StatusBadRequest, serve(uc, target).Code, target)
	}
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_UseCaseErrors(t *testing.T) {
	cases := map[error]int{
		getFullyBookedDates.ErrInvalidInput:     http.StatusBadRequest,
		getFullyBookedDates.ErrServiceNotFound:  http.StatusNotFound,
		getFullyBookedDates.ErrBusinessNotFound: http.StatusNotFound,
		errors.New("boom"):                      http.StatusInternalServerError,
	}
	for err, status := range cases {
		uc := &mockUseCase{}
		uc.On("Execute", mock.Anything, mock.Anything).Return(nil, err)
		assert.Equal(t, status, serve(uc, "/api/v1/services/3/fully-booked-dates?year=2025&month=13").Code, err.Error())
	}
}
