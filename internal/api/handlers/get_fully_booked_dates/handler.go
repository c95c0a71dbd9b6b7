package get_fully_booked_dates

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/brambleappmatus/biztree-sub002/internal/api/handlers"
	getFullyBookedDates "github.com/brambleappmatus/biztree-sub002/internal/usecase/get_fully_booked_dates"
)

const (
	msgInvalidServiceID  = "некорректный ID услуги"
	msgInvalidYear       = "некорректный год"
	msgInvalidMonth      = "некорректный месяц"
	msgInvalidPeople     = "некорректное количество гостей"
	msgServiceNotFound   = "услуга не найдена"
	msgBusinessNotFound  = "бизнес не найден"
	msgInvalidParameters = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetFullyBookedDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetFullyBookedDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceId}/fully-booked-dates
// Query params: year, month (required), people (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /services/{id}/fully-booked-dates - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	query := r.URL.Query()

	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		h.logger.Warn("GET /services/{id}/fully-booked-dates - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(query.Get("month"))
	if err != nil {
		h.logger.Warn("GET /services/{id}/fully-booked-dates - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	people, err := handlers.ParseOptionalInt(query.Get("people"))
	if err != nil {
		h.logger.Warn("GET /services/{id}/fully-booked-dates - Invalid people: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeople)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getFullyBookedDates.Request{
		ServiceID:      serviceID,
		Year:           year,
		Month:          time.Month(month),
		NumberOfPeople: people,
	})
	if err != nil {
		switch {
		case errors.Is(err, getFullyBookedDates.ErrInvalidInput):
			h.logger.Warn("GET /services/{id}/fully-booked-dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParameters)

		case errors.Is(err, getFullyBookedDates.ErrServiceNotFound):
			h.logger.Warn("GET /services/{id}/fully-booked-dates - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getFullyBookedDates.ErrBusinessNotFound):
			h.logger.Warn("GET /services/{id}/fully-booked-dates - Business not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		default:
			h.logger.Error("GET /services/{id}/fully-booked-dates - Failed: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services/{id}/fully-booked-dates - %d dates: service_id=%d, month=%04d-%02d",
		len(result.Dates), serviceID, year, month)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
