package get_available_tables

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/brambleappmatus/biztree-sub002/internal/api/handlers"
	"github.com/brambleappmatus/biztree-sub002/internal/domain"
	getAvailableTables "github.com/brambleappmatus/biztree-sub002/internal/usecase/get_available_tables"
	"github.com/brambleappmatus/biztree-sub002/pkg/types"
)

const (
	msgInvalidServiceID  = "некорректный ID услуги"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime       = "некорректный формат времени, ожидается HH:MM"
	msgInvalidDuration   = "некорректная длительность"
	msgServiceNotFound   = "услуга не найдена"
	msgBusinessNotFound  = "бизнес не найден"
	msgInvalidParameters = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableTablesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableTablesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceId}/available-tables
// Query params: date (YYYY-MM-DD), time (HH:MM), duration (optional, minutes)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /services/{id}/available-tables - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	query := r.URL.Query()

	dateStr := query.Get("date")
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /services/{id}/available-tables - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startTime, err := types.NewTimeStringFromString(query.Get("time"))
	if err != nil {
		h.logger.Warn("GET /services/{id}/available-tables - Invalid time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	duration, err := handlers.ParseOptionalInt(query.Get("duration"))
	if err != nil {
		h.logger.Warn("GET /services/{id}/available-tables - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableTables.Request{
		ServiceID:       serviceID,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableTables.ErrInvalidInput):
			h.logger.Warn("GET /services/{id}/available-tables - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParameters)

		case errors.Is(err, getAvailableTables.ErrServiceNotFound):
			h.logger.Warn("GET /services/{id}/available-tables - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableTables.ErrBusinessNotFound):
			h.logger.Warn("GET /services/{id}/available-tables - Business not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		default:
			h.logger.Error("GET /services/{id}/available-tables - Failed: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services/{id}/available-tables - %d tables free: service_id=%d, date=%s, time=%s",
		len(result.Tables), serviceID, dateStr, startTime)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, dateStr))
}
