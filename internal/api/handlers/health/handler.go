package health

import (
	"net/http"

	"github.com/brambleappmatus/biztree-sub002/internal/api/handlers"
)

// Handler liveness probe
type Handler struct {
	serviceName string
}

func NewHandler(serviceName string) *Handler {
	return &Handler{serviceName: serviceName}
}

// Response тело ответа health check
type Response struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{Status: "ok", Service: h.serviceName})
}
