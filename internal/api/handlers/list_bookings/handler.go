package list_bookings

import (
	"net/http"

	"github.com/luacris/studio-service/internal/api/handlers"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
		handlers.RespondStoreUnavailable(w)
		return
	}

	h.logger.Info("GET /bookings - Bookings listed: count=%d", len(resp.Bookings))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
