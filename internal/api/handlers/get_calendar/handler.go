package get_calendar

import (
	"errors"
	"net/http"

	"github.com/luacris/studio-service/internal/api/handlers"
	"github.com/luacris/studio-service/internal/service/bookings"
)

const msgInvalidMonth = "Mês inválido, esperado YYYY-MM"

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

// Handle GET /api/v1/bookings/calendar?month=YYYY-MM
// Без month строится текущий месяц
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	calendar, err := h.service.Calendar(r.Context(), month)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidMonth):
			h.logger.Warn("GET /bookings/calendar - Invalid month=%q", month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /bookings/calendar - Failed to build calendar: month=%q, error=%v", month, err)
			handlers.RespondStoreUnavailable(w)
		}
		return
	}

	h.logger.Info("GET /bookings/calendar - Calendar built: month=%s", calendar.Month)
	handlers.RespondJSON(w, http.StatusOK, calendar)
}
