package create_booking

import (
	"errors"
	"net/http"

	"github.com/luacris/studio-service/internal/api/handlers"
	"github.com/luacris/studio-service/internal/service/bookings"
	"github.com/luacris/studio-service/internal/service/bookings/models"
)

const msgInvalidInput = "Preencha nome, email e telefone"

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

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.BookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidBody)
		return
	}

	booking, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondValidationError(w, msgInvalidInput, err)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: client=%s, error=%v", req.Client, err)
			handlers.RespondStoreUnavailable(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s", booking.ID)
	handlers.RespondJSON(w, http.StatusCreated, booking)
}
