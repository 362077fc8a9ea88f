package create_session

import (
	"errors"
	"net/http"

	"github.com/luacris/studio-service/internal/api/handlers"
	"github.com/luacris/studio-service/internal/service/sessions"
	"github.com/luacris/studio-service/internal/service/sessions/models"
)

const msgInvalidInput = "Informe o título da sessão"

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidBody)
		return
	}

	session, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("POST /sessions - Validation failed: %v", err)
			handlers.RespondValidationError(w, msgInvalidInput, err)

		default:
			h.logger.Error("POST /sessions - Failed to create session: title=%q, error=%v", req.Title, err)
			handlers.RespondStoreUnavailable(w)
		}
		return
	}

	h.logger.Info("POST /sessions - Session created successfully: session_id=%s", session.ID)
	handlers.RespondJSON(w, http.StatusCreated, session)
}
