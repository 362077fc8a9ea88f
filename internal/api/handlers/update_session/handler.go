package update_session

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/luacris/studio-service/internal/api/handlers"
	"github.com/luacris/studio-service/internal/service/sessions"
	"github.com/luacris/studio-service/internal/service/sessions/models"
	"github.com/luacris/studio-service/pkg/types"
)

const (
	msgInvalidSessionID = "ID da sessão inválido"
	msgInvalidInput     = "Informe o título da sessão"
	msgNotFound         = "Sessão não encontrada"
)

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

// Handle PUT /api/v1/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := types.ID(strings.TrimSpace(mux.Vars(r)["sessionId"]))
	if sessionID.IsZero() {
		h.logger.Warn("PUT /sessions/{id} - Empty session ID")
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	var req models.SessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id} - Invalid request body: session_id=%s, error=%v", sessionID, err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidBody)
		return
	}

	session, err := h.service.Update(r.Context(), sessionID, &req)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("PUT /sessions/{id} - Validation failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondValidationError(w, msgInvalidInput, err)

		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("PUT /sessions/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /sessions/{id} - Failed to update session: session_id=%s, error=%v", sessionID, err)
			handlers.RespondStoreUnavailable(w)
		}
		return
	}

	h.logger.Info("PUT /sessions/{id} - Session updated successfully: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, session)
}
