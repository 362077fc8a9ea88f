package delete_session

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/luacris/studio-service/internal/api/handlers"
	"github.com/luacris/studio-service/internal/service/sessions"
	"github.com/luacris/studio-service/pkg/types"
)

const (
	msgInvalidSessionID = "ID da sessão inválido"
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

// Handle DELETE /api/v1/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := types.ID(strings.TrimSpace(mux.Vars(r)["sessionId"]))
	if sessionID.IsZero() {
		h.logger.Warn("DELETE /sessions/{id} - Empty session ID")
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	if err := h.service.Delete(r.Context(), sessionID); err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("DELETE /sessions/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /sessions/{id} - Failed to delete session: session_id=%s, error=%v", sessionID, err)
			handlers.RespondStoreUnavailable(w)
		}
		return
	}

	h.logger.Info("DELETE /sessions/{id} - Session deleted successfully: session_id=%s", sessionID)
	handlers.RespondNoContent(w)
}
