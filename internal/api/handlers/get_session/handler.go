package get_session

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

// Handle GET /api/v1/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := types.ID(strings.TrimSpace(mux.Vars(r)["sessionId"]))
	if sessionID.IsZero() {
		h.logger.Warn("GET /sessions/{id} - Empty session ID")
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	session, err := h.service.GetByID(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("GET /sessions/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /sessions/{id} - Failed to get session: session_id=%s, error=%v", sessionID, err)
			handlers.RespondStoreUnavailable(w)
		}
		return
	}

	h.logger.Info("GET /sessions/{id} - Session retrieved successfully: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, session)
}
