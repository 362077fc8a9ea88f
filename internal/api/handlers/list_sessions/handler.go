package list_sessions

import (
	"net/http"
	"strconv"

	"github.com/luacris/studio-service/internal/api/handlers"
)

const msgInvalidFeatured = "parâmetro featured inválido, esperado true ou false"

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

// Handle GET /api/v1/sessions?featured=<bool>
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	featured := false
	if raw := r.URL.Query().Get("featured"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /sessions - Invalid featured=%q", raw)
			handlers.RespondBadRequest(w, msgInvalidFeatured)
			return
		}
		featured = parsed
	}

	resp, err := h.service.List(r.Context(), featured)
	if err != nil {
		h.logger.Error("GET /sessions - Failed to list sessions: featured=%t, error=%v", featured, err)
		handlers.RespondStoreUnavailable(w)
		return
	}

	h.logger.Info("GET /sessions - Sessions listed: featured=%t, count=%d", featured, len(resp.Sessions))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
