package get_stats

import (
	"net/http"
	"strconv"

	"github.com/luacris/studio-service/internal/api/handlers"
)

const msgInvalidRefresh = "parâmetro refresh inválido, esperado true ou false"

type Handler struct {
	controller DashboardController
	logger     Logger
}

func NewHandler(controller DashboardController, logger Logger) *Handler {
	return &Handler{
		controller: controller,
		logger:     logger,
	}
}

// Handle GET /api/v1/stats?filter=<label|all>&refresh=<bool>
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := query.Get("filter")

	refresh := false
	if raw := query.Get("refresh"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /stats - Invalid refresh=%q", raw)
			handlers.RespondBadRequest(w, msgInvalidRefresh)
			return
		}
		refresh = parsed
	}

	if refresh || !h.controller.Loaded() {
		if _, err := h.controller.Load(r.Context()); err != nil {
			h.logger.Error("GET /stats - Failed to load dashboard: %v", err)
			handlers.RespondStoreUnavailable(w)
			return
		}
	}

	state, err := h.controller.ApplyFilter(filter)
	if err != nil {
		h.logger.Error("GET /stats - Failed to apply filter=%q: %v", filter, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /stats - Stats computed: filter=%s, total=%d", state.View.Filter, state.View.Metrics.Total)
	handlers.RespondJSON(w, http.StatusOK, FromState(state))
}
