package get_charts

import (
	"net/http"

	"github.com/luacris/studio-service/internal/api/handlers"
)

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

// Handle GET /api/v1/stats/charts?filter=<label|all>
// Набор строится для фильтра запроса; без filter используется "all"
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if !h.controller.Loaded() {
		if _, err := h.controller.Load(r.Context()); err != nil {
			h.logger.Error("GET /stats/charts - Failed to load dashboard: %v", err)
			handlers.RespondStoreUnavailable(w)
			return
		}
	}

	filter := r.URL.Query().Get("filter")
	set, err := h.controller.Charts(filter)
	if err != nil {
		h.logger.Error("GET /stats/charts - Failed to build charts for filter=%q: %v", filter, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /stats/charts - Charts returned: generation=%d, filter=%s, count=%d",
		set.Generation, set.Filter, len(set.Charts))
	handlers.RespondJSON(w, http.StatusOK, set)
}
