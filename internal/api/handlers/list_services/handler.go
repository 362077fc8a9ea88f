package list_services

import (
	"net/http"

	"github.com/luacris/studio-service/internal/api/handlers"
	"github.com/luacris/studio-service/internal/service/catalog"
)

// ServiceListResponse HTTP response model
type ServiceListResponse struct {
	Services []catalog.Service `json:"services"`
}

type Handler struct {
	catalog Catalog
	logger  Logger
}

func NewHandler(catalog Catalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services := h.catalog.List()

	h.logger.Info("GET /services - Services listed: count=%d", len(services))
	handlers.RespondJSON(w, http.StatusOK, ServiceListResponse{Services: services})
}
