package list_services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luacris/studio-service/internal/service/catalog"
	"github.com/luacris/studio-service/pkg/logger"
)

func TestHandle(t *testing.T) {
	h := NewHandler(catalog.New(), logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ServiceListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Services, 4)
	assert.Equal(t, catalog.New().List(), resp.Services)
}
