package delete_session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/luacris/studio-service/internal/service/sessions"
	"github.com/luacris/studio-service/pkg/logger"
	"github.com/luacris/studio-service/pkg/types"
)

type fakeService struct {
	deleted []types.ID
}

func (s *fakeService) Delete(ctx context.Context, id types.ID) error {
	if id == "99" {
		return sessions.ErrSessionNotFound
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/sessions/{sessionId}", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/sessions/4", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []types.ID{"4"}, svc.deleted)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/sessions/99", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
