package create_session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luacris/studio-service/internal/api/handlers"
	"github.com/luacris/studio-service/internal/service/sessions"
	"github.com/luacris/studio-service/internal/service/sessions/models"
	"github.com/luacris/studio-service/pkg/logger"
)

type fakeService struct {
	req *models.SessionRequest
	err error
}

func (s *fakeService) Create(ctx context.Context, req *models.SessionRequest) (*models.SessionResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.req = req
	return &models.SessionResponse{ID: "12", Title: req.Title}, nil
}

func post(svc SessionService, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", strings.NewReader(body))
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	svc := &fakeService{}

	rec := post(svc, `{"titulo":"Ensaio na praia","categoria":"Gestantes","destaque":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.req)
	assert.Equal(t, "Gestantes", svc.req.Category)
	assert.True(t, svc.req.Featured)
	assert.False(t, svc.req.HasPhotos())

	var resp models.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "12", resp.ID.String())
	assert.Equal(t, "Ensaio na praia", resp.Title)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		err   error
		code  int
		retry bool
	}{
		{"malformed body", `{"titulo":`, nil, http.StatusBadRequest, false},
		{"validation", `{"titulo":""}`, fmt.Errorf("%w: titulo is required", sessions.ErrInvalidInput), http.StatusBadRequest, false},
		{"store down", `{"titulo":"Ensaio"}`, fmt.Errorf("%w: connection refused", sessions.ErrStoreUnavailable), http.StatusBadGateway, true},
		{"unexpected", `{"titulo":"Ensaio"}`, errors.New("boom"), http.StatusBadGateway, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(&fakeService{err: tt.err}, tt.body)
			assert.Equal(t, tt.code, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
			assert.Equal(t, tt.retry, resp.Retry)
		})
	}
}
