package delete_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/luacris/studio-service/internal/service/bookings"
	"github.com/luacris/studio-service/pkg/logger"
	"github.com/luacris/studio-service/pkg/types"
)

type fakeService struct {
	deleted []types.ID
}

func (s *fakeService) Delete(ctx context.Context, id types.ID) error {
	if id != "3" {
		return bookings.ErrBookingNotFound
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/{bookingId}", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/bookings/3", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []types.ID{"3"}, svc.deleted)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/bookings/4", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
