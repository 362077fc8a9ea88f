package update_booking

import (
	"context"

	"github.com/luacris/studio-service/internal/service/bookings/models"
	"github.com/luacris/studio-service/pkg/types"
)

type BookingService interface {
	Update(ctx context.Context, id types.ID, req *models.BookingRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
