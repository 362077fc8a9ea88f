package get_booking

import (
	"context"

	"github.com/luacris/studio-service/internal/service/bookings/models"
	"github.com/luacris/studio-service/pkg/types"
)

type BookingService interface {
	GetByID(ctx context.Context, id types.ID) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
