package get_calendar

import (
	"context"

	"github.com/luacris/studio-service/internal/service/bookings/models"
)

type BookingService interface {
	Calendar(ctx context.Context, month string) (*models.CalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
