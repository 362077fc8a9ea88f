package bookings

import (
	"context"

	"github.com/luacris/studio-service/internal/domain"
	"github.com/luacris/studio-service/pkg/types"
)

// BookingStore интерфейс коллекции агендаментов во внешнем хранилище
type BookingStore interface {
	ListBookings(ctx context.Context) ([]*domain.Booking, error)
	GetBooking(ctx context.Context, id types.ID) (*domain.Booking, error)
	CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	UpdateBooking(ctx context.Context, id types.ID, booking *domain.Booking) (*domain.Booking, error)
	DeleteBooking(ctx context.Context, id types.ID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
