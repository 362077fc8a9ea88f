package delete_booking

import (
	"context"

	"github.com/luacris/studio-service/pkg/types"
)

type BookingService interface {
	Delete(ctx context.Context, id types.ID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
