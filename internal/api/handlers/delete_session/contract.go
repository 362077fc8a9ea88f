package delete_session

import (
	"context"

	"github.com/luacris/studio-service/pkg/types"
)

type SessionService interface {
	Delete(ctx context.Context, id types.ID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
