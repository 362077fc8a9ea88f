package get_session

import (
	"context"

	"github.com/luacris/studio-service/internal/service/sessions/models"
	"github.com/luacris/studio-service/pkg/types"
)

type SessionService interface {
	GetByID(ctx context.Context, id types.ID) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
