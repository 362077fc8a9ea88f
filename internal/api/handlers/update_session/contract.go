package update_session

import (
	"context"

	"github.com/luacris/studio-service/internal/service/sessions/models"
	"github.com/luacris/studio-service/pkg/types"
)

type SessionService interface {
	Update(ctx context.Context, id types.ID, req *models.SessionRequest) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
