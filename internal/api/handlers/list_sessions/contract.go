package list_sessions

import (
	"context"

	"github.com/luacris/studio-service/internal/service/sessions/models"
)

type SessionService interface {
	List(ctx context.Context, featuredOnly bool) (*models.SessionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
