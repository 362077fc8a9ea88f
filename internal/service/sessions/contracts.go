package sessions

import (
	"context"
	"net/url"

	"github.com/luacris/studio-service/internal/domain"
	"github.com/luacris/studio-service/pkg/types"
)

// SessionStore интерфейс коллекции сессий во внешнем хранилище
type SessionStore interface {
	ListSessions(ctx context.Context, query url.Values) ([]*domain.Session, error)
	GetSession(ctx context.Context, id types.ID) (*domain.Session, error)
	CreateSession(ctx context.Context, session *domain.Session) (*domain.Session, error)
	UpdateSession(ctx context.Context, id types.ID, session *domain.Session) (*domain.Session, error)
	DeleteSession(ctx context.Context, id types.ID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
