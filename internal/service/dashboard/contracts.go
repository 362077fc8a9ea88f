package dashboard

import (
	"context"
	"net/url"

	"github.com/luacris/studio-service/internal/domain"
	"github.com/luacris/studio-service/internal/service/charts"
	"github.com/luacris/studio-service/internal/service/stats"
)

// BookingStore источник агендаментов
type BookingStore interface {
	ListBookings(ctx context.Context) ([]*domain.Booking, error)
}

// SessionStore источник сессий портфолио
type SessionStore interface {
	ListSessions(ctx context.Context, query url.Values) ([]*domain.Session, error)
}

// ChartBoard набор графиков, перестраиваемый целиком
type ChartBoard interface {
	Rebuild(view stats.View) *charts.Set
	Build(generation uint64, view stats.View) *charts.Set
	Current() *charts.Set
}

// MetricsCollector метрики дашборда
type MetricsCollector interface {
	SetSnapshotSize(n int)
	IncStaleResponses()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type noopMetrics struct{}

func (noopMetrics) SetSnapshotSize(int) {}
func (noopMetrics) IncStaleResponses()  {}
