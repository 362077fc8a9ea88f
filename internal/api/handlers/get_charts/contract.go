package get_charts

import (
	"context"

	"github.com/luacris/studio-service/internal/service/charts"
	"github.com/luacris/studio-service/internal/service/dashboard"
)

type DashboardController interface {
	Loaded() bool
	Load(ctx context.Context) (*dashboard.State, error)
	Charts(label string) (*charts.Set, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
