package get_stats

import (
	"context"

	"github.com/luacris/studio-service/internal/service/dashboard"
)

type DashboardController interface {
	Loaded() bool
	Load(ctx context.Context) (*dashboard.State, error)
	ApplyFilter(label string) (*dashboard.State, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
