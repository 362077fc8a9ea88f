package middleware

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsCollector интерфейс сбора HTTP метрик
type MetricsCollector interface {
	RecordHTTPRequest(method, route string, status int, duration time.Duration)
}
