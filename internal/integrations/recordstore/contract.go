package recordstore

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsCollector интерфейс сбора метрик запросов к хранилищу
type MetricsCollector interface {
	RecordStoreRequest(collection, method, outcome string, duration time.Duration)
}

type noopMetrics struct{}

func (noopMetrics) RecordStoreRequest(string, string, string, time.Duration) {}
