package get_service

import "github.com/luacris/studio-service/internal/service/catalog"

type Catalog interface {
	Get(id string) (*catalog.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
