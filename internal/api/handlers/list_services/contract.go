package list_services

import "github.com/luacris/studio-service/internal/service/catalog"

type Catalog interface {
	List() []catalog.Service
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
