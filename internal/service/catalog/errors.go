package catalog

import "errors"

// ErrServiceNotFound возвращается, когда услуги с таким id нет в каталоге
var ErrServiceNotFound = errors.New("catalog: service not found")
