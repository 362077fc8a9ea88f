package recordstore

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound возвращается, когда хранилище ответило 404
	ErrNotFound = errors.New("recordstore: record not found")

	// ErrUnexpectedStatus возвращается при любом другом не-2xx ответе
	ErrUnexpectedStatus = errors.New("recordstore: unexpected status")

	// ErrTransport возвращается, когда запрос не удалось выполнить (соединение, таймаут)
	ErrTransport = errors.New("recordstore: transport error")

	// ErrInvalidResponse возвращается, когда тело ответа не удалось разобрать
	ErrInvalidResponse = errors.New("recordstore: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("recordstore: internal error")
)

// StatusError неуспешный ответ хранилища
type StatusError struct {
	Method     string
	Collection Collection
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("recordstore: %s /%s returned %d: %s", e.Method, e.Collection, e.StatusCode, e.Message)
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrNotFound)
func (e *StatusError) Unwrap() error {
	if e.StatusCode == 404 {
		return ErrNotFound
	}
	return ErrUnexpectedStatus
}
