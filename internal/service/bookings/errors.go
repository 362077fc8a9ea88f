package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда агендамент не найден
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidMonth возвращается при некорректном месяце календаря
	ErrInvalidMonth = errors.New("invalid calendar month")

	// ErrStoreUnavailable возвращается, когда хранилище недоступно или ответило ошибкой
	ErrStoreUnavailable = errors.New("record store unavailable")
)
