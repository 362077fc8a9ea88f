package dashboard

import "errors"

var (
	// ErrNoSnapshot возвращается, пока снимок агендаментов ни разу не загружен
	ErrNoSnapshot = errors.New("dashboard: no snapshot loaded")

	// ErrStoreUnavailable возвращается, когда хранилище не отдало агендаменты
	ErrStoreUnavailable = errors.New("dashboard: record store unavailable")
)
