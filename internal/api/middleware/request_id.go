package middleware

import (
	"net/http"
	"strings"

	"github.com/luacris/studio-service/pkg/requestid"
)

// maxRequestIDLen ограничение длины входящего X-Request-ID
const maxRequestIDLen = 128

// RequestID берет X-Request-ID из запроса или генерирует новый
// и кладет его в контекст и заголовок ответа
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(requestid.Header))
		if id == "" || len(id) > maxRequestIDLen {
			id = requestid.New()
		}

		w.Header().Set(requestid.Header, id)
		next.ServeHTTP(w, r.WithContext(requestid.NewContext(r.Context(), id)))
	})
}
