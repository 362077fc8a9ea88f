package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/luacris/studio-service/internal/validation"
)

// Сообщения об ошибках для пользователя
const (
	MsgInternalError    = "Erro interno do servidor"
	MsgStoreUnavailable = "Erro ao carregar dados. Verifique se o servidor de dados está rodando."
	MsgInvalidBody      = "Corpo da requisição inválido"
)

// maxBodyBytes ограничение размера тела запроса
const maxBodyBytes = 1 << 20

// ErrorResponse тело ответа с ошибкой
// Retry сообщает клиенту, что запрос можно повторить ("Tentar Novamente")
type ErrorResponse struct {
	Error  string                  `json:"error"`
	Retry  bool                    `json:"retry"`
	Fields []validation.FieldError `json:"fields,omitempty"`
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + MsgInternalError + `","retry":false}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// RespondError отправляет ошибку с указанным статусом
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondBadRequest 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondValidationError 400 с перечнем некорректных полей, если err их содержит
func RespondValidationError(w http.ResponseWriter, message string, err error) {
	resp := ErrorResponse{Error: message}
	var verr *validation.Error
	if errors.As(err, &verr) {
		resp.Fields = verr.Fields
	}
	RespondJSON(w, http.StatusBadRequest, resp)
}

// RespondNotFound 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict 409
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondStoreUnavailable 502, хранилище записей недоступно; запрос можно повторить
func RespondStoreUnavailable(w http.ResponseWriter) {
	RespondJSON(w, http.StatusBadGateway, ErrorResponse{Error: MsgStoreUnavailable, Retry: true})
}

// RespondInternalError 500
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, MsgInternalError)
}

// RespondNoContent 204
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// DecodeJSON декодирует тело запроса в v
// Пустое тело и лишние данные после JSON объекта считаются ошибкой
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty request body")
		}
		return err
	}

	if dec.More() {
		return errors.New("unexpected data after JSON body")
	}

	return nil
}
