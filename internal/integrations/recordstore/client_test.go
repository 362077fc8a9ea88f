package recordstore

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luacris/studio-service/internal/domain"
	"github.com/luacris/studio-service/pkg/logger"
	"github.com/luacris/studio-service/pkg/requestid"
)

type recordedCall struct {
	collection, method, outcome string
}

type fakeMetrics struct {
	calls []recordedCall
}

func (m *fakeMetrics) RecordStoreRequest(collection, method, outcome string, _ time.Duration) {
	m.calls = append(m.calls, recordedCall{collection, method, outcome})
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *fakeMetrics) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	m := &fakeMetrics{}
	return NewClient(srv.URL+"/", 2*time.Second, logger.NewNop(), WithMetrics(m)), m
}

func TestClient_ListBookings(t *testing.T) {
	client, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/agendamentos", r.URL.Path)
		assert.Equal(t, "req-1", r.Header.Get(requestid.Header))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[
			{"id": 1, "cliente": "Ana", "tipo_colecao": "Gestante", "valor": "450.00", "quantidade_fotos": "20", "status": "confirmado", "data": "2025-03-10"},
			{"id": "b2", "cliente": "Bia", "valor": 300, "quantidade_fotos": 15, "status": "pendente", "data": null}
		]`)
	})

	ctx := requestid.NewContext(context.Background(), "req-1")
	bookings, err := client.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	assert.Equal(t, "1", bookings[0].ID.String())
	assert.Equal(t, "Gestante", bookings[0].CollectionType)
	assert.Equal(t, 450.0, bookings[0].Value)
	assert.Equal(t, 20, bookings[0].PhotoCount)
	assert.Equal(t, domain.StatusConfirmed, bookings[0].Status)

	assert.Equal(t, "b2", bookings[1].ID.String())
	assert.Equal(t, "", bookings[1].CollectionType)
	assert.Equal(t, "", bookings[1].Date)
	assert.Equal(t, 300.0, bookings[1].Value)

	assert.Equal(t, []recordedCall{{"agendamentos", "GET", "ok"}}, m.calls)
}

func TestClient_GetBooking_NotFound(t *testing.T) {
	client, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/agendamentos/99", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, "{}")
	})

	_, err := client.GetBooking(context.Background(), "99")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, CollectionBookings, statusErr.Collection)
	assert.Equal(t, "Not Found", statusErr.Message)

	assert.Equal(t, "not_found", m.calls[0].outcome)
}

func TestClient_ServerError(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, "db.json is locked")
	})

	_, err := client.ListBookings(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedStatus))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "db.json is locked")
	assert.Equal(t, 1, calls, "no retries")
}

func TestClient_TransportError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 200*time.Millisecond, logger.NewNop())

	_, err := client.ListBookings(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport))
}

func TestClient_InvalidBody(t *testing.T) {
	client, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "<html>oops</html>")
	})

	_, err := client.ListBookings(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidResponse))
	assert.Equal(t, "decode_error", m.calls[0].outcome)
}

func TestClient_ListBookings_NonStringFieldsTolerated(t *testing.T) {
	client, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[
			{"id": 1, "cliente": "Ana", "tipo_colecao": "Gestante", "status": "confirmado", "data": "2025-03-10"},
			{"id": 2, "cliente": "Bia", "tipo_colecao": 7, "status": true, "data": 20250310, "telefone": 31999990000, "observacoes": 5}
		]`)
	})

	bookings, err := client.ListBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "ok", m.calls[0].outcome)

	second := bookings[1]
	assert.Equal(t, "Bia", second.Client)
	assert.Equal(t, "20250310", second.Date)
	assert.Equal(t, "7", second.CollectionType)
	assert.Equal(t, domain.BookingStatus(""), second.Status)
	assert.Equal(t, "31999990000", second.Phone)
	require.NotNil(t, second.Notes)
	assert.Equal(t, "5", *second.Notes)

	_, ok := second.ParsedDate()
	assert.False(t, ok)
	assert.Equal(t, domain.MsgDateInvalid, domain.FormatDisplayDate(second.Date))
}

func TestClient_CreateBooking(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, hasID := got["id"]
		assert.False(t, hasID)
		assert.Equal(t, "Ana", got["cliente"])
		assert.Equal(t, 450.5, got["valor"])
		assert.Equal(t, 20.0, got["quantidade_fotos"])

		got["id"] = 10
		w.WriteHeader(http.StatusCreated)
		require.NoError(t, json.NewEncoder(w).Encode(got))
	})

	created, err := client.CreateBooking(context.Background(), &domain.Booking{
		ID:         "ignored",
		Client:     "Ana",
		Value:      450.5,
		PhotoCount: 20,
		Status:     domain.StatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, "10", created.ID.String())
	assert.Equal(t, 450.5, created.Value)
}

func TestClient_UpdateAndDelete(t *testing.T) {
	var methods []string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method+" "+r.URL.Path)
		switch r.Method {
		case http.MethodPut:
			var got map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			assert.Equal(t, "5", got["id"])
			require.NoError(t, json.NewEncoder(w).Encode(got))
		case http.MethodDelete:
			_, _ = io.WriteString(w, "{}")
		}
	})

	updated, err := client.UpdateBooking(context.Background(), "5", &domain.Booking{Client: "Ana", Status: domain.StatusConfirmed})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, updated.Status)

	require.NoError(t, client.DeleteBooking(context.Background(), "5"))
	assert.Equal(t, []string{"PUT /agendamentos/5", "DELETE /agendamentos/5"}, methods)
}

func TestClient_ListSessions_WithQuery(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sessoes", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("destaque"))
		_, _ = io.WriteString(w, `[{"id": 1, "titulo": "Ensaio na praia", "destaque": true, "fotos": [{"imagem": "a.jpg"}]}]`)
	})

	sessions, err := client.ListSessions(context.Background(), url.Values{"destaque": []string{"true"}})
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "Ensaio na praia", sessions[0].Title)
	assert.True(t, sessions[0].Featured)
	assert.JSONEq(t, `[{"imagem": "a.jpg"}]`, string(sessions[0].Photos))
}
