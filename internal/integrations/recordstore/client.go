package recordstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/luacris/studio-service/internal/domain"
	"github.com/luacris/studio-service/pkg/requestid"
	"github.com/luacris/studio-service/pkg/types"
)

// maxErrorBody ограничение на чтение тела неуспешного ответа
const maxErrorBody = 4 << 10

// Client клиент для работы с внешним REST хранилищем (json-server)
// Каждый вызов выполняет ровно один запрос, повторов нет
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    MetricsCollector
}

// Option настройка клиента
type Option func(*Client)

// WithMetrics подключает сбор метрик запросов
func WithMetrics(m MetricsCollector) Option {
	return func(c *Client) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithHTTPClient подменяет http.Client (для тестов)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient создает новый экземпляр клиента хранилища
func NewClient(baseURL string, timeout time.Duration, log Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: noopMetrics{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListBookings получает все агендаменты
func (c *Client) ListBookings(ctx context.Context) ([]*domain.Booking, error) {
	var records []BookingRecord
	if err := c.do(ctx, http.MethodGet, CollectionBookings, "", nil, nil, &records); err != nil {
		return nil, err
	}

	bookings := make([]*domain.Booking, len(records))
	for i := range records {
		bookings[i] = records[i].ToDomain()
	}
	return bookings, nil
}

// GetBooking получает агендамент по ID
func (c *Client) GetBooking(ctx context.Context, id types.ID) (*domain.Booking, error) {
	var record BookingRecord
	if err := c.do(ctx, http.MethodGet, CollectionBookings, id, nil, nil, &record); err != nil {
		return nil, err
	}
	return record.ToDomain(), nil
}

// CreateBooking создает агендамент, ID назначает хранилище
func (c *Client) CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	in := FromDomainBooking(booking)
	in.ID = ""

	var created BookingRecord
	if err := c.do(ctx, http.MethodPost, CollectionBookings, "", nil, in, &created); err != nil {
		return nil, err
	}
	return created.ToDomain(), nil
}

// UpdateBooking полностью заменяет агендамент
func (c *Client) UpdateBooking(ctx context.Context, id types.ID, booking *domain.Booking) (*domain.Booking, error) {
	in := FromDomainBooking(booking)
	in.ID = id

	var updated BookingRecord
	if err := c.do(ctx, http.MethodPut, CollectionBookings, id, nil, in, &updated); err != nil {
		return nil, err
	}
	return updated.ToDomain(), nil
}

// DeleteBooking удаляет агендамент
func (c *Client) DeleteBooking(ctx context.Context, id types.ID) error {
	return c.do(ctx, http.MethodDelete, CollectionBookings, id, nil, nil, nil)
}

// ListSessions получает сессии, query передается как есть (например destaque=true)
func (c *Client) ListSessions(ctx context.Context, query url.Values) ([]*domain.Session, error) {
	var records []SessionRecord
	if err := c.do(ctx, http.MethodGet, CollectionSessions, "", query, nil, &records); err != nil {
		return nil, err
	}

	sessions := make([]*domain.Session, len(records))
	for i := range records {
		sessions[i] = records[i].ToDomain()
	}
	return sessions, nil
}

// GetSession получает сессию по ID
func (c *Client) GetSession(ctx context.Context, id types.ID) (*domain.Session, error) {
	var record SessionRecord
	if err := c.do(ctx, http.MethodGet, CollectionSessions, id, nil, nil, &record); err != nil {
		return nil, err
	}
	return record.ToDomain(), nil
}

// CreateSession создает сессию
func (c *Client) CreateSession(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	in := FromDomainSession(session)
	in.ID = ""

	var created SessionRecord
	if err := c.do(ctx, http.MethodPost, CollectionSessions, "", nil, in, &created); err != nil {
		return nil, err
	}
	return created.ToDomain(), nil
}

// UpdateSession полностью заменяет сессию
func (c *Client) UpdateSession(ctx context.Context, id types.ID, session *domain.Session) (*domain.Session, error) {
	in := FromDomainSession(session)
	in.ID = id

	var updated SessionRecord
	if err := c.do(ctx, http.MethodPut, CollectionSessions, id, nil, in, &updated); err != nil {
		return nil, err
	}
	return updated.ToDomain(), nil
}

// DeleteSession удаляет сессию
func (c *Client) DeleteSession(ctx context.Context, id types.ID) error {
	return c.do(ctx, http.MethodDelete, CollectionSessions, id, nil, nil, nil)
}

// do выполняет один запрос к коллекции
// in сериализуется в тело запроса, out (если не nil) заполняется из тела ответа
func (c *Client) do(
	ctx context.Context,
	method string,
	collection Collection,
	id types.ID,
	query url.Values,
	in interface{},
	out interface{},
) error {
	started := time.Now()
	outcome := "ok"
	defer func() {
		c.metrics.RecordStoreRequest(string(collection), method, outcome, time.Since(started))
	}()

	endpoint := c.endpoint(collection, id, query)

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			outcome = "encode_error"
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		outcome = "encode_error"
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if rid, ok := requestid.FromContext(ctx); ok {
		req.Header.Set(requestid.Header, rid)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		outcome = "transport_error"
		c.log.Error("recordstore: %s %s failed: %v", method, endpoint, err)
		return fmt.Errorf("%w: %s /%s: %v", ErrTransport, method, collection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := newStatusError(method, collection, resp)
		if errors.Is(statusErr, ErrNotFound) {
			outcome = "not_found"
			c.log.Warn("recordstore: %s %s not found", method, endpoint)
		} else {
			outcome = "status_error"
			c.log.Error("recordstore: %s %s returned %d: %s", method, endpoint, resp.StatusCode, statusErr.Message)
		}
		return statusErr
	}

	if out == nil {
		// Тело ответа на DELETE не используется
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		outcome = "decode_error"
		c.log.Error("recordstore: %s %s returned undecodable body: %v", method, endpoint, err)
		return fmt.Errorf("%w: %s /%s: failed to decode response: %v", ErrInvalidResponse, method, collection, err)
	}

	return nil
}

func (c *Client) endpoint(collection Collection, id types.ID, query url.Values) string {
	endpoint := c.baseURL + "/" + string(collection)
	if !id.IsZero() {
		endpoint += "/" + url.PathEscape(id.String())
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	return endpoint
}

func newStatusError(method string, collection Collection, resp *http.Response) *StatusError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	msg := strings.TrimSpace(string(raw))
	if msg == "" || msg == "{}" {
		msg = http.StatusText(resp.StatusCode)
	}

	return &StatusError{
		Method:     method,
		Collection: collection,
		StatusCode: resp.StatusCode,
		Message:    msg,
	}
}
