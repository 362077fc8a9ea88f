package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/luacris/studio-service/internal/domain"
	"github.com/luacris/studio-service/internal/integrations/recordstore"
	"github.com/luacris/studio-service/internal/service/bookings/models"
	"github.com/luacris/studio-service/internal/validation"
	"github.com/luacris/studio-service/pkg/types"
)

// Service сервис для работы с агендаментами
type Service struct {
	store  BookingStore
	logger Logger
	now    func() time.Time
}

// NewService создает новый экземпляр сервиса агендаментов
func NewService(store BookingStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// List возвращает все агендаменты, самые поздние по дате первыми
// Записи без даты или с нераспознанной датой идут в конце, порядок равных сохраняется
func (s *Service) List(ctx context.Context) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings")

	bookings, err := s.store.ListBookings(ctx)
	if err != nil {
		s.logger.Error("List: store error: %v", err)
		return nil, s.storeError("List", err)
	}

	SortNewestFirst(bookings)

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// GetByID получает агендамент по ID
func (s *Service) GetByID(ctx context.Context, id types.ID) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.store.GetBooking(ctx, id)
	if err != nil {
		return nil, s.storeError("GetByID", err)
	}

	return models.FromDomainBooking(booking), nil
}

// Create создает агендамент
// Пустой статус заменяется на "pendente", data_criacao выставляется текущим временем
func (s *Service) Create(ctx context.Context, req *models.BookingRequest) (*models.BookingResponse, error) {
	if err := validation.Struct(req); err != nil {
		s.logger.Warn("Create: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	booking := req.ToDomain()
	if booking.Status == "" {
		booking.Status = domain.DefaultStatus
	}
	booking.CreatedAt = s.now().UTC().Format(time.RFC3339)

	created, err := s.store.CreateBooking(ctx, booking)
	if err != nil {
		s.logger.Error("Create: store error: %v", err)
		return nil, s.storeError("Create", err)
	}

	s.logger.Info("Create: successfully created booking id=%s for client=%s", created.ID, created.Client)
	return models.FromDomainBooking(created), nil
}

// Update заменяет агендамент целиком
// data_criacao существующей записи сохраняется
func (s *Service) Update(ctx context.Context, id types.ID, req *models.BookingRequest) (*models.BookingResponse, error) {
	if err := validation.Struct(req); err != nil {
		s.logger.Warn("Update: invalid request for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	existing, err := s.store.GetBooking(ctx, id)
	if err != nil {
		return nil, s.storeError("Update", err)
	}

	booking := req.ToDomain()
	booking.ID = id
	booking.CreatedAt = existing.CreatedAt
	if booking.Status == "" {
		booking.Status = existing.Status
	}

	updated, err := s.store.UpdateBooking(ctx, id, booking)
	if err != nil {
		return nil, s.storeError("Update", err)
	}

	s.logger.Info("Update: successfully updated booking id=%s", id)
	return models.FromDomainBooking(updated), nil
}

// Delete удаляет агендамент
func (s *Service) Delete(ctx context.Context, id types.ID) error {
	if err := s.store.DeleteBooking(ctx, id); err != nil {
		return s.storeError("Delete", err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%s", id)
	return nil
}

// Calendar строит календарь месяца month с отметками занятых дней
func (s *Service) Calendar(ctx context.Context, month string) (*models.CalendarResponse, error) {
	now := s.now()

	year, mon := now.Year(), now.Month()
	if month != "" {
		parsed, err := time.Parse(domain.MonthParamFormat, month)
		if err != nil {
			s.logger.Warn("Calendar: invalid month=%q", month)
			return nil, fmt.Errorf("%w: %q", ErrInvalidMonth, month)
		}
		year, mon = parsed.Year(), parsed.Month()
	}

	bookings, err := s.store.ListBookings(ctx)
	if err != nil {
		s.logger.Error("Calendar: store error: %v", err)
		return nil, s.storeError("Calendar", err)
	}

	return BuildCalendar(year, mon, now, bookings), nil
}

// storeError переводит ошибку хранилища в ошибку сервиса
func (s *Service) storeError(op string, err error) error {
	if errors.Is(err, recordstore.ErrNotFound) {
		s.logger.Warn("%s: booking not found", op)
		return ErrBookingNotFound
	}
	return fmt.Errorf("%w: %s - store error: %v", ErrStoreUnavailable, op, err)
}

// SortNewestFirst сортирует агендаменты по дате, самые поздние первыми
// Записи без распознаваемой даты идут в конце
func SortNewestFirst(bookings []*domain.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		a, aok := dateOf(bookings[i])
		b, bok := dateOf(bookings[j])
		switch {
		case aok && bok:
			return a.After(b)
		default:
			return aok && !bok
		}
	})
}

func dateOf(b *domain.Booking) (time.Time, bool) {
	if b == nil {
		return time.Time{}, false
	}
	return b.ParsedDate()
}
