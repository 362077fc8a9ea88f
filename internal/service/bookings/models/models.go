package models

import (
	"github.com/luacris/studio-service/internal/domain"
	"github.com/luacris/studio-service/pkg/types"
)

// Request модели

// BookingRequest данные формы агендамента
// Обязательны только контакты клиента, остальные поля свободные
type BookingRequest struct {
	Client         string          `json:"cliente" validate:"required"`
	Email          string          `json:"email" validate:"required"`
	Phone          string          `json:"telefone" validate:"required"`
	Date           string          `json:"data"`
	Time           string          `json:"horario"`
	CollectionType string          `json:"tipo_colecao"`
	Duration       string          `json:"duracao"`
	Value          types.FlexFloat `json:"valor"`
	PhotoCount     types.FlexInt   `json:"quantidade_fotos"`
	Location       string          `json:"local"`
	Notes          *string         `json:"observacoes,omitempty"`
	Status         string          `json:"status" validate:"omitempty,oneof=pendente confirmado cancelado realizado"`
}

// ToDomain конвертирует запрос в доменную модель
func (r *BookingRequest) ToDomain() *domain.Booking {
	return &domain.Booking{
		Client:         r.Client,
		Email:          r.Email,
		Phone:          r.Phone,
		Date:           r.Date,
		Time:           r.Time,
		CollectionType: r.CollectionType,
		Duration:       r.Duration,
		Value:          r.Value.Float64(),
		PhotoCount:     r.PhotoCount.Int(),
		Location:       r.Location,
		Notes:          r.Notes,
		Status:         domain.BookingStatus(r.Status),
	}
}

// Response модели

// BookingResponse агендамент для ответа API
type BookingResponse struct {
	ID             types.ID `json:"id"`
	Client         string   `json:"cliente"`
	Email          string   `json:"email"`
	Phone          string   `json:"telefone"`
	Date           string   `json:"data"`
	DisplayDate    string   `json:"dataFormatada"` // "dd/mm/yyyy" или текст об отсутствии даты
	Time           string   `json:"horario"`
	CollectionType string   `json:"tipo_colecao"`
	Duration       string   `json:"duracao"`
	Value          float64  `json:"valor"`
	PhotoCount     int      `json:"quantidade_fotos"`
	Location       string   `json:"local"`
	Notes          *string  `json:"observacoes,omitempty"`
	Status         string   `json:"status"`
	CreatedAt      string   `json:"data_criacao,omitempty"`
}

// BookingListResponse ответ со списком агендаментов
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// CalendarDay день календаря
type CalendarDay struct {
	Day    int    `json:"day"`
	Date   string `json:"date"` // YYYY-MM-DD
	Booked bool   `json:"booked"`
	Today  bool   `json:"today"`
}

// CalendarResponse календарь месяца
type CalendarResponse struct {
	Month         string        `json:"month"` // YYYY-MM
	Weekdays      []string      `json:"weekdays"`
	LeadingBlanks int           `json:"leadingBlanks"` // пустые ячейки до первого дня (0 = воскресенье)
	Days          []CalendarDay `json:"days"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:             b.ID,
		Client:         b.Client,
		Email:          b.Email,
		Phone:          b.Phone,
		Date:           b.Date,
		DisplayDate:    domain.FormatDisplayDate(b.Date),
		Time:           b.Time,
		CollectionType: b.CollectionType,
		Duration:       b.Duration,
		Value:          b.Value,
		PhotoCount:     b.PhotoCount,
		Location:       b.Location,
		Notes:          b.Notes,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
// nil записи пропускаются
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
