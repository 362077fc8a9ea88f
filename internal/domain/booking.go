package domain

import (
	"time"

	"github.com/luacris/studio-service/pkg/types"
)

// BookingStatus статус агендамента
type BookingStatus string

const (
	StatusPending   BookingStatus = "pendente"
	StatusConfirmed BookingStatus = "confirmado"
	StatusCancelled BookingStatus = "cancelado"
	StatusCompleted BookingStatus = "realizado"
)

// Booking агендамент (запись коллекции agendamentos)
// Числовые поля уже приведены к своим типам на границе с хранилищем
type Booking struct {
	ID             types.ID
	Client         string
	Email          string
	Phone          string
	Date           string // сырое значение "data", может быть пустым или нераспознаваемым
	Time           string // "horario", свободный текст
	CollectionType string // "tipo_colecao", свободный текст
	Duration       string
	Value          float64
	PhotoCount     int
	Location       string
	Notes          *string
	Status         BookingStatus
	CreatedAt      string // "data_criacao", выставляется клиентом при отправке
}

// ParsedDate возвращает дату сессии, если поле data распознано
func (b *Booking) ParsedDate() (time.Time, bool) {
	return ParseDate(b.Date)
}

// Category возвращает категорию для группировки: пустой tipo_colecao заменяется на SentinelCategory
func (b *Booking) Category() string {
	return CategoryLabel(b.CollectionType)
}

// IsConfirmed возвращает true для подтвержденных агендаментов
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsKnownStatus проверяет, что статус входит в фиксированный словарь
func (s BookingStatus) IsKnownStatus() bool {
	for _, known := range StatusOrder {
		if s == known {
			return true
		}
	}
	return false
}

// CategoryLabel нормализует категорию: пустое значение заменяется на SentinelCategory
func CategoryLabel(collectionType string) string {
	if collectionType == "" {
		return SentinelCategory
	}
	return collectionType
}
