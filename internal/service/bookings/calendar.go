package bookings

import (
	"time"

	"github.com/luacris/studio-service/internal/domain"
	"github.com/luacris/studio-service/internal/service/bookings/models"
)

// Weekdays заголовки колонок календаря, неделя начинается с воскресенья
var Weekdays = []string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

// BuildCalendar строит календарь месяца
// День занят, если сырое поле data какого-либо агендамента равно этому дню в формате YYYY-MM-DD
// Отметка today ставится только в месяце, которому принадлежит today
func BuildCalendar(year int, month time.Month, today time.Time, bookings []*domain.Booking) *models.CalendarResponse {
	booked := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		if b != nil && b.Date != "" {
			booked[b.Date] = struct{}{}
		}
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	resp := &models.CalendarResponse{
		Month:         first.Format(domain.MonthParamFormat),
		Weekdays:      Weekdays,
		LeadingBlanks: int(first.Weekday()),
		Days:          make([]models.CalendarDay, 0, daysInMonth),
	}

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(domain.DateFormat)
		_, isBooked := booked[date]
		resp.Days = append(resp.Days, models.CalendarDay{
			Day:    day,
			Date:   date,
			Booked: isBooked,
			Today:  today.Year() == year && today.Month() == month && today.Day() == day,
		})
	}

	return resp
}
