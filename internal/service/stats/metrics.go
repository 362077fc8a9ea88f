package stats

import "github.com/luacris/studio-service/internal/domain"

// Metrics сводные показатели по набору агендаментов
type Metrics struct {
	Total              int     `json:"total"`
	ConfirmedCount     int     `json:"confirmedCount"`
	DistinctCategories int     `json:"distinctCategories"`
	AverageValue       float64 `json:"averageValue"`
}

// Aggregate считает сводные показатели
// Для пустого набора AverageValue равно 0
// Категории различаются с учетом регистра и считаются по нормализованному значению,
// как в CountByCategory: отсутствующий tipo_colecao и "Sem Tipo" дают одну категорию
func Aggregate(bookings []*domain.Booking) Metrics {
	var (
		m          Metrics
		sum        float64
		categories = make(map[string]struct{})
	)

	for _, b := range bookings {
		if b == nil {
			continue
		}
		m.Total++
		if b.IsConfirmed() {
			m.ConfirmedCount++
		}
		categories[b.Category()] = struct{}{}
		sum += b.Value
	}

	m.DistinctCategories = len(categories)
	if m.Total > 0 {
		m.AverageValue = sum / float64(m.Total)
	}

	return m
}
