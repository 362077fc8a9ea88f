package stats

import "github.com/luacris/studio-service/internal/domain"

// View производное представление снимка агендаментов
// Пересчитывается целиком при каждой смене снимка или фильтра
type View struct {
	Filter            string  `json:"filter"`
	Metrics           Metrics `json:"metrics"`
	ByCategory        Series  `json:"byCategory"`
	AverageByCategory Series  `json:"averageByCategory"`
	ByMonth           Series  `json:"byMonth"`
	ByStatus          Series  `json:"byStatus"`
}

// Derive строит представление для подмножества snapshot, выбранного фильтром
// Снимок не изменяется; label == "all" (или пустой) выбирает все агендаменты
func Derive(snapshot []*domain.Booking, label string) View {
	if label == "" {
		label = domain.FilterAll
	}

	subset := Filter(snapshot, label)

	return View{
		Filter:            label,
		Metrics:           Aggregate(subset),
		ByCategory:        CountByCategory(subset),
		AverageByCategory: AverageValueByCategory(subset),
		ByMonth:           CountByMonth(subset),
		ByStatus:          CountByStatus(subset),
	}
}

// Filter возвращает агендаменты категории label в новом срезе
// Сравнение идет по нормализованной категории, поэтому "Sem Tipo" выбирает записи без tipo_colecao
func Filter(snapshot []*domain.Booking, label string) []*domain.Booking {
	if label == domain.FilterAll {
		out := make([]*domain.Booking, len(snapshot))
		copy(out, snapshot)
		return out
	}

	out := make([]*domain.Booking, 0, len(snapshot))
	for _, b := range snapshot {
		if b != nil && b.Category() == label {
			out = append(out, b)
		}
	}
	return out
}

// Categories варианты фильтра: "all" и категории снимка в порядке первого появления
func Categories(snapshot []*domain.Booking) []string {
	return append([]string{domain.FilterAll}, CountByCategory(snapshot).Labels()...)
}
