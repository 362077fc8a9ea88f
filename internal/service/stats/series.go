package stats

import (
	"sort"
	"time"

	"github.com/luacris/studio-service/internal/domain"
)

// Point точка серии: подпись и значение
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Series упорядоченный набор точек для графика
type Series []Point

// Labels возвращает подписи серии в её порядке
func (s Series) Labels() []string {
	labels := make([]string, len(s))
	for i, p := range s {
		labels[i] = p.Label
	}
	return labels
}

// Values возвращает значения серии в её порядке
func (s Series) Values() []float64 {
	values := make([]float64, len(s))
	for i, p := range s {
		values[i] = p.Value
	}
	return values
}

// Total сумма значений серии
func (s Series) Total() float64 {
	var total float64
	for _, p := range s {
		total += p.Value
	}
	return total
}

// orderedGroups группировка с сохранением порядка первого появления ключа
type orderedGroups struct {
	keys   []string
	index  map[string]int
	counts []int
	sums   []float64
}

func newOrderedGroups() *orderedGroups {
	return &orderedGroups{index: make(map[string]int)}
}

func (g *orderedGroups) add(key string, value float64) {
	i, ok := g.index[key]
	if !ok {
		i = len(g.keys)
		g.index[key] = i
		g.keys = append(g.keys, key)
		g.counts = append(g.counts, 0)
		g.sums = append(g.sums, 0)
	}
	g.counts[i]++
	g.sums[i] += value
}

// CountByCategory количество агендаментов по tipo_colecao
// Порядок подписей: порядок первого появления категории в bookings
func CountByCategory(bookings []*domain.Booking) Series {
	groups := groupByCategory(bookings)

	series := make(Series, len(groups.keys))
	for i, key := range groups.keys {
		series[i] = Point{Label: key, Value: float64(groups.counts[i])}
	}
	return series
}

// AverageValueByCategory среднее значение valor по tipo_colecao
// Порядок подписей совпадает с CountByCategory
func AverageValueByCategory(bookings []*domain.Booking) Series {
	groups := groupByCategory(bookings)

	series := make(Series, len(groups.keys))
	for i, key := range groups.keys {
		series[i] = Point{Label: key, Value: groups.sums[i] / float64(groups.counts[i])}
	}
	return series
}

func groupByCategory(bookings []*domain.Booking) *orderedGroups {
	groups := newOrderedGroups()
	for _, b := range bookings {
		if b == nil {
			continue
		}
		groups.add(b.Category(), b.Value)
	}
	return groups
}

// monthKey ключ месяца для сортировки в хронологическом порядке
type monthKey struct {
	year  int
	month int
}

// CountByMonth количество агендаментов по месяцу даты в формате "MM/YYYY"
// Агендаменты без даты или с нераспознанной датой не учитываются
// Серия отсортирована хронологически (12/2024 раньше 01/2025)
func CountByMonth(bookings []*domain.Booking) Series {
	counts := make(map[monthKey]int)
	for _, b := range bookings {
		if b == nil {
			continue
		}
		date, ok := b.ParsedDate()
		if !ok {
			continue
		}
		counts[monthKey{year: date.Year(), month: int(date.Month())}]++
	}

	keys := make([]monthKey, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	series := make(Series, len(keys))
	for i, k := range keys {
		series[i] = Point{Label: formatMonthKey(k), Value: float64(counts[k])}
	}
	return series
}

func formatMonthKey(k monthKey) string {
	return time.Date(k.year, time.Month(k.month), 1, 0, 0, 0, 0, time.UTC).Format(domain.MonthKeyFormat)
}

// CountByStatus количество агендаментов по статусу
// Всегда ровно 4 точки в порядке domain.StatusOrder; неизвестные статусы не учитываются
func CountByStatus(bookings []*domain.Booking) Series {
	counts := make(map[domain.BookingStatus]int, len(domain.StatusOrder))
	for _, b := range bookings {
		if b == nil || !b.Status.IsKnownStatus() {
			continue
		}
		counts[b.Status]++
	}

	series := make(Series, len(domain.StatusOrder))
	for i, status := range domain.StatusOrder {
		series[i] = Point{Label: string(status), Value: float64(counts[status])}
	}
	return series
}
