package stats

import "math"

// Percent доля value от total в процентах, округленная до целого (половина вверх)
// При total <= 0 возвращает 0
func Percent(value, total float64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(value/total*100 + 0.5))
}

// Percentages проценты для каждой точки серии относительно суммы серии
func Percentages(s Series) []int {
	total := s.Total()
	out := make([]int, len(s))
	for i, p := range s {
		out[i] = Percent(p.Value, total)
	}
	return out
}
