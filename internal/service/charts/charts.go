package charts

import (
	"fmt"

	"github.com/luacris/studio-service/internal/service/stats"
)

// Имена графиков дашборда
const (
	NameCategories = "tipos"
	NameValues     = "valores"
	NameMonthly    = "mensal"
	NameStatus     = "status"
)

// Типы графиков Chart.js
const (
	TypePie      = "pie"
	TypeBar      = "bar"
	TypeLine     = "line"
	TypeDoughnut = "doughnut"
)

// Палитра студии
const (
	ColorPrimary   = "#704241"
	ColorSecondary = "#cdbbaf"
	ColorAccent    = "#8a5a58"
	ColorSuccess   = "#28a745"
	ColorWarning   = "#ffc107"
	ColorDanger    = "#dc3545"
	ColorInfo      = "#17a2b8"
)

// categoryPalette цвета секторов по порядку категорий
var categoryPalette = []string{
	ColorPrimary,
	ColorSecondary,
	ColorAccent,
	ColorSuccess,
	ColorWarning,
	ColorInfo,
}

// statusLabels подписи статусов в порядке domain.StatusOrder
var statusLabels = map[string]string{
	"confirmado": "Confirmados",
	"pendente":   "Pendentes",
	"cancelado":  "Cancelados",
	"realizado":  "Realizados",
}

var statusColors = map[string]string{
	"confirmado": ColorSuccess,
	"pendente":   ColorWarning,
	"cancelado":  ColorDanger,
	"realizado":  ColorInfo,
}

// Dataset набор данных графика
type Dataset struct {
	Label           string    `json:"label,omitempty"`
	Data            []float64 `json:"data"`
	BackgroundColor []string  `json:"backgroundColor"`
	BorderColor     string    `json:"borderColor"`
	BorderWidth     int       `json:"borderWidth"`
	Fill            bool      `json:"fill,omitempty"`
}

// Chart описание графика для фронтенда (формат Chart.js)
type Chart struct {
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
	Tooltips []string  `json:"tooltips"`
}

// DefaultNames графики дашборда в порядке отображения
var DefaultNames = []string{NameCategories, NameValues, NameMonthly, NameStatus}

// builders построители графиков по имени
var builders = map[string]func(stats.View) *Chart{
	NameCategories: func(v stats.View) *Chart { return Categories(v.ByCategory) },
	NameValues:     func(v stats.View) *Chart { return Values(v.AverageByCategory) },
	NameMonthly:    func(v stats.View) *Chart { return Monthly(v.ByMonth) },
	NameStatus:     func(v stats.View) *Chart { return Status(v.ByStatus) },
}

// Known проверяет, что график с таким именем существует
func Known(name string) bool {
	_, ok := builders[name]
	return ok
}

// Categories круговая диаграмма количества по категориям
func Categories(s stats.Series) *Chart {
	colors := make([]string, len(s))
	for i := range s {
		colors[i] = categoryPalette[i%len(categoryPalette)]
	}

	return &Chart{
		Name:   NameCategories,
		Type:   TypePie,
		Labels: s.Labels(),
		Datasets: []Dataset{{
			Data:            s.Values(),
			BackgroundColor: colors,
			BorderColor:     "#fff",
			BorderWidth:     2,
		}},
		Tooltips: shareTooltips(s, nil),
	}
}

// Values столбчатая диаграмма средней стоимости по категориям
func Values(s stats.Series) *Chart {
	tooltips := make([]string, len(s))
	for i, p := range s {
		tooltips[i] = "Valor médio: " + FormatMoney(p.Value)
	}

	return &Chart{
		Name:   NameValues,
		Type:   TypeBar,
		Labels: s.Labels(),
		Datasets: []Dataset{{
			Label:           "Valor Médio (R$)",
			Data:            s.Values(),
			BackgroundColor: []string{ColorAccent},
			BorderColor:     ColorPrimary,
			BorderWidth:     2,
		}},
		Tooltips: tooltips,
	}
}

// Monthly линейный график количества по месяцам
func Monthly(s stats.Series) *Chart {
	tooltips := make([]string, len(s))
	for i, p := range s {
		tooltips[i] = fmt.Sprintf("Agendamentos: %d", int(p.Value))
	}

	return &Chart{
		Name:   NameMonthly,
		Type:   TypeLine,
		Labels: s.Labels(),
		Datasets: []Dataset{{
			Label:           "Agendamentos por Mês",
			Data:            s.Values(),
			BackgroundColor: []string{ColorPrimary + "20"},
			BorderColor:     ColorPrimary,
			BorderWidth:     3,
			Fill:            true,
		}},
		Tooltips: tooltips,
	}
}

// Status кольцевая диаграмма по статусам
func Status(s stats.Series) *Chart {
	labels := make([]string, len(s))
	colors := make([]string, len(s))
	for i, p := range s {
		labels[i] = statusLabels[p.Label]
		colors[i] = statusColors[p.Label]
	}

	return &Chart{
		Name:   NameStatus,
		Type:   TypeDoughnut,
		Labels: labels,
		Datasets: []Dataset{{
			Data:            s.Values(),
			BackgroundColor: colors,
			BorderColor:     "#fff",
			BorderWidth:     3,
		}},
		Tooltips: shareTooltips(s, labels),
	}
}

// shareTooltips подписи вида "Gestante: 2 (67%)"
// labels переопределяет подписи точек, если задан
func shareTooltips(s stats.Series, labels []string) []string {
	percents := stats.Percentages(s)
	out := make([]string, len(s))
	for i, p := range s {
		label := p.Label
		if labels != nil {
			label = labels[i]
		}
		out[i] = fmt.Sprintf("%s: %d (%d%%)", label, int(p.Value), percents[i])
	}
	return out
}

// FormatMoney форматирует сумму как "R$ 416.67"
func FormatMoney(v float64) string {
	return fmt.Sprintf("R$ %.2f", v)
}
