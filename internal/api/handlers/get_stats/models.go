package get_stats

import (
	"time"

	"github.com/luacris/studio-service/internal/service/charts"
	"github.com/luacris/studio-service/internal/service/dashboard"
	"github.com/luacris/studio-service/internal/service/stats"
)

// MetricsResponse сводные показатели
type MetricsResponse struct {
	Total              int     `json:"total"`
	Confirmed          int     `json:"confirmados"`
	DistinctCategories int     `json:"tipos"`
	AverageValue       float64 `json:"valorMedio"`
	AverageValueText   string  `json:"valorMedioFormatado"` // "R$ 416.67"
}

// PointResponse точка серии с долей от суммы серии
type PointResponse struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Percent int     `json:"percent"`
}

// StatsResponse HTTP response model
type StatsResponse struct {
	Filter            string          `json:"filter"`
	Categories        []string        `json:"categories"`
	Metrics           MetricsResponse `json:"metrics"`
	ByCategory        []PointResponse `json:"porTipo"`
	AverageByCategory []PointResponse `json:"valorMedioPorTipo"`
	ByMonth           []PointResponse `json:"porMes"`
	ByStatus          []PointResponse `json:"porStatus"`
	Sessions          int             `json:"sessoes"`
	LoadedAt          string          `json:"loadedAt"`
}

// FromState конвертирует состояние дашборда в HTTP response
func FromState(state *dashboard.State) *StatsResponse {
	view := state.View
	return &StatsResponse{
		Filter:     view.Filter,
		Categories: state.Categories,
		Metrics: MetricsResponse{
			Total:              view.Metrics.Total,
			Confirmed:          view.Metrics.ConfirmedCount,
			DistinctCategories: view.Metrics.DistinctCategories,
			AverageValue:       view.Metrics.AverageValue,
			AverageValueText:   charts.FormatMoney(view.Metrics.AverageValue),
		},
		ByCategory:        fromSeries(view.ByCategory),
		AverageByCategory: fromSeries(view.AverageByCategory),
		ByMonth:           fromSeries(view.ByMonth),
		ByStatus:          fromSeries(view.ByStatus),
		Sessions:          state.Sessions,
		LoadedAt:          state.LoadedAt.UTC().Format(time.RFC3339),
	}
}

func fromSeries(s stats.Series) []PointResponse {
	percents := stats.Percentages(s)
	out := make([]PointResponse, len(s))
	for i, p := range s {
		out[i] = PointResponse{Label: p.Label, Value: p.Value, Percent: percents[i]}
	}
	return out
}
