package charts

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luacris/studio-service/internal/domain"
	"github.com/luacris/studio-service/internal/service/stats"
)

type testLogger struct {
	mu    sync.Mutex
	warns []string
}

func (l *testLogger) Info(format string, v ...interface{})  {}
func (l *testLogger) Error(format string, v ...interface{}) {}
func (l *testLogger) Warn(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, fmt.Sprintf(format, v...))
}

type countingMetrics struct {
	rebuilds int
}

func (m *countingMetrics) IncChartRebuilds() { m.rebuilds++ }

func scenarioView() stats.View {
	return stats.Derive([]*domain.Booking{
		{CollectionType: "Gestante", Value: 450, Status: domain.StatusConfirmed, Date: "2025-03-10"},
		{CollectionType: "Gestante", Value: 500, Status: domain.StatusPending, Date: "2025-03-20"},
		{CollectionType: "Infantil", Value: 300, Status: domain.StatusCancelled, Date: "2025-04-01"},
	}, domain.FilterAll)
}

func TestCategories_TooltipsWithShare(t *testing.T) {
	chart := Categories(scenarioView().ByCategory)

	assert.Equal(t, TypePie, chart.Type)
	assert.Equal(t, []string{"Gestante", "Infantil"}, chart.Labels)
	require.Len(t, chart.Datasets, 1)
	assert.Equal(t, []float64{2, 1}, chart.Datasets[0].Data)
	assert.Equal(t, []string{ColorPrimary, ColorSecondary}, chart.Datasets[0].BackgroundColor)
	assert.Equal(t, []string{"Gestante: 2 (67%)", "Infantil: 1 (33%)"}, chart.Tooltips)
}

func TestCategories_PaletteWraps(t *testing.T) {
	s := make(stats.Series, len(categoryPalette)+1)
	for i := range s {
		s[i] = stats.Point{Label: fmt.Sprintf("c%d", i), Value: 1}
	}

	chart := Categories(s)
	colors := chart.Datasets[0].BackgroundColor
	assert.Equal(t, colors[0], colors[len(categoryPalette)])
}

func TestValues_MoneyTooltips(t *testing.T) {
	chart := Values(scenarioView().AverageByCategory)

	assert.Equal(t, TypeBar, chart.Type)
	assert.Equal(t, []string{"Valor médio: R$ 475.00", "Valor médio: R$ 300.00"}, chart.Tooltips)
}

func TestMonthly(t *testing.T) {
	chart := Monthly(scenarioView().ByMonth)

	assert.Equal(t, TypeLine, chart.Type)
	assert.Equal(t, []string{"03/2025", "04/2025"}, chart.Labels)
	assert.True(t, chart.Datasets[0].Fill)
	assert.Equal(t, []string{"Agendamentos: 2", "Agendamentos: 1"}, chart.Tooltips)
}

func TestStatus_FixedOrderAndLabels(t *testing.T) {
	chart := Status(scenarioView().ByStatus)

	assert.Equal(t, TypeDoughnut, chart.Type)
	assert.Equal(t, []string{"Confirmados", "Pendentes", "Cancelados", "Realizados"}, chart.Labels)
	assert.Equal(t, []float64{1, 1, 1, 0}, chart.Datasets[0].Data)
	assert.Equal(t, []string{ColorSuccess, ColorWarning, ColorDanger, ColorInfo}, chart.Datasets[0].BackgroundColor)
	assert.Equal(t, "Realizados: 0 (0%)", chart.Tooltips[3])
}

func TestStatus_EmptySnapshotHasNoNaN(t *testing.T) {
	chart := Status(stats.Derive(nil, domain.FilterAll).ByStatus)

	assert.Equal(t, []string{
		"Confirmados: 0 (0%)",
		"Pendentes: 0 (0%)",
		"Cancelados: 0 (0%)",
		"Realizados: 0 (0%)",
	}, chart.Tooltips)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "R$ 416.67", FormatMoney(1250.0/3))
	assert.Equal(t, "R$ 0.00", FormatMoney(0))
}

func TestBoard_RebuildReplacesWholeSet(t *testing.T) {
	metrics := &countingMetrics{}
	board := NewBoard(nil, &testLogger{}, metrics)

	assert.Empty(t, board.Current().Charts)

	first := board.Rebuild(scenarioView())
	require.Len(t, first.Charts, 4)
	assert.Equal(t, uint64(1), first.Generation)

	names := make([]string, 0, len(first.Charts))
	for _, c := range first.Charts {
		names = append(names, c.Name)
	}
	assert.Equal(t, DefaultNames, names)

	filtered := stats.Derive([]*domain.Booking{
		{CollectionType: "Infantil", Status: domain.StatusCancelled},
	}, "Infantil")
	second := board.Rebuild(filtered)

	assert.Equal(t, uint64(2), second.Generation)
	assert.Equal(t, "Infantil", second.Filter)
	assert.Same(t, second, board.Current())
	assert.Equal(t, 2, metrics.rebuilds)

	// предыдущий набор не изменился
	assert.Equal(t, []string{"Gestante", "Infantil"}, first.Charts[0].Labels)
	assert.Equal(t, []string{"Infantil"}, second.Charts[0].Labels)
}

func TestBoard_BuildDoesNotInstall(t *testing.T) {
	metrics := &countingMetrics{}
	board := NewBoard(nil, &testLogger{}, metrics)
	installed := board.Rebuild(scenarioView())

	filtered := stats.Derive([]*domain.Booking{
		{CollectionType: "Infantil", Status: domain.StatusCancelled},
	}, "Infantil")
	built := board.Build(installed.Generation, filtered)

	require.Len(t, built.Charts, 4)
	assert.Equal(t, "Infantil", built.Filter)
	assert.Equal(t, installed.Generation, built.Generation)
	assert.Same(t, installed, board.Current())
	assert.Equal(t, domain.FilterAll, board.Current().Filter)
	assert.Equal(t, 1, metrics.rebuilds)
}

func TestBoard_UnknownChartSkipped(t *testing.T) {
	logger := &testLogger{}
	board := NewBoard([]string{NameStatus, "radar", NameCategories}, logger, nil)

	set := board.Rebuild(scenarioView())

	require.Len(t, set.Charts, 2)
	assert.Equal(t, NameStatus, set.Charts[0].Name)
	assert.Equal(t, NameCategories, set.Charts[1].Name)
	require.Len(t, logger.warns, 1)
	assert.Contains(t, logger.warns[0], "radar")
}

func TestKnown(t *testing.T) {
	for _, name := range DefaultNames {
		assert.True(t, Known(name), name)
	}
	assert.False(t, Known("radar"))
}
