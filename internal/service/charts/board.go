package charts

import (
	"sync"

	"github.com/luacris/studio-service/internal/service/stats"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsCollector интерфейс сбора метрик перестроения графиков
type MetricsCollector interface {
	IncChartRebuilds()
}

// Set набор графиков одного поколения
// После установки в Board набор не изменяется
type Set struct {
	Generation uint64   `json:"generation"`
	Filter     string   `json:"filter"`
	Charts     []*Chart `json:"charts"`
}

// Board текущий набор графиков дашборда
// Rebuild целиком заменяет предыдущий набор, частичных обновлений нет
type Board struct {
	mu      sync.RWMutex
	names   []string
	current *Set
	logger  Logger
	metrics MetricsCollector
}

// NewBoard создает доску с графиками names (пустой список означает DefaultNames)
func NewBoard(names []string, logger Logger, metrics MetricsCollector) *Board {
	if len(names) == 0 {
		names = DefaultNames
	}
	return &Board{
		names:   append([]string(nil), names...),
		current: &Set{},
		logger:  logger,
		metrics: metrics,
	}
}

// Rebuild строит новый набор графиков по view и заменяет им предыдущий
// Неизвестный график логируется и пропускается, остальные строятся
func (b *Board) Rebuild(view stats.View) *Set {
	built := b.build(view)

	b.mu.Lock()
	defer b.mu.Unlock()

	next := &Set{
		Generation: b.current.Generation + 1,
		Filter:     view.Filter,
		Charts:     built,
	}
	b.current = next

	if b.metrics != nil {
		b.metrics.IncChartRebuilds()
	}

	return next
}

// Build строит набор графиков поколения generation по view, не устанавливая его
// Текущий набор доски не меняется, поэтому Build можно вызывать параллельно
func (b *Board) Build(generation uint64, view stats.View) *Set {
	return &Set{
		Generation: generation,
		Filter:     view.Filter,
		Charts:     b.build(view),
	}
}

// Current возвращает текущий набор графиков
func (b *Board) Current() *Set {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.current
}

func (b *Board) build(view stats.View) []*Chart {
	built := make([]*Chart, 0, len(b.names))
	for _, name := range b.names {
		build, ok := builders[name]
		if !ok {
			b.logger.Warn("charts: chart %q is not known, skipping", name)
			continue
		}
		built = append(built, build(view))
	}
	return built
}
