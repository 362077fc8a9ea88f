package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/luacris/studio-service/internal/domain"
	"github.com/luacris/studio-service/internal/service/charts"
	"github.com/luacris/studio-service/internal/service/stats"
)

// State текущее состояние дашборда
type State struct {
	View       stats.View
	Categories []string
	Sessions   int
	LoadedAt   time.Time
}

// Controller хранит снимок агендаментов и пересчитывает статистику по фильтру
// Снимок заменяется только загрузкой. Фильтр не хранится: каждый запрос
// получает собственное представление, общий набор графиков строится только для "all"
type Controller struct {
	bookings BookingStore
	sessions SessionStore
	board    ChartBoard
	logger   Logger
	metrics  MetricsCollector
	now      func() time.Time

	mu       sync.Mutex
	issued   uint64
	applied  uint64
	loaded   bool
	snapshot []*domain.Booking
	session  []*domain.Session
	loadedAt time.Time
}

// snapshotRef неизменяемая копия ссылок на снимок, взятая под мьютексом
type snapshotRef struct {
	snapshot   []*domain.Booking
	sessions   int
	loadedAt   time.Time
	generation uint64
}

// NewController создает контроллер дашборда
func NewController(
	bookings BookingStore,
	sessions SessionStore,
	board ChartBoard,
	logger Logger,
	metrics MetricsCollector,
) *Controller {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Controller{
		bookings: bookings,
		sessions: sessions,
		board:    board,
		logger:   logger,
		metrics:  metrics,
		now:      time.Now,
	}
}

// Load загружает агендаменты и сессии одновременно и заменяет снимок
// Ошибка загрузки сессий не прерывает загрузку. Ответ, выданный раньше уже
// примененного, отбрасывается, и возвращается состояние более нового снимка
func (c *Controller) Load(ctx context.Context) (*State, error) {
	seq := c.nextSeq()
	c.logger.Info("LoadDashboard: request #%d started", seq)

	var (
		bookings []*domain.Booking
		sessions []*domain.Session
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bookings, err = c.bookings.ListBookings(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		sessions, err = c.sessions.ListSessions(gctx, nil)
		if err != nil {
			c.logger.Warn("LoadDashboard: request #%d failed to load sessions: %v", seq, err)
			sessions = nil
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		c.logger.Error("LoadDashboard: request #%d failed to load bookings: %v", seq, err)
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq < c.applied {
		c.metrics.IncStaleResponses()
		c.logger.Warn("LoadDashboard: request #%d is older than applied #%d, discarding", seq, c.applied)
		return c.refLocked().state(stats.Derive(c.snapshot, domain.FilterAll)), nil
	}

	c.applied = seq
	c.loaded = true
	c.snapshot = bookings
	c.session = sessions
	c.loadedAt = c.now()
	c.metrics.SetSnapshotSize(len(bookings))

	view := stats.Derive(c.snapshot, domain.FilterAll)
	c.board.Rebuild(view)

	c.logger.Info("LoadDashboard: request #%d applied, bookings=%d, sessions=%d", seq, len(bookings), len(sessions))
	return c.refLocked().state(view), nil
}

// ApplyFilter пересчитывает статистику для категории label
// Пустой label и "all" выбирают все агендаменты. Состояние контроллера не меняется
func (c *Controller) ApplyFilter(label string) (*State, error) {
	snap, err := c.current()
	if err != nil {
		return nil, err
	}

	view := stats.Derive(snap.snapshot, label)
	c.logger.Info("ApplyFilter: filter=%q, bookings=%d", view.Filter, view.Metrics.Total)
	return snap.state(view), nil
}

// Categories варианты фильтра для текущего снимка
func (c *Controller) Categories() ([]string, error) {
	snap, err := c.current()
	if err != nil {
		return nil, err
	}
	return stats.Categories(snap.snapshot), nil
}

// Charts строит набор графиков для категории label по текущему снимку
// Набор принадлежит вызывающему; общий набор доски не меняется
func (c *Controller) Charts(label string) (*charts.Set, error) {
	snap, err := c.current()
	if err != nil {
		return nil, err
	}

	view := stats.Derive(snap.snapshot, label)
	return c.board.Build(snap.generation, view), nil
}

// Loaded сообщает, загружен ли снимок
func (c *Controller) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

func (c *Controller) nextSeq() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.issued++
	return c.issued
}

// current снимает ссылки на снимок под мьютексом; дальше работа идет без блокировки
func (c *Controller) current() (snapshotRef, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		return snapshotRef{}, ErrNoSnapshot
	}
	return c.refLocked(), nil
}

func (c *Controller) refLocked() snapshotRef {
	return snapshotRef{
		snapshot:   c.snapshot,
		sessions:   len(c.session),
		loadedAt:   c.loadedAt,
		generation: c.board.Current().Generation,
	}
}

func (s snapshotRef) state(view stats.View) *State {
	return &State{
		View:       view,
		Categories: stats.Categories(s.snapshot),
		Sessions:   s.sessions,
		LoadedAt:   s.loadedAt,
	}
}
