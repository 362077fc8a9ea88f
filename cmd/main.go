package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/luacris/studio-service/internal/api/handlers/create_booking"
	createSessionHandler "github.com/luacris/studio-service/internal/api/handlers/create_session"
	deleteBookingHandler "github.com/luacris/studio-service/internal/api/handlers/delete_booking"
	deleteSessionHandler "github.com/luacris/studio-service/internal/api/handlers/delete_session"
	getBookingHandler "github.com/luacris/studio-service/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/luacris/studio-service/internal/api/handlers/get_calendar"
	getChartsHandler "github.com/luacris/studio-service/internal/api/handlers/get_charts"
	getServiceHandler "github.com/luacris/studio-service/internal/api/handlers/get_service"
	getSessionHandler "github.com/luacris/studio-service/internal/api/handlers/get_session"
	getStatsHandler "github.com/luacris/studio-service/internal/api/handlers/get_stats"
	listBookingsHandler "github.com/luacris/studio-service/internal/api/handlers/list_bookings"
	listServicesHandler "github.com/luacris/studio-service/internal/api/handlers/list_services"
	listSessionsHandler "github.com/luacris/studio-service/internal/api/handlers/list_sessions"
	updateBookingHandler "github.com/luacris/studio-service/internal/api/handlers/update_booking"
	updateSessionHandler "github.com/luacris/studio-service/internal/api/handlers/update_session"
	"github.com/luacris/studio-service/internal/api/middleware"
	"github.com/luacris/studio-service/internal/config"
	"github.com/luacris/studio-service/internal/integrations/recordstore"
	bookingsService "github.com/luacris/studio-service/internal/service/bookings"
	"github.com/luacris/studio-service/internal/service/catalog"
	"github.com/luacris/studio-service/internal/service/charts"
	"github.com/luacris/studio-service/internal/service/dashboard"
	sessionsService "github.com/luacris/studio-service/internal/service/sessions"
	"github.com/luacris/studio-service/pkg/logger"
	"github.com/luacris/studio-service/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию (.env уже подхвачен godotenv/autoload)
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting studio-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Клиент внешнего хранилища записей
	storeOpts := []recordstore.Option{}
	if metricsCollector != nil {
		storeOpts = append(storeOpts, recordstore.WithMetrics(metricsCollector))
	}
	store := recordstore.NewClient(
		cfg.Store.URL,
		time.Duration(cfg.Store.Timeout)*time.Second,
		log,
		storeOpts...,
	)
	log.Info("Record store client initialized (url=%s timeout=%ds)", cfg.Store.URL, cfg.Store.Timeout)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(store, log)
	sessionSvc := sessionsService.NewService(store, log)
	serviceCatalog := catalog.New()

	for _, name := range cfg.Dashboard.Charts {
		if !charts.Known(name) {
			log.Warn("Dashboard chart %q is not known and will be skipped", name)
		}
	}

	var (
		board      *charts.Board
		controller *dashboard.Controller
	)
	if metricsCollector != nil {
		board = charts.NewBoard(cfg.Dashboard.Charts, log, metricsCollector)
		controller = dashboard.NewController(store, store, board, log, metricsCollector)
	} else {
		board = charts.NewBoard(cfg.Dashboard.Charts, log, nil)
		controller = dashboard.NewController(store, store, board, log, nil)
	}

	if cfg.Dashboard.LoadOnStart {
		loadCtx, cancelLoad := context.WithTimeout(context.Background(), time.Duration(cfg.Store.Timeout)*time.Second)
		if _, err := controller.Load(loadCtx); err != nil {
			// Хранилище может подняться позже, дашборд загрузится при первом запросе
			log.Warn("Initial dashboard load failed: %v", err)
		}
		cancelLoad()
	}

	// Инициализируем handlers
	getStats := getStatsHandler.NewHandler(controller, log)
	getCharts := getChartsHandler.NewHandler(controller, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getCalendar := getCalendarHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	listSessions := listSessionsHandler.NewHandler(sessionSvc, log)
	getSession := getSessionHandler.NewHandler(sessionSvc, log)
	createSession := createSessionHandler.NewHandler(sessionSvc, log)
	updateSession := updateSessionHandler.NewHandler(sessionSvc, log)
	deleteSession := deleteSessionHandler.NewHandler(sessionSvc, log)
	listServices := listServicesHandler.NewHandler(serviceCatalog, log)
	getService := getServiceHandler.NewHandler(serviceCatalog, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recover(log))
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if metricsCollector != nil {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Статистика ---
	api.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet)
	api.HandleFunc("/stats/charts", getCharts.Handle).Methods(http.MethodGet)

	// --- Агендаменты ---
	// calendar регистрируется раньше {bookingId}
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/calendar", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Сессии портфолио ---
	api.HandleFunc("/sessions", listSessions.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}", updateSession.Handle).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}", deleteSession.Handle).Methods(http.MethodDelete)

	// --- Каталог услуг ---
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
