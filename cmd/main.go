package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	createBookingHandler "github.com/brambleappmatus/biztree-sub002/internal/api/handlers/create_booking"
	getAvailableTablesHandler "github.com/brambleappmatus/biztree-sub002/internal/api/handlers/get_available_tables"
	getDayAvailabilityHandler "github.com/brambleappmatus/biztree-sub002/internal/api/handlers/get_day_availability"
	getFullyBookedDatesHandler "github.com/brambleappmatus/biztree-sub002/internal/api/handlers/get_fully_booked_dates"
	healthHandler "github.com/brambleappmatus/biztree-sub002/internal/api/handlers/health"
	"github.com/brambleappmatus/biztree-sub002/internal/api/middleware"
	"github.com/brambleappmatus/biztree-sub002/internal/config"
	bookingRepo "github.com/brambleappmatus/biztree-sub002/internal/infra/storage/booking"
	businessRepo "github.com/brambleappmatus/biztree-sub002/internal/infra/storage/business"
	serviceRepo "github.com/brambleappmatus/biztree-sub002/internal/infra/storage/service"
	tableRepo "github.com/brambleappmatus/biztree-sub002/internal/infra/storage/table"
	"github.com/brambleappmatus/biztree-sub002/internal/integrations/googlecalendar"
	"github.com/brambleappmatus/biztree-sub002/internal/service/externalcalendar"
	"github.com/brambleappmatus/biztree-sub002/internal/service/snapshot"
	createBookingUC "github.com/brambleappmatus/biztree-sub002/internal/usecase/create_booking"
	getAvailableTablesUC "github.com/brambleappmatus/biztree-sub002/internal/usecase/get_available_tables"
	getDayAvailabilityUC "github.com/brambleappmatus/biztree-sub002/internal/usecase/get_day_availability"
	getFullyBookedDatesUC "github.com/brambleappmatus/biztree-sub002/internal/usecase/get_fully_booked_dates"
	"github.com/brambleappmatus/biztree-sub002/pkg/dbmetrics"
	"github.com/brambleappmatus/biztree-sub002/pkg/logger"
	"github.com/brambleappmatus/biztree-sub002/pkg/metrics"
	"github.com/brambleappmatus/biztree-sub002/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
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

	log.Info("Starting %s...", cfg.Metrics.ServiceName)

	defaultLoc, err := cfg.Scheduling.Location()
	if err != nil {
		log.Fatal("Invalid default timezone %q: %v", cfg.Scheduling.DefaultTimezone, err)
	}

	policy, err := externalcalendar.ParseFailurePolicy(cfg.GoogleCalendar.FailurePolicy)
	if err != nil {
		log.Fatal("Invalid external calendar failure policy: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db)
	}

	// Репозитории и менеджер транзакций
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	businessRepository := businessRepo.NewRepository(wrappedDB)
	serviceRepository := serviceRepo.NewRepository(wrappedDB)
	tableRepository := tableRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Кэш занятости внешнего календаря (опционально)
	var busyCache externalcalendar.Cache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is not reachable at %s, cache will miss until it is: %v", cfg.Redis.Addr, err)
		}
		cancel()

		busyCache = externalcalendar.NewRedisCache(redisClient, cfg.GoogleCalendar.CacheTTL(), cfg.Redis.Prefix)
		log.Info("External busy windows cache enabled (redis=%s, ttl=%s)", cfg.Redis.Addr, cfg.GoogleCalendar.CacheTTL())
	}

	// Интеграция с Google Calendar
	calendarClient := googlecalendar.NewClient(googlecalendar.Config{
		ClientID:        cfg.GoogleCalendar.ClientID,
		ClientSecret:    cfg.GoogleCalendar.ClientSecret,
		MarkerKey:       cfg.GoogleCalendar.MarkerKey,
		RateLimit:       cfg.GoogleCalendar.RateLimit,
		Burst:           cfg.GoogleCalendar.RateBurst,
		Timeout:         cfg.GoogleCalendar.Timeout(),
		DefaultLocation: defaultLoc,
	}, businessRepository, log)

	reconciler := externalcalendar.NewReconciler(
		calendarClient,
		busyCache,
		externalcalendar.Config{Timeout: cfg.GoogleCalendar.Timeout(), Policy: policy},
		metricsCollector,
		log,
	)
	log.Info("External calendar reconciler initialized (timeout=%s, policy=%s)", cfg.GoogleCalendar.Timeout(), policy)

	loader := snapshot.NewLoader(
		serviceRepository,
		businessRepository,
		tableRepository,
		bookingRepository,
		reconciler,
		defaultLoc,
		log,
	)

	var pusher createBookingUC.CalendarPusher
	if cfg.GoogleCalendar.PushBookings {
		pusher = calendarClient
	}

	// Инициализируем use cases
	getDayAvailabilityUseCase := getDayAvailabilityUC.NewUseCase(loader, metricsCollector, log)
	getFullyBookedDatesUseCase := getFullyBookedDatesUC.NewUseCase(loader, metricsCollector, log)
	getAvailableTablesUseCase := getAvailableTablesUC.NewUseCase(loader, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		loader,
		bookingRepository,
		txMgr,
		pusher,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getDayAvailability := getDayAvailabilityHandler.NewHandler(getDayAvailabilityUseCase, log)
	getFullyBookedDates := getFullyBookedDatesHandler.NewHandler(getFullyBookedDatesUseCase, log)
	getAvailableTables := getAvailableTablesHandler.NewHandler(getAvailableTablesUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	health := healthHandler.NewHandler(cfg.Metrics.ServiceName)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Доступность услуги
	api.HandleFunc("/services/{serviceId}/availability", getDayAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}/fully-booked-dates", getFullyBookedDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}/available-tables", getAvailableTables.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

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
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
