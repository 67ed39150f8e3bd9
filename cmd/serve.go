package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorillahandlers "github.com/gorilla/handlers"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBookingService/internal/config"
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/infra/cache/daybookings"
	"github.com/m04kA/SMC-RoomBookingService/internal/infra/events"
	"github.com/m04kA/SMC-RoomBookingService/internal/infra/guard"
	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
	locationRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/location"
	managerRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/manager"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-RoomBookingService/internal/service/bookings"
	dashboardService "github.com/m04kA/SMC-RoomBookingService/internal/service/dashboard"
	directoryService "github.com/m04kA/SMC-RoomBookingService/internal/service/directory"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/roomschedule"
	checkAvailabilityUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
	getOccupiedSlotsUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_occupied_slots"
	updateBookingUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-RoomBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
	"github.com/m04kA/SMC-RoomBookingService/pkg/metrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/txmanager"
)

const rateLimitCleanupInterval = time.Minute

// publisher публикатор событий бронирований
type publisher interface {
	Publish(ctx context.Context, event events.BookingEvent) error
	Close() error
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP сервер",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Close()

			return serve(cfg, log)
		},
	}
}

func serve(cfg *config.Config, log *logger.Logger) error {
	log.Info("Starting SMC-RoomBookingService...")

	location, err := cfg.Booking.Location()
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", cfg.Booking.Timezone, err)
	}

	// Метрики (если включены). Методы *metrics.Metrics безопасны для nil
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}
	stopCh := make(chan struct{})
	defer close(stopCh)

	// База данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var wrappedDB *dbmetrics.DB
	if metricsCollector != nil {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txManager := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	locationRepository := locationRepo.NewRepository(wrappedDB)
	roomRepository := roomRepo.NewRepository(wrappedDB)
	managerRepository := managerRepo.NewRepository(wrappedDB)

	// Источник бронирований комнаты за день: кэш Redis и breaker опциональны
	var cache roomschedule.Cache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis is unavailable, cache will miss until it recovers: %v", err)
		}
		cache = daybookings.NewCache(redisClient, cfg.Cache.TTLDuration(), cfg.Cache.KeyPrefix, metricsCollector, log)
		log.Info("Day bookings cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Cache.TTL)
	}

	var breaker roomschedule.Breaker
	if cfg.Breaker.Enabled {
		breaker = guard.New[[]*domain.Booking]("room_schedule", guard.Settings{
			MaxRequests:         cfg.Breaker.MaxRequests,
			Interval:            time.Duration(cfg.Breaker.Interval) * time.Second,
			Timeout:             time.Duration(cfg.Breaker.Timeout) * time.Second,
			ConsecutiveFailures: cfg.Breaker.ConsecutiveFailures,
		}, metricsCollector, log)
		log.Info("Circuit breaker enabled (consecutive_failures=%d)", cfg.Breaker.ConsecutiveFailures)
	}

	// События
	var eventPublisher publisher = events.NoopPublisher{}
	if cfg.Events.Enabled {
		writer := events.NewKafkaWriter(cfg.Events.Brokers, cfg.Events.Topic,
			time.Duration(cfg.Events.WriteTimeout)*time.Second)
		eventPublisher = events.NewKafkaPublisher(writer)
		log.Info("Booking events enabled (topic=%s, brokers=%v)", cfg.Events.Topic, cfg.Events.Brokers)
	}
	defer func() {
		if err := eventPublisher.Close(); err != nil {
			log.Error("Failed to close event publisher: %v", err)
		}
	}()

	// Сервисы
	engine := availability.NewEngine(location)
	schedule := roomschedule.NewService(bookingRepository, cache, breaker, location, log)
	directorySvc := directoryService.NewService(locationRepository, roomRepository, managerRepository, txManager, log)
	bookingSvc := bookingsService.NewService(bookingRepository, schedule, eventPublisher, metricsCollector, location, nil, log)
	dashboardSvc := dashboardService.NewService(bookingRepository, roomRepository, location, log)

	// Use cases
	createBooking := createBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		managerRepository,
		directorySvc,
		engine,
		schedule,
		txManager,
		eventPublisher,
		metricsCollector,
		cfg.Booking.MinNoticeMinutes,
		log,
	)
	updateBooking := updateBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		managerRepository,
		engine,
		schedule,
		txManager,
		eventPublisher,
		metricsCollector,
		cfg.Booking.MinNoticeMinutes,
		log,
	)
	checkAvailability := checkAvailabilityUC.NewUseCase(schedule, engine, metricsCollector, log)
	getOccupiedSlots := getOccupiedSlotsUC.NewUseCase(schedule, engine, log)

	// Фоновое обновление показателей дашборда
	if cfg.Dashboard.RefreshEnabled {
		refresher, err := dashboardService.NewRefresher(cfg.Dashboard.RefreshSchedule, dashboardSvc, metricsCollector, log)
		if err != nil {
			return err
		}
		refresher.Start()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			refresher.Stop(ctx)
		}()
		log.Info("Dashboard refresher started (%s)", cfg.Dashboard.RefreshSchedule)
	}

	router := newRouter(routerDeps{
		cfg:               cfg,
		location:          location,
		metrics:           metricsCollector,
		logger:            log,
		directory:         directorySvc,
		bookings:          bookingSvc,
		dashboard:         dashboardSvc,
		createBooking:     createBooking,
		updateBooking:     updateBooking,
		checkAvailability: checkAvailability,
		getOccupiedSlots:  getOccupiedSlots,
	})

	var handler http.Handler = router
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		go limiter.RunCleanup(rateLimitCleanupInterval, stopCh)
		handler = limiter.Middleware()(handler)
		log.Info("Rate limit enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}
	handler = gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins(cfg.CORS.AllowedOrigins),
		gorillahandlers.AllowedMethods(cfg.CORS.AllowedMethods),
		gorillahandlers.AllowedHeaders(cfg.CORS.AllowedHeaders),
	)(handler)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения или падение сервера
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

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
	return nil
}
