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

	cancelBookingHandler "github.com/m04kA/SBM-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SBM-BookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SBM-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SBM-BookingService/internal/api/handlers/get_booking"
	getClientBookingsHandler "github.com/m04kA/SBM-BookingService/internal/api/handlers/get_client_bookings"
	getClientLoyaltyHandler "github.com/m04kA/SBM-BookingService/internal/api/handlers/get_client_loyalty"
	getSalonBookingsHandler "github.com/m04kA/SBM-BookingService/internal/api/handlers/get_salon_bookings"
	getSalonHoursHandler "github.com/m04kA/SBM-BookingService/internal/api/handlers/get_salon_hours"
	getSalonServicesHandler "github.com/m04kA/SBM-BookingService/internal/api/handlers/get_salon_services"
	getTreatmentHistoryHandler "github.com/m04kA/SBM-BookingService/internal/api/handlers/get_treatment_history"
	updateBookingStatusHandler "github.com/m04kA/SBM-BookingService/internal/api/handlers/update_booking_status"
	updateSalonHoursHandler "github.com/m04kA/SBM-BookingService/internal/api/handlers/update_salon_hours"
	"github.com/m04kA/SBM-BookingService/internal/api/middleware"
	"github.com/m04kA/SBM-BookingService/internal/config"
	bookingRepo "github.com/m04kA/SBM-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SBM-BookingService/internal/infra/storage/catalog"
	hoursRepo "github.com/m04kA/SBM-BookingService/internal/infra/storage/hours"
	loyaltyRepo "github.com/m04kA/SBM-BookingService/internal/infra/storage/loyalty"
	salonRepo "github.com/m04kA/SBM-BookingService/internal/infra/storage/salon"
	profileServiceClient "github.com/m04kA/SBM-BookingService/internal/integrations/profileservice"
	bookingsService "github.com/m04kA/SBM-BookingService/internal/service/bookings"
	catalogService "github.com/m04kA/SBM-BookingService/internal/service/catalog"
	historyService "github.com/m04kA/SBM-BookingService/internal/service/history"
	hoursService "github.com/m04kA/SBM-BookingService/internal/service/hours"
	loyaltyService "github.com/m04kA/SBM-BookingService/internal/service/loyalty"
	createBookingUC "github.com/m04kA/SBM-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SBM-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SBM-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SBM-BookingService/pkg/logger"
	"github.com/m04kA/SBM-BookingService/pkg/metrics"
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

	log.Info("Starting SBM-BookingService...")
	log.Info("Configuration loaded from config.toml")

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

	// Инициализируем клиента ProfileService
	profileClient := profileServiceClient.NewClient(
		cfg.ProfileService.URL,
		time.Duration(cfg.ProfileService.Timeout)*time.Second,
		log,
	)
	log.Info("ProfileService client initialized (url=%s, timeout=%ds)",
		cfg.ProfileService.URL, cfg.ProfileService.Timeout)

	// Оборачиваем БД: с метриками запросов и пула либо без
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	hoursRepository := hoursRepo.NewRepository(wrappedDB)
	loyaltyRepository := loyaltyRepo.NewRepository(wrappedDB)
	salonRepository := salonRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	loyaltySvc := loyaltyService.NewService(loyaltyRepository, salonRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, salonRepository, loyaltySvc, log)
	catalogSvc := catalogService.NewService(catalogRepository, salonRepository, log)
	historySvc := historyService.NewService(bookingRepository, catalogRepository, log)
	hoursSvc := hoursService.NewService(hoursRepository, salonRepository, wrappedDB, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		salonRepository,
		profileClient,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		hoursRepository,
		catalogRepository,
		salonRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingSvc, log)
	getSalonBookings := getSalonBookingsHandler.NewHandler(bookingSvc, log)
	getTreatmentHistory := getTreatmentHistoryHandler.NewHandler(historySvc, log)
	getClientLoyalty := getClientLoyaltyHandler.NewHandler(loyaltySvc, log)
	getSalonServices := getSalonServicesHandler.NewHandler(catalogSvc, log)
	getSalonHours := getSalonHoursHandler.NewHandler(hoursSvc, log)
	updateSalonHours := updateSalonHoursHandler.NewHandler(hoursSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Rate limiter публичных ручек (если включен).
	// При недоступности Redis запросы пропускаются без ограничений
	var rdb *redis.Client
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RateLimit.Addr,
			Password: cfg.RateLimit.Password,
			DB:       cfg.RateLimit.DB,
		})
		defer rdb.Close()

		rateLimiter = middleware.NewRateLimiter(
			rdb,
			cfg.RateLimit.Requests,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
			log,
		)
		log.Info("Rate limiter enabled (redis=%s, %d req / %ds)",
			cfg.RateLimit.Addr, cfg.RateLimit.Requests, cfg.RateLimit.WindowSeconds)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	if rateLimiter != nil {
		public.Use(rateLimiter.Middleware)
	}

	// Сетка слотов на дату с флагами доступности
	public.HandleFunc("/salons/{salonId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Каталог видимых услуг салона
	public.HandleFunc("/salons/{salonId}/services", getSalonServices.Handle).Methods(http.MethodGet)

	// Расписание рабочих часов салона
	public.HandleFunc("/salons/{salonId}/hours", getSalonHours.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Смена статуса бронирования (для менеджеров)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Клиент ---
	// Бронирования клиента
	protected.HandleFunc("/clients/{clientId}/bookings", getClientBookings.Handle).Methods(http.MethodGet)

	// История процедур с агрегатами
	protected.HandleFunc("/clients/{clientId}/treatment-history", getTreatmentHistory.Handle).Methods(http.MethodGet)

	// Бонусный баланс в салоне
	protected.HandleFunc("/clients/{clientId}/loyalty", getClientLoyalty.Handle).Methods(http.MethodGet)

	// --- Управление салоном (для менеджеров) ---
	// Список бронирований салона
	protected.HandleFunc("/salons/{salonId}/bookings", getSalonBookings.Handle).Methods(http.MethodGet)

	// Замена расписания дня недели
	protected.HandleFunc("/salons/{salonId}/hours", updateSalonHours.Handle).Methods(http.MethodPut)

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
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
