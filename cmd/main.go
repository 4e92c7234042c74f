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

	addScheduleSlotHandler "github.com/lamasat/salon-booking-service/internal/api/handlers/add_schedule_slot"
	cancelBookingHandler "github.com/lamasat/salon-booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/lamasat/salon-booking-service/internal/api/handlers/create_booking"
	createServiceHandler "github.com/lamasat/salon-booking-service/internal/api/handlers/create_service"
	createSpecialistHandler "github.com/lamasat/salon-booking-service/internal/api/handlers/create_specialist"
	deleteScheduleSlotHandler "github.com/lamasat/salon-booking-service/internal/api/handlers/delete_schedule_slot"
	getAvailableSlotsHandler "github.com/lamasat/salon-booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/lamasat/salon-booking-service/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/lamasat/salon-booking-service/internal/api/handlers/get_bookings"
	getScheduleHandler "github.com/lamasat/salon-booking-service/internal/api/handlers/get_schedule"
	getServicesHandler "github.com/lamasat/salon-booking-service/internal/api/handlers/get_services"
	getSpecialistsHandler "github.com/lamasat/salon-booking-service/internal/api/handlers/get_specialists"
	trackBookingsHandler "github.com/lamasat/salon-booking-service/internal/api/handlers/track_bookings"
	updateBookingStatusHandler "github.com/lamasat/salon-booking-service/internal/api/handlers/update_booking_status"
	updateServiceHandler "github.com/lamasat/salon-booking-service/internal/api/handlers/update_service"
	updateSpecialistHandler "github.com/lamasat/salon-booking-service/internal/api/handlers/update_specialist"
	"github.com/lamasat/salon-booking-service/internal/api/middleware"
	"github.com/lamasat/salon-booking-service/internal/config"
	bookingRepo "github.com/lamasat/salon-booking-service/internal/infra/storage/booking"
	catalogRepo "github.com/lamasat/salon-booking-service/internal/infra/storage/catalog"
	scheduleRepo "github.com/lamasat/salon-booking-service/internal/infra/storage/schedule"
	specialistRepo "github.com/lamasat/salon-booking-service/internal/infra/storage/specialist"
	bookingsService "github.com/lamasat/salon-booking-service/internal/service/bookings"
	catalogService "github.com/lamasat/salon-booking-service/internal/service/catalog"
	specialistsService "github.com/lamasat/salon-booking-service/internal/service/specialists"
	createBookingUC "github.com/lamasat/salon-booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/lamasat/salon-booking-service/internal/usecase/get_available_slots"
	"github.com/lamasat/salon-booking-service/pkg/dbmetrics"
	"github.com/lamasat/salon-booking-service/pkg/logger"
	"github.com/lamasat/salon-booking-service/pkg/metrics"
	"github.com/lamasat/salon-booking-service/pkg/simpletxmanager"
	"github.com/lamasat/salon-booking-service/pkg/txmanager"
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

	log.Info("Starting salon-booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository    *bookingRepo.Repository
		catalogRepository    *catalogRepo.Repository
		specialistRepository *specialistRepo.Repository
		scheduleRepository   *scheduleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		specialistRepository = specialistRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		specialistRepository = specialistRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	timeProvider := &getAvailableSlotsUC.RealTimeProvider{}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	specialistSvc := specialistsService.NewService(
		specialistRepository,
		scheduleRepository,
		catalogRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUsecase(
		scheduleRepository,
		bookingRepository,
		catalogRepository,
		specialistRepository,
		timeProvider,
		log,
	)

	createBookingUseCase := createBookingUC.NewUsecase(
		bookingRepository,
		catalogRepository,
		specialistRepository,
		scheduleRepository,
		txMgr,
		timeProvider,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	trackBookings := trackBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getServices := getServicesHandler.NewHandler(catalogSvc, log)
	getSpecialists := getSpecialistsHandler.NewHandler(specialistSvc, log)

	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getServicesAdmin := getServicesHandler.NewAdminHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	getSpecialistsAdmin := getSpecialistsHandler.NewAdminHandler(specialistSvc, log)
	createSpecialist := createSpecialistHandler.NewHandler(specialistSvc, log)
	updateSpecialist := updateSpecialistHandler.NewHandler(specialistSvc, log)
	getSchedule := getScheduleHandler.NewHandler(specialistSvc, log)
	addScheduleSlot := addScheduleSlotHandler.NewHandler(specialistSvc, log)
	deleteScheduleSlot := deleteScheduleSlotHandler.NewHandler(specialistSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (витрина и запись)
	// ============================================================

	// Каталог услуг
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)

	// Специалисты (опционально фильтр по услуге)
	api.HandleFunc("/specialists", getSpecialists.Handle).Methods(http.MethodGet)

	// Свободные слоты специалиста на дату
	api.HandleFunc("/specialists/{specialistId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Трекинг записей по телефону (регистрируется до /bookings/{bookingId})
	api.HandleFunc("/bookings/track", trackBookings.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.APIToken))

	// --- Бронирования ---
	admin.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Каталог услуг ---
	admin.HandleFunc("/services", getServicesAdmin.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)

	// --- Специалисты и расписания ---
	admin.HandleFunc("/specialists", getSpecialistsAdmin.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/specialists", createSpecialist.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/specialists/{specialistId}", updateSpecialist.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/specialists/{specialistId}/schedule", getSchedule.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/specialists/{specialistId}/schedule", addScheduleSlot.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/specialists/{specialistId}/schedule/{slotId}", deleteScheduleSlot.Handle).Methods(http.MethodDelete)

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

	log.Info("Server exited")
}
