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

	cancelAppointmentHandler "github.com/consultafacil/CF-SchedulingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/consultafacil/CF-SchedulingService/internal/api/handlers/create_appointment"
	createSlotHandler "github.com/consultafacil/CF-SchedulingService/internal/api/handlers/create_slot"
	deleteSlotHandler "github.com/consultafacil/CF-SchedulingService/internal/api/handlers/delete_slot"
	getAppointmentHandler "github.com/consultafacil/CF-SchedulingService/internal/api/handlers/get_appointment"
	getPatientAppointmentsHandler "github.com/consultafacil/CF-SchedulingService/internal/api/handlers/get_patient_appointments"
	getProfessionalAppointmentsHandler "github.com/consultafacil/CF-SchedulingService/internal/api/handlers/get_professional_appointments"
	getProfessionalSlotsHandler "github.com/consultafacil/CF-SchedulingService/internal/api/handlers/get_professional_slots"
	updateSlotHandler "github.com/consultafacil/CF-SchedulingService/internal/api/handlers/update_slot"
	"github.com/consultafacil/CF-SchedulingService/internal/api/middleware"
	"github.com/consultafacil/CF-SchedulingService/internal/config"
	"github.com/consultafacil/CF-SchedulingService/internal/infra/lock"
	appointmentRepo "github.com/consultafacil/CF-SchedulingService/internal/infra/storage/appointment"
	slotRepo "github.com/consultafacil/CF-SchedulingService/internal/infra/storage/slot"
	slotServiceClient "github.com/consultafacil/CF-SchedulingService/internal/integrations/slotservice"
	appointmentsService "github.com/consultafacil/CF-SchedulingService/internal/service/appointments"
	slotsService "github.com/consultafacil/CF-SchedulingService/internal/service/slots"
	cancelAppointmentUC "github.com/consultafacil/CF-SchedulingService/internal/usecase/cancel_appointment"
	createAppointmentUC "github.com/consultafacil/CF-SchedulingService/internal/usecase/create_appointment"
	"github.com/consultafacil/CF-SchedulingService/pkg/dbmetrics"
	"github.com/consultafacil/CF-SchedulingService/pkg/logger"
	"github.com/consultafacil/CF-SchedulingService/pkg/metrics"
	"github.com/consultafacil/CF-SchedulingService/pkg/simpletxmanager"
	"github.com/consultafacil/CF-SchedulingService/pkg/txmanager"
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

	log.Info("Starting CF-SchedulingService...")
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
		appointmentRepository *appointmentRepo.Repository
		slotRepository        *slotRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Замок бронирования по профессионалу: Redis в production,
	// noop в самодостаточном деплое - там конкуренцию отсекает
	// сериализуемая транзакция и уникальный индекс
	var professionalLocker createAppointmentUC.ProfessionalLocker
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		professionalLocker = lock.NewRedisLocker(redisClient, time.Duration(cfg.Redis.LockTTLSec)*time.Second)
		log.Info("Redis professional lock enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.LockTTLSec)
	} else {
		professionalLocker = lock.NewNoopLocker()
		log.Info("Professional lock disabled, relying on serializable transactions")
	}

	// Стратегия доступа к слотам: собственная БД или удалённый сервис
	var slotProvider createAppointmentUC.SlotProvider
	slotSvc := slotsService.NewService(slotRepository, log)

	switch cfg.Slots.Mode {
	case config.SlotModeRemote:
		slotProvider = slotServiceClient.NewClient(
			cfg.SlotService.URL,
			time.Duration(cfg.SlotService.Timeout)*time.Second,
			cfg.Slots.RemotePageSize,
			log,
		)
		log.Info("Slot provider: remote service at %s (timeout=%ds, page_size=%d)",
			cfg.SlotService.URL, cfg.SlotService.Timeout, cfg.Slots.RemotePageSize)
	default:
		slotProvider = slotsService.NewProvider(slotRepository)
		log.Info("Slot provider: local database")
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		slotProvider,
		txMgr,
		professionalLocker,
		log,
	)
	cancelAppointmentUseCase := cancelAppointmentUC.NewUseCase(appointmentRepository, log)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(cancelAppointmentUseCase, log)
	getPatientAppointments := getPatientAppointmentsHandler.NewHandler(appointmentSvc, log)
	getProfessionalAppointments := getProfessionalAppointmentsHandler.NewHandler(appointmentSvc, log)
	createSlot := createSlotHandler.NewHandler(slotSvc, log)
	getProfessionalSlots := getProfessionalSlotsHandler.NewHandler(slotSvc, log)
	updateSlot := updateSlotHandler.NewHandler(slotSvc, log)
	deleteSlot := deleteSlotHandler.NewHandler(slotSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Слоты профессионала - пациент выбирает время до бронирования.
	// В remote-режиме слотами владеет удалённый сервис, там и витрина.
	if cfg.Slots.Mode == config.SlotModeLocal {
		api.HandleFunc("/professionals/{professionalId}/slots",
			getProfessionalSlots.Handle).Methods(http.MethodGet)
	}

	// ============================================================
	// PROTECTED ROUTES (требуют заголовки личности)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Консультации ---
	// Создание консультации
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение консультации по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена консультации
	protected.HandleFunc("/appointments/{appointmentId}", cancelAppointment.Handle).Methods(http.MethodDelete)

	// Консультации пациента
	protected.HandleFunc("/patients/{patientId}/appointments",
		getPatientAppointments.Handle).Methods(http.MethodGet)

	// Расписание профессионала
	protected.HandleFunc("/professionals/{professionalId}/appointments",
		getProfessionalAppointments.Handle).Methods(http.MethodGet)

	// --- Управление слотами (только в local-режиме: в remote-режиме
	// слотами владеет удалённый сервис) ---
	if cfg.Slots.Mode == config.SlotModeLocal {
		protected.HandleFunc("/slots", createSlot.Handle).Methods(http.MethodPost)
		protected.HandleFunc("/slots/{slotId}/availability", updateSlot.Handle).Methods(http.MethodPut)
		protected.HandleFunc("/slots/{slotId}", deleteSlot.Handle).Methods(http.MethodDelete)
	}

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
