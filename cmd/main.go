package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	cancelBookingHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/cancel_booking"
	createAbsenceHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/create_absence"
	createBookingHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/create_booking"
	deleteAbsenceHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/delete_absence"
	deletePolicyHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/delete_policy"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_booking"
	getPolicyHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_policy"
	getWorkingHoursHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_working_hours"
	listAbsencesHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/list_absences"
	listBookingsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/list_bookings"
	updateAbsenceHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_absence"
	updatePolicyHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_policy"
	updateWorkingHoursHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_working_hours"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	staffServiceClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/staffservice"
	absencesService "github.com/m04kA/SMC-AvailabilityService/internal/service/absences"
	bookingsService "github.com/m04kA/SMC-AvailabilityService/internal/service/bookings"
	policyService "github.com/m04kA/SMC-AvailabilityService/internal/service/policy"
	workingHoursService "github.com/m04kA/SMC-AvailabilityService/internal/service/workinghours"
	"github.com/m04kA/SMC-AvailabilityService/internal/tenancy"
	createAbsenceUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_absence"
	createBookingUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	updateAbsenceUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/update_absence"
	"github.com/m04kA/SMC-AvailabilityService/pkg/locker"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
)

type employeeLocker interface {
	Lock(ctx context.Context, key string) (locker.Unlock, error)
}

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting SMC-AvailabilityService...")
	log.Info("Configuration loaded from %s", *configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	// Хранилище
	var store *storage
	switch cfg.Database.Driver {
	case config.DriverMemory:
		store = newMemoryStorage()
		log.Warn("Using in-memory storage: data is lost on restart")
	default:
		store, err = newPostgresStorage(startupCtx, cfg.Database, metricsCollector, cfg.Metrics.ServiceName, log)
		if err != nil {
			log.Fatal("Failed to initialize storage: %v", err)
		}
	}
	defer store.close()

	// Блокировка расписания сотрудника
	var scheduleLocker employeeLocker = locker.NewMemoryLocker()
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(startupCtx).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		scheduleLocker = locker.NewRedisLocker(redisClient, time.Duration(cfg.Redis.LockTTL)*time.Second, log)
		log.Info("Distributed employee lock enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.LockTTL)
	}

	// Инициализируем интеграционных клиентов
	staffClient := staffServiceClient.NewClient(
		cfg.StaffService.URL,
		time.Duration(cfg.StaffService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (StaffService=%s timeout=%ds)", cfg.StaffService.URL, cfg.StaffService.Timeout)

	authorizer := tenancy.NewAuthorizer(staffClient, log)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(store.bookings, store.txManager, log)
	absenceSvc := absencesService.NewService(store.absences, store.txManager, log)
	workingHoursSvc := workingHoursService.NewService(store.workingHours, log)
	policySvc := policyService.NewService(store.policies, log)

	var (
		decisionRecorder availability.DecisionRecorder
		slotsRecorder    getAvailableSlotsUC.SlotsRecorder
	)
	if metricsCollector != nil {
		decisionRecorder = metricsCollector
		slotsRecorder = metricsCollector
	}
	resolver := availability.NewResolver(absenceSvc, decisionRecorder)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		authorizer,
		staffClient,
		policySvc,
		workingHoursSvc,
		bookingSvc,
		store.bookings,
		resolver,
		scheduleLocker,
		store.txManager,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		authorizer,
		staffClient,
		policySvc,
		workingHoursSvc,
		absenceSvc,
		bookingSvc,
		slotsRecorder,
		cfg.Engine.DefaultHorizonDays,
		log,
	)

	createAbsenceUseCase := createAbsenceUC.NewUseCase(
		authorizer,
		bookingSvc,
		absenceSvc,
		resolver,
		scheduleLocker,
		store.txManager,
		log,
	)

	updateAbsenceUseCase := updateAbsenceUC.NewUseCase(
		authorizer,
		bookingSvc,
		absenceSvc,
		resolver,
		scheduleLocker,
		store.txManager,
		log,
	)

	validator, err := handlers.NewValidator()
	if err != nil {
		log.Fatal("Failed to initialize validator: %v", err)
	}

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, validator, log)
	listBookings := listBookingsHandler.NewHandler(authorizer, bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(authorizer, bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(authorizer, bookingSvc, validator, log)
	listAbsences := listAbsencesHandler.NewHandler(authorizer, absenceSvc, log)
	createAbsence := createAbsenceHandler.NewHandler(createAbsenceUseCase, validator, log)
	updateAbsence := updateAbsenceHandler.NewHandler(updateAbsenceUseCase, validator, log)
	deleteAbsence := deleteAbsenceHandler.NewHandler(authorizer, absenceSvc, log)
	getWorkingHours := getWorkingHoursHandler.NewHandler(authorizer, workingHoursSvc, log)
	updateWorkingHours := updateWorkingHoursHandler.NewHandler(authorizer, workingHoursSvc, validator, log)
	getPolicy := getPolicyHandler.NewHandler(authorizer, policySvc, log)
	updatePolicy := updatePolicyHandler.NewHandler(authorizer, policySvc, validator, log)
	deletePolicy := deletePolicyHandler.NewHandler(policySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recover(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	employee := "/tenants/{tenantId}/employees/{employeeId}"

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные слоты сотрудника для услуги
	api.HandleFunc(employee+"/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Политика бронирования тенанта или действующая политика сотрудника
	api.HandleFunc("/tenants/{tenantId}/policy", getPolicy.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc(employee+"/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc(employee+"/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc(employee+"/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc(employee+"/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Отсутствия ---
	protected.HandleFunc(employee+"/absences", listAbsences.Handle).Methods(http.MethodGet)
	protected.HandleFunc(employee+"/absences", createAbsence.Handle).Methods(http.MethodPost)
	protected.HandleFunc(employee+"/absences/{absenceId}", updateAbsence.Handle).Methods(http.MethodPut)
	protected.HandleFunc(employee+"/absences/{absenceId}", deleteAbsence.Handle).Methods(http.MethodDelete)

	// --- Рабочие часы ---
	protected.HandleFunc(employee+"/working-hours", getWorkingHours.Handle).Methods(http.MethodGet)
	protected.HandleFunc(employee+"/working-hours", updateWorkingHours.Handle).Methods(http.MethodPut)

	// --- Политика бронирования ---
	protected.HandleFunc("/tenants/{tenantId}/policy", updatePolicy.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/tenants/{tenantId}/policy", deletePolicy.Handle).Methods(http.MethodDelete)

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
