package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	absenceRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/absence"
	bookingRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/memstore"
	policyRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/policy"
	workingHoursRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/workinghours"
	absencesService "github.com/m04kA/SMC-AvailabilityService/internal/service/absences"
	bookingsService "github.com/m04kA/SMC-AvailabilityService/internal/service/bookings"
	policyService "github.com/m04kA/SMC-AvailabilityService/internal/service/policy"
	workingHoursService "github.com/m04kA/SMC-AvailabilityService/internal/service/workinghours"
	createBookingUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-AvailabilityService/migrations"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/migrator"
	"github.com/m04kA/SMC-AvailabilityService/pkg/txmanager"
)

type bookingStore interface {
	bookingsService.BookingRepository
	createBookingUC.BookingRepository
}

type txManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// storage репозитории и менеджер транзакций выбранного драйвера
type storage struct {
	bookings     bookingStore
	absences     absencesService.AbsenceRepository
	workingHours workingHoursService.WorkingHoursRepository
	policies     policyService.PolicyRepository
	txManager    txManager
	close        func()
}

func newMemoryStorage() *storage {
	return &storage{
		bookings:     memstore.NewBookings(),
		absences:     memstore.NewAbsences(),
		workingHours: memstore.NewWorkingHours(),
		policies:     memstore.NewPolicies(),
		txManager:    memstore.NewTxManager(),
		close:        func() {},
	}
}

func newPostgresStorage(ctx context.Context, cfg config.DatabaseConfig, m *metrics.Metrics, serviceName string, log *logger.Logger) (*storage, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)", cfg.Host, cfg.Port, cfg.DBName)

	if cfg.AutoMigrate {
		if err := migrator.New(db, migrations.FS, log).Apply(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply migrations: %w", err)
		}
	}

	// Без метрик обёртка работает как прозрачный прокси
	stopMetricsCh := make(chan struct{})
	wrappedDB := dbmetrics.WrapWithDefault(db, m, serviceName, stopMetricsCh)

	return &storage{
		bookings:     bookingRepo.NewRepository(wrappedDB),
		absences:     absenceRepo.NewRepository(wrappedDB),
		workingHours: workingHoursRepo.NewRepository(wrappedDB),
		policies:     policyRepo.NewRepository(wrappedDB),
		txManager:    txmanager.NewTransactionManager(wrappedDB),
		close: func() {
			close(stopMetricsCh)
			db.Close()
		},
	}, nil
}
