package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/pgerr"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"tenant_id",
	"employee_id",
	"service_id",
	"customer_id",
	"start_time",
	"end_time",
	"buffer_before_minutes",
	"buffer_after_minutes",
	"status",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
//
// Защищённый интервал (с буферами) пишется в protected_start/protected_end:
// по нему работает exclusion-ограничение bookings_no_overlap, последний рубеж против двойного бронирования.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)
	protected := booking.ProtectedInterval()

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"tenant_id",
			"employee_id",
			"service_id",
			"customer_id",
			"start_time",
			"end_time",
			"buffer_before_minutes",
			"buffer_after_minutes",
			"protected_start",
			"protected_end",
			"status",
			"notes",
		).
		Values(
			booking.TenantID,
			booking.EmployeeID,
			booking.ServiceID,
			booking.CustomerID,
			booking.Interval.Start,
			booking.Interval.End,
			int(booking.BufferBefore/time.Minute),
			int(booking.BufferAfter/time.Minute),
			protected.Start,
			protected.End,
			booking.Status,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if pgerr.IsRaceLost(err) {
			return nil, fmt.Errorf("%w: Create - employee_id=%d, interval=%s: %v",
				ErrSlotNotAvailable, booking.EmployeeID, protected, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование сотрудника по ID.
// Бронирование другого сотрудника или тенанта считается ненайденным.
func (r *Repository) GetByID(ctx context.Context, tenantID, employeeID, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID, "employee_id": employeeID})

	// Внутри транзакции блокируем строку для последующего изменения статуса
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// ListForEmployee получает бронирования сотрудника, защищённый интервал которых
// пересекается с [From, To) (полуоткрытая семантика).
//
// Примеры использования:
//
// 1. Активные бронирования сотрудника в течение дня (для резолвера конфликтов):
//
//	filter := domain.EmployeeBookingsFilter{TenantID: 1, EmployeeID: 10, From: &dayStart, To: &dayEnd}
//
// 2. Вся история сотрудника, включая отменённые:
//
//	filter := domain.EmployeeBookingsFilter{TenantID: 1, EmployeeID: 10, IncludeInactive: true}
//
// Внутри транзакции активные бронирования выбираются с FOR UPDATE.
func (r *Repository) ListForEmployee(ctx context.Context, filter domain.EmployeeBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"tenant_id": filter.TenantID, "employee_id": filter.EmployeeID})

	// Фильтрация по периоду (пересечение с защищённым интервалом)
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"protected_end": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"protected_start": *filter.To})
	}

	if !filter.IncludeInactive {
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	selectBuilder = selectBuilder.OrderBy("start_time ASC", "id ASC")

	if dbmetrics.IsInTransaction(ctx) && !filter.IncludeInactive {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForEmployee - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		if pgerr.IsSerializationFailure(err) {
			return nil, fmt.Errorf("%w: ListForEmployee - lock rows: %v", ErrSlotNotAvailable, err)
		}
		return nil, fmt.Errorf("%w: ListForEmployee - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// Cancel отменяет активное бронирование с указанием причины.
// Возвращает ErrCannotCancel, если бронирование уже не в статусе pending/confirmed.
func (r *Repository) Cancel(ctx context.Context, tenantID, employeeID, id int64, reason *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":          id,
			"tenant_id":   tenantID,
			"employee_id": employeeID,
			"status":      []string{string(domain.StatusPending), string(domain.StatusConfirmed)},
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCannotCancel
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking                   domain.Booking
		startTime, endTime        time.Time
		bufferBefore, bufferAfter int
		status                    string
		createdAt, updatedAt      sql.NullTime
		cancelledAt               sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.TenantID,
		&booking.EmployeeID,
		&booking.ServiceID,
		&booking.CustomerID,
		&startTime,
		&endTime,
		&bufferBefore,
		&bufferAfter,
		&status,
		&booking.Notes,
		&booking.CancellationReason,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.Interval, err = domain.NewInterval(startTime, endTime)
	if err != nil {
		return nil, err
	}
	booking.Status, err = domain.ParseBookingStatus(status)
	if err != nil {
		return nil, err
	}

	booking.BufferBefore = time.Duration(bufferBefore) * time.Minute
	booking.BufferAfter = time.Duration(bufferAfter) * time.Minute
	if cancelledAt.Valid {
		t := cancelledAt.Time
		booking.CancelledAt = &t
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
