package policy

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

var policyColumns = []string{
	"id",
	"tenant_id",
	"employee_id",
	"slot_step_minutes",
	"advance_booking_days",
	"min_booking_notice_minutes",
	"max_horizon_days",
	"created_at",
	"updated_at",
}

// Repository репозиторий политик бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория политик
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByTenantAndEmployee получает политику конкретного уровня:
// employeeID == nil - политика всего тенанта, иначе - персональная политика сотрудника
func (r *Repository) GetByTenantAndEmployee(ctx context.Context, tenantID int64, employeeID *int64) (*domain.BookingPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(policyColumns...).
		From("booking_policies").
		Where(squirrel.Eq{"tenant_id": tenantID})

	// Фильтрация по employee_id (NULL или конкретное значение)
	if employeeID == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"employee_id": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"employee_id": *employeeID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenantAndEmployee - build select query: %v", ErrBuildQuery, err)
	}

	policy, err := scanPolicy(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenantAndEmployee - scan policy: %v", ErrScanRow, err)
	}

	return policy, nil
}

// GetWithHierarchy получает политику с учетом иерархии приоритетов
// 1. Персональная политика сотрудника (tenantID, employeeID)
// 2. Политика тенанта (tenantID, NULL)
//
// Если политика не найдена ни на одном уровне, возвращает ErrPolicyNotFound
func (r *Repository) GetWithHierarchy(ctx context.Context, tenantID, employeeID int64) (*domain.BookingPolicy, error) {
	policy, err := r.GetByTenantAndEmployee(ctx, tenantID, &employeeID)
	if err == nil {
		return policy, nil
	}
	if err != ErrPolicyNotFound {
		return nil, fmt.Errorf("%w: GetWithHierarchy - level 1 (employee): %v", ErrExecQuery, err)
	}

	policy, err = r.GetByTenantAndEmployee(ctx, tenantID, nil)
	if err == nil {
		return policy, nil
	}
	if err != ErrPolicyNotFound {
		return nil, fmt.Errorf("%w: GetWithHierarchy - level 2 (tenant): %v", ErrExecQuery, err)
	}

	return nil, ErrPolicyNotFound
}

// ListByTenant получает все политики тенанта (политика тенанта первой)
func (r *Repository) ListByTenant(ctx context.Context, tenantID int64) ([]*domain.BookingPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(policyColumns...).
		From("booking_policies").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("employee_id ASC NULLS FIRST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByTenant - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTenant - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	policies := make([]*domain.BookingPolicy, 0)
	for rows.Next() {
		policy, err := scanPolicy(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByTenant - scan row: %v", ErrScanRow, err)
		}
		policies = append(policies, policy)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByTenant - rows error: %v", ErrScanRow, err)
	}

	return policies, nil
}

// Upsert создает или перезаписывает политику уровня (tenant_id, employee_id)
func (r *Repository) Upsert(ctx context.Context, policy *domain.BookingPolicy) (*domain.BookingPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_policies").
		Columns(
			"tenant_id",
			"employee_id",
			"slot_step_minutes",
			"advance_booking_days",
			"min_booking_notice_minutes",
			"max_horizon_days",
		).
		Values(
			policy.TenantID,
			policy.EmployeeID,
			policy.SlotStepMinutes,
			policy.AdvanceBookingDays,
			policy.MinBookingNoticeMinutes,
			policy.MaxHorizonDays,
		).
		Suffix(`ON CONFLICT (tenant_id, (COALESCE(employee_id, 0))) DO UPDATE SET
			slot_step_minutes = EXCLUDED.slot_step_minutes,
			advance_booking_days = EXCLUDED.advance_booking_days,
			min_booking_notice_minutes = EXCLUDED.min_booking_notice_minutes,
			max_horizon_days = EXCLUDED.max_horizon_days,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&policy.ID, &policy.CreatedAt, &policy.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute: %v", ErrExecQuery, err)
	}

	return policy, nil
}

// Delete удаляет политику уровня (tenant_id, employee_id)
func (r *Repository) Delete(ctx context.Context, tenantID int64, employeeID *int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteBuilder := psqlbuilder.Delete("booking_policies").
		Where(squirrel.Eq{"tenant_id": tenantID})

	if employeeID == nil {
		deleteBuilder = deleteBuilder.Where(squirrel.Eq{"employee_id": nil})
	} else {
		deleteBuilder = deleteBuilder.Where(squirrel.Eq{"employee_id": *employeeID})
	}

	query, args, err := deleteBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPolicyNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPolicy(row rowScanner) (*domain.BookingPolicy, error) {
	var (
		policy               domain.BookingPolicy
		employeeID           sql.NullInt64
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&policy.ID,
		&policy.TenantID,
		&employeeID,
		&policy.SlotStepMinutes,
		&policy.AdvanceBookingDays,
		&policy.MinBookingNoticeMinutes,
		&policy.MaxHorizonDays,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if employeeID.Valid {
		id := employeeID.Int64
		policy.EmployeeID = &id
	}
	policy.CreatedAt = createdAt.Time
	policy.UpdatedAt = updatedAt.Time

	return &policy, nil
}
