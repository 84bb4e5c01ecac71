package absence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/pgerr"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

var absenceColumns = []string{
	"id",
	"tenant_id",
	"employee_id",
	"start_time",
	"end_time",
	"reason",
	"created_at",
	"updated_at",
}

// Repository репозиторий отсутствий сотрудников
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отсутствий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет отсутствие. ID генерируется вызывающим.
func (r *Repository) Create(ctx context.Context, absence *domain.Absence) (*domain.Absence, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("absences").
		Columns("id", "tenant_id", "employee_id", "start_time", "end_time", "reason").
		Values(
			absence.ID,
			absence.TenantID,
			absence.EmployeeID,
			absence.Interval.Start,
			absence.Interval.End,
			absence.Reason,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&absence.CreatedAt, &absence.UpdatedAt)
	if err != nil {
		if pgerr.IsExclusionViolation(err) {
			return nil, fmt.Errorf("%w: Create - %s: %v", ErrOverlap, absence.Interval, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return absence, nil
}

// GetByID получает отсутствие сотрудника по ID (внутри транзакции - с блокировкой строки)
func (r *Repository) GetByID(ctx context.Context, tenantID, employeeID int64, id uuid.UUID) (*domain.Absence, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(absenceColumns...).
		From("absences").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID, "employee_id": employeeID})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	absence, err := scanAbsence(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAbsenceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan absence: %v", ErrScanRow, err)
	}

	return absence, nil
}

// ListForEmployee получает отсутствия сотрудника, упорядоченные по началу.
// Фильтр включительный: end_time >= from AND start_time <= to.
func (r *Repository) ListForEmployee(ctx context.Context, tenantID, employeeID int64, filter *domain.AbsenceRangeFilter) ([]*domain.Absence, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(absenceColumns...).
		From("absences").
		Where(squirrel.Eq{"tenant_id": tenantID, "employee_id": employeeID})

	if filter != nil {
		selectBuilder = selectBuilder.
			Where(squirrel.GtOrEq{"end_time": filter.From}).
			Where(squirrel.LtOrEq{"start_time": filter.To})
	}

	query, args, err := selectBuilder.OrderBy("start_time ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForEmployee - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForEmployee - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	absences := make([]*domain.Absence, 0)
	for rows.Next() {
		absence, err := scanAbsence(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListForEmployee - scan row: %v", ErrScanRow, err)
		}
		absences = append(absences, absence)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListForEmployee - rows error: %v", ErrScanRow, err)
	}

	return absences, nil
}

// Update перезаписывает интервал и причину отсутствия
func (r *Repository) Update(ctx context.Context, absence *domain.Absence) (*domain.Absence, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("absences").
		Set("start_time", absence.Interval.Start).
		Set("end_time", absence.Interval.End).
		Set("reason", absence.Reason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": absence.ID, "tenant_id": absence.TenantID, "employee_id": absence.EmployeeID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt time.Time
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrAbsenceNotFound
	}
	if err != nil {
		if pgerr.IsExclusionViolation(err) {
			return nil, fmt.Errorf("%w: Update - %s: %v", ErrOverlap, absence.Interval, err)
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	absence.UpdatedAt = updatedAt
	return absence, nil
}

// Delete удаляет отсутствие
func (r *Repository) Delete(ctx context.Context, tenantID, employeeID int64, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("absences").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID, "employee_id": employeeID}).
		ToSql()

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
		return ErrAbsenceNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAbsence(row rowScanner) (*domain.Absence, error) {
	var (
		absence            domain.Absence
		startTime, endTime time.Time
	)

	err := row.Scan(
		&absence.ID,
		&absence.TenantID,
		&absence.EmployeeID,
		&startTime,
		&endTime,
		&absence.Reason,
		&absence.CreatedAt,
		&absence.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	absence.Interval, err = domain.NewInterval(startTime, endTime)
	if err != nil {
		return nil, err
	}

	return &absence, nil
}
