package workinghours

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий рабочих часов сотрудников
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает сохранённую неделю сотрудника
func (r *Repository) Get(ctx context.Context, tenantID, employeeID int64) (domain.WorkingWeek, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("week").
		From("working_hours").
		Where(squirrel.Eq{"tenant_id": tenantID, "employee_id": employeeID}).
		ToSql()

	if err != nil {
		return domain.WorkingWeek{}, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var raw []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&raw)
	if err == sql.ErrNoRows {
		return domain.WorkingWeek{}, ErrWeekNotFound
	}
	if err != nil {
		return domain.WorkingWeek{}, fmt.Errorf("%w: Get - scan week: %v", ErrScanRow, err)
	}

	week, err := decodeWeek(raw)
	if err != nil {
		return domain.WorkingWeek{}, fmt.Errorf("%w: Get - decode week employee_id=%d: %v", ErrEncode, employeeID, err)
	}

	return week, nil
}

// Upsert заменяет неделю сотрудника целиком одним запросом
func (r *Repository) Upsert(ctx context.Context, tenantID, employeeID int64, week domain.WorkingWeek) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	raw, err := encodeWeek(week)
	if err != nil {
		return fmt.Errorf("%w: Upsert - encode week: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert("working_hours").
		Columns("tenant_id", "employee_id", "week").
		Values(tenantID, employeeID, string(raw)).
		Suffix("ON CONFLICT (tenant_id, employee_id) DO UPDATE SET week = EXCLUDED.week, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute: %v", ErrExecQuery, err)
	}

	return nil
}
