package delete_policy

import "context"

type PolicyService interface {
	Delete(ctx context.Context, tenantID int64, employeeID *int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
