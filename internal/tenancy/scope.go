package tenancy

import "fmt"

// Scope подтверждённая пара (тенант, сотрудник).
// Поля не экспортируются: значение можно получить только через Authorizer,
// поэтому сервисы, принимающие Scope, не работают с непроверенными идентификаторами.
type Scope struct {
	tenantID   int64
	employeeID int64
}

// TenantID идентификатор тенанта
func (s Scope) TenantID() int64 {
	return s.tenantID
}

// EmployeeID идентификатор сотрудника
func (s Scope) EmployeeID() int64 {
	return s.employeeID
}

// IsZero возвращает true для незаполненного Scope (значение по умолчанию)
func (s Scope) IsZero() bool {
	return s.tenantID == 0 && s.employeeID == 0
}

func (s Scope) String() string {
	return fmt.Sprintf("tenant=%d employee=%d", s.tenantID, s.employeeID)
}
