package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/memstore"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/policy/models"
	"github.com/m04kA/SMC-AvailabilityService/internal/tenancy/tenancytest"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

func TestService_Hierarchy(t *testing.T) {
	svc := NewService(memstore.NewPolicies(), logger.Nop())
	ctx := context.Background()
	scope := tenancytest.Scope(t, 1, 10)

	// 1. Ничего не сохранено - значения по умолчанию
	p, err := svc.Get(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBookingPolicy(1), p)

	// 2. Политика тенанта
	_, err = svc.Upsert(ctx, &models.UpsertPolicyRequest{TenantID: 1, SlotStepMinutes: ptr.Ptr(15)})
	require.NoError(t, err)

	p, err = svc.Get(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, 15, p.SlotStepMinutes)
	assert.Equal(t, domain.DefaultMaxHorizonDays, p.MaxHorizonDays)

	// 3. Персональная политика сотрудника перекрывает политику тенанта
	_, err = svc.Upsert(ctx, &models.UpsertPolicyRequest{TenantID: 1, EmployeeID: ptr.Ptr(int64(10)), AdvanceBookingDays: ptr.Ptr(7)})
	require.NoError(t, err)

	p, err = svc.Get(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, 7, p.AdvanceBookingDays)
	assert.Equal(t, 0, p.SlotStepMinutes)

	other, err := svc.Get(ctx, tenancytest.Scope(t, 1, 11))
	require.NoError(t, err)
	assert.Equal(t, 15, other.SlotStepMinutes)

	list, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list.Policies, 2)
	assert.Nil(t, list.Policies[0].EmployeeID)

	// 4. После удаления снова действует политика тенанта
	require.NoError(t, svc.Delete(ctx, 1, ptr.Ptr(int64(10))))
	p, err = svc.Get(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, 15, p.SlotStepMinutes)

	require.ErrorIs(t, svc.Delete(ctx, 1, ptr.Ptr(int64(10))), ErrPolicyNotFound)
}

func TestService_Upsert_PartialUpdateKeepsValues(t *testing.T) {
	svc := NewService(memstore.NewPolicies(), logger.Nop())
	ctx := context.Background()

	_, err := svc.Upsert(ctx, &models.UpsertPolicyRequest{TenantID: 1, SlotStepMinutes: ptr.Ptr(20), MinBookingNoticeMinutes: ptr.Ptr(60)})
	require.NoError(t, err)

	resp, err := svc.Upsert(ctx, &models.UpsertPolicyRequest{TenantID: 1, MaxHorizonDays: ptr.Ptr(14)})
	require.NoError(t, err)
	assert.Equal(t, 20, resp.SlotStepMinutes)
	assert.Equal(t, 60, resp.MinBookingNoticeMinutes)
	assert.Equal(t, 14, resp.MaxHorizonDays)
}

func TestService_Upsert_Validation(t *testing.T) {
	svc := NewService(memstore.NewPolicies(), logger.Nop())

	tests := []struct {
		name string
		req  *models.UpsertPolicyRequest
	}{
		{name: "negative step", req: &models.UpsertPolicyRequest{TenantID: 1, SlotStepMinutes: ptr.Ptr(-5)}},
		{name: "step too large", req: &models.UpsertPolicyRequest{TenantID: 1, SlotStepMinutes: ptr.Ptr(481)}},
		{name: "advance too far", req: &models.UpsertPolicyRequest{TenantID: 1, AdvanceBookingDays: ptr.Ptr(366)}},
		{name: "notice too long", req: &models.UpsertPolicyRequest{TenantID: 1, MinBookingNoticeMinutes: ptr.Ptr(10081)}},
		{name: "zero horizon", req: &models.UpsertPolicyRequest{TenantID: 1, MaxHorizonDays: ptr.Ptr(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Upsert(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
