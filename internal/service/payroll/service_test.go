package payroll

import (
	"context"
	"testing"

	"github.com/atlashr/timecore-backend-go/internal/domain/payroll"
	"github.com/atlashr/timecore-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) payroll.Service {
	t.Helper()

	svc := NewPayrollService(memory.NewPrimeTypeRepository(), memory.NewEmployeePrimeRepository())

	_, err := svc.CreatePrimeType(context.Background(), &payroll.CreatePrimeTypeRequest{
		Code:             "transport",
		Label:            "Transport allowance",
		Category:         "exoneree",
		ExemptionCeiling: "500",
		ExemptionUnit:    "month",
	})
	require.NoError(t, err)
	_, err = svc.CreatePrimeType(context.Background(), &payroll.CreatePrimeTypeRequest{
		Code:     "performance",
		Label:    "Performance bonus",
		Category: "imposable",
	})
	require.NoError(t, err)
	return svc
}

func TestAssignPrimeRequiresKnownType(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AssignPrime(context.Background(), &payroll.AssignPrimeRequest{
		EmployeeID:    "emp-1",
		PrimeTypeCode: "unknown",
		Amount:        "100",
		Frequency:     "monthly",
	})
	assert.ErrorIs(t, err, payroll.ErrPrimeTypeNotFound)
}

func TestDuplicatePrimeCode(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreatePrimeType(context.Background(), &payroll.CreatePrimeTypeRequest{
		Code:             "transport",
		Label:            "Duplicate",
		Category:         "exoneree",
		ExemptionCeiling: "100",
		ExemptionUnit:    "month",
	})
	assert.ErrorIs(t, err, payroll.ErrDuplicatePrimeCode)
}

func TestExemptionStatement(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.AssignPrime(ctx, &payroll.AssignPrimeRequest{
		EmployeeID:    "emp-1",
		PrimeTypeCode: "transport",
		Amount:        "700",
		Frequency:     "monthly",
	})
	require.NoError(t, err)
	_, err = svc.AssignPrime(ctx, &payroll.AssignPrimeRequest{
		EmployeeID:    "emp-1",
		PrimeTypeCode: "performance",
		Amount:        "1000",
		Frequency:     "monthly",
	})
	require.NoError(t, err)

	st, err := svc.ExemptionStatement(ctx, "emp-1", decimal.NewFromInt(3000))
	require.NoError(t, err)

	require.Len(t, st.Lines, 2)
	assert.Equal(t, "500", st.TotalExempt)
	assert.Equal(t, "1200", st.TotalTaxable)
}
