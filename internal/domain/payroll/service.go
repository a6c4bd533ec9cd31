package payroll

import (
	"context"

	"github.com/shopspring/decimal"
)

type Service interface {
	CreatePrimeType(ctx context.Context, req *CreatePrimeTypeRequest) (*PrimeTypeResponse, error)
	ListPrimeTypes(ctx context.Context) ([]PrimeTypeResponse, error)

	AssignPrime(ctx context.Context, req *AssignPrimeRequest) (*EmployeePrimeResponse, error)
	ListEmployeePrimes(ctx context.Context, employeeID string) ([]EmployeePrimeResponse, error)

	ExemptionStatement(ctx context.Context, employeeID string, referenceSalary decimal.Decimal) (*StatementResponse, error)
}
