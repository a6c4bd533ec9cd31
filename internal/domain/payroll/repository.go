package payroll

import "context"

type PrimeTypeRepository interface {
	Create(ctx context.Context, pt *PrimeType) error
	GetByCode(ctx context.Context, code string) (*PrimeType, error)
	List(ctx context.Context) ([]PrimeType, error)
}

type EmployeePrimeRepository interface {
	Create(ctx context.Context, ep *EmployeePrime) error
	GetByID(ctx context.Context, id string) (*EmployeePrime, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]EmployeePrime, error)
	SetActive(ctx context.Context, id string, active bool) error
}
