package recovery

import "context"

type Service interface {
	CreatePeriod(ctx context.Context, req *CreatePeriodRequest) (*PeriodResponse, error)
	GetPeriod(ctx context.Context, id string) (*PeriodResponse, error)
	ListPeriods(ctx context.Context) ([]PeriodResponse, error)

	Declare(ctx context.Context, req *DeclareRequest) (*DeclarationResponse, error)
	UpdateDeclaration(ctx context.Context, req *UpdateDeclarationRequest) (*DeclarationResponse, error)
	ListDeclarations(ctx context.Context, periodID string) ([]DeclarationResponse, error)
}
