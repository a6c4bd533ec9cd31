package recovery

import (
	"context"

	"github.com/shopspring/decimal"
)

// PeriodRepository persists recovery periods.
type PeriodRepository interface {
	Create(ctx context.Context, period *Period) error
	GetByID(ctx context.Context, id string) (*Period, error)
	List(ctx context.Context) ([]Period, error)

	// Remaining returns the period's debt minus the sum of its
	// non-day-off declarations.
	Remaining(ctx context.Context, periodID string) (decimal.Decimal, error)
}

// DeclarationRepository persists declarations. Declare and Update must hold
// the period's remaining-hours invariant atomically: two declarations racing
// for the last hours of a period cannot both win.
type DeclarationRepository interface {
	Declare(ctx context.Context, decl *Declaration) error
	Update(ctx context.Context, decl *Declaration) error
	GetDeclarationByID(ctx context.Context, id string) (*Declaration, error)
	ListByPeriod(ctx context.Context, periodID string) ([]Declaration, error)
	ListByPeriodAndDate(ctx context.Context, periodID string, date string) ([]Declaration, error)
}
