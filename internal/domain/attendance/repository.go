package attendance

import "context"

// ResolveGuard is the optimistic-concurrency precondition for anomaly
// resolution: the write only applies while the record still carries the
// same anomaly flag and type that the resolver acted on.
type ResolveGuard struct {
	IsAnomaly   bool
	AnomalyType *AnomalyType
}

// Repository - interface for attendance_records table
type Repository interface {
	Create(ctx context.Context, rec Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (Record, error)
	Update(ctx context.Context, rec Record) error

	// UpdateResolved writes the corrected record only if the guard still
	// matches the stored row; returns ErrConflict otherwise.
	UpdateResolved(ctx context.Context, rec Record, guard ResolveGuard) error

	List(ctx context.Context, filter Filter) ([]Record, int64, error)
}
