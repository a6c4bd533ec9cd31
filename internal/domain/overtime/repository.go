package overtime

import "context"

// Repository - interface for overtime_requests table
type Repository interface {
	Create(ctx context.Context, request OvertimeRequest) (OvertimeRequest, error)
	GetByID(ctx context.Context, id string) (OvertimeRequest, error)
	List(ctx context.Context, filter Filter) ([]OvertimeRequest, int64, error)

	// UpdateStatusGuarded writes the decision only while the stored status
	// is still pending; returns ErrConflict otherwise.
	UpdateStatusGuarded(ctx context.Context, request OvertimeRequest, expected Status) error
}
