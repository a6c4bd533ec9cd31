package leave

import (
	"context"
	"time"
)

// LeaveTypeRepository - interface for leave_types table
type LeaveTypeRepository interface {
	Create(ctx context.Context, leaveType LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string) (LeaveType, error)
	List(ctx context.Context) ([]LeaveType, error)
	Update(ctx context.Context, leaveType LeaveType) error
}

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter Filter) ([]LeaveRequest, int64, error)
	CheckOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error)

	// UpdateStatusGuarded writes the request's new status and stage/
	// rejection metadata only while the stored status still equals
	// expected. Returns ErrConflict when another writer got there first,
	// which is how concurrent same-stage approvals resolve to exactly one
	// winner.
	UpdateStatusGuarded(ctx context.Context, request LeaveRequest, expected RequestStatus) error
}
