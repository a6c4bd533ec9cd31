package overtime

import (
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// IsTerminal reports whether the request left pending. Every non-pending
// status is final; there is no multi-stage chain.
func (s Status) IsTerminal() bool {
	return s != StatusPending
}

type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

// OvertimeRequest is a single-approver request for extra hours on one day.
// EstimatedHours is derived from the time pair at creation and never
// recomputed afterwards.
type OvertimeRequest struct {
	ID         string
	EmployeeID string
	Date       time.Time

	StartTime time.Time
	EndTime   time.Time

	EstimatedHours float64
	Reason         string
	Priority       Priority
	Status         Status

	DecidedBy       *string
	DecidedAt       *time.Time
	DecisionComment *string

	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	EmployeeName *string
}

// EstimateHours derives the immutable hour estimate from a time pair.
func EstimateHours(start, end time.Time) float64 {
	if !end.After(start) {
		return 0
	}
	return end.Sub(start).Hours()
}
