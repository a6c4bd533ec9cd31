package schedule

import "context"

// WorkScheduleRepository - interface for work_schedules table
type WorkScheduleRepository interface {
	Create(ctx context.Context, ws WorkSchedule) (WorkSchedule, error)
	GetByID(ctx context.Context, id string) (WorkSchedule, error)

	// GetActive returns the single active schedule.
	GetActive(ctx context.Context) (WorkSchedule, error)

	List(ctx context.Context) ([]WorkSchedule, error)
	Update(ctx context.Context, ws WorkSchedule) error

	// Activate makes the schedule the single active one: the previous
	// active row is deactivated and the target activated in one
	// transaction, so the one-active invariant holds under concurrency.
	Activate(ctx context.Context, id string) error
}
