package schedule

import "context"

// WorkScheduleService defines schedule administration operations.
type WorkScheduleService interface {
	Create(ctx context.Context, req CreateWorkScheduleRequest) (WorkScheduleResponse, error)
	Get(ctx context.Context, id string) (WorkScheduleResponse, error)
	List(ctx context.Context) ([]WorkScheduleResponse, error)

	// Activate makes the schedule the single active one.
	Activate(ctx context.Context, id string) (WorkScheduleResponse, error)
}
