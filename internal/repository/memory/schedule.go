package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/atlashr/timecore-backend-go/internal/domain/schedule"
)

type WorkScheduleRepository struct {
	mu        sync.RWMutex
	schedules map[string]schedule.WorkSchedule
}

func NewWorkScheduleRepository() *WorkScheduleRepository {
	return &WorkScheduleRepository{
		schedules: make(map[string]schedule.WorkSchedule),
	}
}

func (r *WorkScheduleRepository) Create(_ context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ws.ID == "" {
		ws.ID = newID()
	}
	now := time.Now()
	ws.CreatedAt, ws.UpdatedAt = now, now
	r.schedules[ws.ID] = ws
	return ws, nil
}

func (r *WorkScheduleRepository) GetByID(_ context.Context, id string) (schedule.WorkSchedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ws, ok := r.schedules[id]
	if !ok {
		return schedule.WorkSchedule{}, schedule.ErrWorkScheduleNotFound
	}
	return ws, nil
}

func (r *WorkScheduleRepository) GetActive(_ context.Context) (schedule.WorkSchedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ws := range r.schedules {
		if ws.IsActive {
			return ws, nil
		}
	}
	return schedule.WorkSchedule{}, schedule.ErrNoActiveSchedule
}

func (r *WorkScheduleRepository) List(_ context.Context) ([]schedule.WorkSchedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]schedule.WorkSchedule, 0, len(r.schedules))
	for _, ws := range r.schedules {
		result = append(result, ws)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *WorkScheduleRepository) Update(_ context.Context, ws schedule.WorkSchedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.schedules[ws.ID]; !ok {
		return schedule.ErrWorkScheduleNotFound
	}
	r.schedules[ws.ID] = ws
	return nil
}

func (r *WorkScheduleRepository) Activate(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	target, ok := r.schedules[id]
	if !ok {
		return schedule.ErrWorkScheduleNotFound
	}

	for key, ws := range r.schedules {
		if ws.IsActive {
			ws.IsActive = false
			r.schedules[key] = ws
		}
	}
	target.IsActive = true
	r.schedules[id] = target
	return nil
}
