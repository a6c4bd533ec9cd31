package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/atlashr/timecore-backend-go/internal/domain/overtime"
)

type OvertimeRepository struct {
	mu       sync.RWMutex
	requests map[string]overtime.OvertimeRequest
}

func NewOvertimeRepository() *OvertimeRepository {
	return &OvertimeRepository{
		requests: make(map[string]overtime.OvertimeRequest),
	}
}

func (r *OvertimeRepository) Create(_ context.Context, request overtime.OvertimeRequest) (overtime.OvertimeRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if request.ID == "" {
		request.ID = newID()
	}
	now := time.Now()
	request.CreatedAt, request.UpdatedAt = now, now
	r.requests[request.ID] = request
	return request, nil
}

func (r *OvertimeRepository) GetByID(_ context.Context, id string) (overtime.OvertimeRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.requests[id]
	if !ok {
		return overtime.OvertimeRequest{}, overtime.ErrOvertimeRequestNotFound
	}
	return req, nil
}

func (r *OvertimeRepository) List(_ context.Context, filter overtime.Filter) ([]overtime.OvertimeRequest, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []overtime.OvertimeRequest
	for _, req := range r.requests {
		if filter.EmployeeID != "" && req.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && string(req.Status) != filter.Status {
			continue
		}
		matched = append(matched, req)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].SubmittedAt.After(matched[j].SubmittedAt)
	})

	total := int64(len(matched))
	return paginate(matched, filter.Page, filter.Limit), total, nil
}

func (r *OvertimeRepository) UpdateStatusGuarded(_ context.Context, request overtime.OvertimeRequest, expected overtime.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.requests[request.ID]
	if !ok {
		return overtime.ErrOvertimeRequestNotFound
	}
	if stored.Status != expected {
		return overtime.ErrConflict
	}

	r.requests[request.ID] = request
	return nil
}
