package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/atlashr/timecore-backend-go/internal/domain/leave"
)

type LeaveTypeRepository struct {
	mu    sync.RWMutex
	types map[string]leave.LeaveType
}

func NewLeaveTypeRepository() *LeaveTypeRepository {
	return &LeaveTypeRepository{
		types: make(map[string]leave.LeaveType),
	}
}

func (r *LeaveTypeRepository) Create(_ context.Context, leaveType leave.LeaveType) (leave.LeaveType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if leaveType.ID == "" {
		leaveType.ID = newID()
	}
	now := time.Now()
	leaveType.CreatedAt, leaveType.UpdatedAt = now, now
	r.types[leaveType.ID] = leaveType
	return leaveType, nil
}

func (r *LeaveTypeRepository) GetByID(_ context.Context, id string) (leave.LeaveType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lt, ok := r.types[id]
	if !ok {
		return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
	}
	return lt, nil
}

func (r *LeaveTypeRepository) List(_ context.Context) ([]leave.LeaveType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]leave.LeaveType, 0, len(r.types))
	for _, lt := range r.types {
		result = append(result, lt)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *LeaveTypeRepository) Update(_ context.Context, leaveType leave.LeaveType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.types[leaveType.ID]; !ok {
		return leave.ErrLeaveTypeNotFound
	}
	r.types[leaveType.ID] = leaveType
	return nil
}

type LeaveRequestRepository struct {
	mu       sync.RWMutex
	requests map[string]leave.LeaveRequest
}

func NewLeaveRequestRepository() *LeaveRequestRepository {
	return &LeaveRequestRepository{
		requests: make(map[string]leave.LeaveRequest),
	}
}

func (r *LeaveRequestRepository) Create(_ context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
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

func (r *LeaveRequestRepository) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (r *LeaveRequestRepository) List(_ context.Context, filter leave.Filter) ([]leave.LeaveRequest, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []leave.LeaveRequest
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

func (r *LeaveRequestRepository) CheckOverlapping(_ context.Context, employeeID string, start, end time.Time) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, req := range r.requests {
		if req.EmployeeID != employeeID || req.Status == leave.StatusRejected {
			continue
		}
		if !start.After(req.EndDate) && !end.Before(req.StartDate) {
			return true, nil
		}
	}
	return false, nil
}

func (r *LeaveRequestRepository) UpdateStatusGuarded(_ context.Context, request leave.LeaveRequest, expected leave.RequestStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.requests[request.ID]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	if stored.Status != expected {
		return leave.ErrConflict
	}

	r.requests[request.ID] = request
	return nil
}
