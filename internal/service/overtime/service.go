package overtime

import (
	"context"
	"time"

	"github.com/atlashr/timecore-backend-go/internal/domain/overtime"
)

type OvertimeServiceImpl struct {
	overtime.Repository
}

func NewOvertimeService(repo overtime.Repository) overtime.Service {
	return &OvertimeServiceImpl{Repository: repo}
}

// Create implements overtime.Service.
func (s *OvertimeServiceImpl) Create(ctx context.Context, req overtime.CreateOvertimeRequestRequest) (overtime.OvertimeRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	startClock, _ := time.Parse("15:04", req.StartTime)
	endClock, _ := time.Parse("15:04", req.EndTime)

	start := time.Date(date.Year(), date.Month(), date.Day(), startClock.Hour(), startClock.Minute(), 0, 0, time.UTC)
	end := time.Date(date.Year(), date.Month(), date.Day(), endClock.Hour(), endClock.Minute(), 0, 0, time.UTC)

	priority := overtime.Priority(req.Priority)
	if req.Priority == "" {
		priority = overtime.PriorityNormal
	}

	request := overtime.OvertimeRequest{
		EmployeeID:     req.EmployeeID,
		Date:           date,
		StartTime:      start,
		EndTime:        end,
		EstimatedHours: overtime.EstimateHours(start, end),
		Reason:         req.Reason,
		Priority:       priority,
		Status:         overtime.StatusPending,
		SubmittedAt:    time.Now(),
	}

	request, err := s.Repository.Create(ctx, request)
	if err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}
	return toOvertimeResponse(request), nil
}

// decide moves a pending request into a terminal status. EstimatedHours is
// never recomputed here.
func (s *OvertimeServiceImpl) decide(ctx context.Context, req overtime.DecideRequest, to overtime.Status) (overtime.OvertimeRequestResponse, error) {
	request, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}
	if request.Status.IsTerminal() {
		return overtime.OvertimeRequestResponse{}, &overtime.StateTransitionError{Actual: request.Status}
	}

	now := time.Now()
	request.Status = to
	request.DecidedBy = &req.ActorID
	request.DecidedAt = &now
	request.DecisionComment = nil
	if req.Comment != "" {
		request.DecisionComment = &req.Comment
	}

	if err := s.Repository.UpdateStatusGuarded(ctx, request, overtime.StatusPending); err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}
	return toOvertimeResponse(request), nil
}

// Approve implements overtime.Service.
func (s *OvertimeServiceImpl) Approve(ctx context.Context, req overtime.DecideRequest) (overtime.OvertimeRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}
	return s.decide(ctx, req, overtime.StatusApproved)
}

// Reject implements overtime.Service.
func (s *OvertimeServiceImpl) Reject(ctx context.Context, req overtime.DecideRequest) (overtime.OvertimeRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}
	return s.decide(ctx, req, overtime.StatusRejected)
}

// Cancel implements overtime.Service.
func (s *OvertimeServiceImpl) Cancel(ctx context.Context, req overtime.DecideRequest) (overtime.OvertimeRequestResponse, error) {
	if err := req.ValidateCancel(); err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}
	return s.decide(ctx, req, overtime.StatusCancelled)
}

// Get implements overtime.Service.
func (s *OvertimeServiceImpl) Get(ctx context.Context, id string) (overtime.OvertimeRequestResponse, error) {
	request, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}
	return toOvertimeResponse(request), nil
}

// List implements overtime.Service.
func (s *OvertimeServiceImpl) List(ctx context.Context, filter overtime.Filter) (overtime.ListOvertimeRequestsResponse, error) {
	requests, total, err := s.Repository.List(ctx, filter)
	if err != nil {
		return overtime.ListOvertimeRequestsResponse{}, err
	}

	resp := overtime.ListOvertimeRequestsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Requests:   make([]overtime.OvertimeRequestResponse, 0, len(requests)),
	}
	for _, r := range requests {
		resp.Requests = append(resp.Requests, toOvertimeResponse(r))
	}
	return resp, nil
}

func toOvertimeResponse(r overtime.OvertimeRequest) overtime.OvertimeRequestResponse {
	resp := overtime.OvertimeRequestResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		EmployeeName:    r.EmployeeName,
		Date:            r.Date.Format("2006-01-02"),
		StartTime:       r.StartTime.Format("15:04"),
		EndTime:         r.EndTime.Format("15:04"),
		EstimatedHours:  r.EstimatedHours,
		Reason:          r.Reason,
		Priority:        string(r.Priority),
		Status:          string(r.Status),
		DecidedBy:       r.DecidedBy,
		DecisionComment: r.DecisionComment,
		SubmittedAt:     r.SubmittedAt.Format(time.RFC3339),
	}
	if r.DecidedAt != nil {
		at := r.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &at
	}
	return resp
}
