package leave

import (
	"context"
	"time"

	"github.com/atlashr/timecore-backend-go/internal/config"
	"github.com/atlashr/timecore-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leave.LeaveTypeRepository
	leave.LeaveRequestRepository
	engine config.EngineConfig
}

func NewLeaveService(
	typeRepo leave.LeaveTypeRepository,
	requestRepo leave.LeaveRequestRepository,
	engine config.EngineConfig,
) leave.Service {
	return &LeaveServiceImpl{
		LeaveTypeRepository:    typeRepo,
		LeaveRequestRepository: requestRepo,
		engine:                 engine,
	}
}

func (s *LeaveServiceImpl) chainFor(leaveType leave.LeaveType) leave.Chain {
	stages := leaveType.ApprovalStages
	if stages == 0 {
		stages = s.engine.LeaveApprovalStages
	}
	return leave.NewChain(stages)
}

// CreateType implements leave.Service.
func (s *LeaveServiceImpl) CreateType(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	created, err := s.LeaveTypeRepository.Create(ctx, leave.LeaveType{
		Name:              req.Name,
		Code:              req.Code,
		IsActive:          true,
		AllowHalfDay:      req.AllowHalfDay,
		MinDaysPerRequest: req.MinDaysPerRequest,
		MaxDaysPerRequest: req.MaxDaysPerRequest,
		ApprovalStages:    req.ApprovalStages,
	})
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}
	return toLeaveTypeResponse(created), nil
}

// ListTypes implements leave.Service.
func (s *LeaveServiceImpl) ListTypes(ctx context.Context) ([]leave.LeaveTypeResponse, error) {
	types, err := s.LeaveTypeRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]leave.LeaveTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, toLeaveTypeResponse(t))
	}
	return out, nil
}

func toLeaveTypeResponse(t leave.LeaveType) leave.LeaveTypeResponse {
	return leave.LeaveTypeResponse{
		ID:                t.ID,
		Name:              t.Name,
		Code:              t.Code,
		IsActive:          t.IsActive,
		AllowHalfDay:      t.AllowHalfDay,
		MinDaysPerRequest: t.MinDaysPerRequest,
		MaxDaysPerRequest: t.MaxDaysPerRequest,
		ApprovalStages:    t.ApprovalStages,
	}
}

func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	leaveType, err := s.LeaveTypeRepository.GetByID(ctx, req.LeaveTypeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if !leaveType.IsActive {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveTypeInactive
	}
	if (req.StartHalfDay || req.EndHalfDay) && !leaveType.AllowHalfDay {
		return leave.LeaveRequestResponse{}, leave.ErrHalfDayNotAllowed
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	totalDays := leave.TotalDays(start, end, req.StartHalfDay, req.EndHalfDay)
	if totalDays < leaveType.MinDaysPerRequest ||
		(leaveType.MaxDaysPerRequest > 0 && totalDays > leaveType.MaxDaysPerRequest) {
		return leave.LeaveRequestResponse{}, leave.ErrDaysOutOfBounds
	}

	overlapping, err := s.LeaveRequestRepository.CheckOverlapping(ctx, req.EmployeeID, start, end)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if overlapping {
		return leave.LeaveRequestResponse{}, leave.ErrOverlappingLeave
	}

	request := leave.LeaveRequest{
		EmployeeID:   req.EmployeeID,
		LeaveTypeID:  req.LeaveTypeID,
		StartDate:    start,
		EndDate:      end,
		StartHalfDay: req.StartHalfDay,
		EndHalfDay:   req.EndHalfDay,
		TotalDays:    totalDays,
		Reason:       req.Reason,
		Status:       leave.StatusPending,
		SubmittedAt:  time.Now(),
	}

	request, err = s.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return toLeaveRequestResponse(request), nil
}

// nextStage returns the stage the request is waiting on, or false when the
// request is past every stage.
func nextStage(request leave.LeaveRequest, chain leave.Chain) (leave.Stage, bool) {
	for _, stage := range chain.Stages() {
		expected, err := chain.Expected(stage)
		if err != nil {
			continue
		}
		if request.Status == expected {
			return stage, true
		}
	}
	return "", false
}

// Approve implements leave.Service.
func (s *LeaveServiceImpl) Approve(ctx context.Context, req leave.ApproveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	leaveType, err := s.LeaveTypeRepository.GetByID(ctx, request.LeaveTypeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	chain := s.chainFor(leaveType)

	var stage leave.Stage
	if req.Stage != "" {
		stage = leave.Stage(req.Stage)
		if !chain.Contains(stage) {
			return leave.LeaveRequestResponse{}, &leave.StateTransitionError{
				Attempted: stage,
				Expected:  leave.StatusPending,
				Actual:    request.Status,
			}
		}
	} else {
		var ok bool
		if stage, ok = nextStage(request, chain); !ok {
			return leave.LeaveRequestResponse{}, &leave.StateTransitionError{
				Attempted: leave.StageHR,
				Expected:  leave.StatusPending,
				Actual:    request.Status,
			}
		}
	}

	expected, err := chain.Expected(stage)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if request.Status != expected {
		return leave.LeaveRequestResponse{}, &leave.StateTransitionError{
			Attempted: stage,
			Expected:  expected,
			Actual:    request.Status,
		}
	}

	after, err := chain.After(stage)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	*request.StageRecord(stage) = &leave.StageApproval{
		ApproverID: req.ApproverID,
		ApprovedAt: time.Now(),
		Comment:    req.Comment,
	}
	request.Status = after

	// The repository re-checks the expected status; under a same-stage
	// race exactly one caller wins.
	if err := s.LeaveRequestRepository.UpdateStatusGuarded(ctx, request, expected); err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return toLeaveRequestResponse(request), nil
}

// Reject implements leave.Service.
func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.RejectRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if request.Status.IsTerminal() {
		return leave.LeaveRequestResponse{}, &leave.StateTransitionError{
			Attempted: leave.StageHR,
			Expected:  leave.StatusPending,
			Actual:    request.Status,
		}
	}

	expected := request.Status
	now := time.Now()
	request.Status = leave.StatusRejected
	request.RejectedBy = &req.ApproverID
	request.RejectedAt = &now
	request.RejectionReason = &req.Reason

	if err := s.LeaveRequestRepository.UpdateStatusGuarded(ctx, request, expected); err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return toLeaveRequestResponse(request), nil
}

// Get implements leave.Service.
func (s *LeaveServiceImpl) Get(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return toLeaveRequestResponse(request), nil
}

// List implements leave.Service.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.Filter) (leave.ListLeaveRequestsResponse, error) {
	requests, total, err := s.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveRequestsResponse{}, err
	}

	resp := leave.ListLeaveRequestsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Requests:   make([]leave.LeaveRequestResponse, 0, len(requests)),
	}
	for _, r := range requests {
		resp.Requests = append(resp.Requests, toLeaveRequestResponse(r))
	}
	return resp, nil
}

func toStageResponse(s *leave.StageApproval) *leave.StageApprovalResponse {
	if s == nil {
		return nil
	}
	return &leave.StageApprovalResponse{
		ApproverID: s.ApproverID,
		ApprovedAt: s.ApprovedAt.Format(time.RFC3339),
		Comment:    s.Comment,
	}
}

func toLeaveRequestResponse(r leave.LeaveRequest) leave.LeaveRequestResponse {
	resp := leave.LeaveRequestResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		EmployeeName:  r.EmployeeName,
		LeaveTypeID:   r.LeaveTypeID,
		LeaveTypeName: r.LeaveTypeName,
		StartDate:     r.StartDate.Format("2006-01-02"),
		EndDate:       r.EndDate.Format("2006-01-02"),
		StartHalfDay:  r.StartHalfDay,
		EndHalfDay:    r.EndHalfDay,
		TotalDays:     r.TotalDays,
		Reason:        r.Reason,
		Status:        string(r.Status),

		N1: toStageResponse(r.N1),
		N2: toStageResponse(r.N2),
		HR: toStageResponse(r.HR),

		RejectedBy:      r.RejectedBy,
		RejectionReason: r.RejectionReason,
		SubmittedAt:     r.SubmittedAt.Format(time.RFC3339),
	}
	if r.RejectedAt != nil {
		at := r.RejectedAt.Format(time.RFC3339)
		resp.RejectedAt = &at
	}
	return resp
}
