package leave

import "context"

// Service drives a leave request through the approval chain and manages
// the leave type catalog requests are created under.
type Service interface {
	CreateType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	ListTypes(ctx context.Context) ([]LeaveTypeResponse, error)

	Create(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)

	// Approve advances the request one stage. The stage must match the
	// request's current position in the chain.
	Approve(ctx context.Context, req ApproveRequest) (LeaveRequestResponse, error)

	// Reject terminates the request from any non-terminal state. Prior
	// stage approvals are kept as audit history.
	Reject(ctx context.Context, req RejectRequest) (LeaveRequestResponse, error)

	Get(ctx context.Context, id string) (LeaveRequestResponse, error)
	List(ctx context.Context, filter Filter) (ListLeaveRequestsResponse, error)
}
