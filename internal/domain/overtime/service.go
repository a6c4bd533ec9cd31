package overtime

import "context"

// Service is the single-approver overtime workflow.
type Service interface {
	Create(ctx context.Context, req CreateOvertimeRequestRequest) (OvertimeRequestResponse, error)
	Approve(ctx context.Context, req DecideRequest) (OvertimeRequestResponse, error)
	Reject(ctx context.Context, req DecideRequest) (OvertimeRequestResponse, error)
	Cancel(ctx context.Context, req DecideRequest) (OvertimeRequestResponse, error)
	Get(ctx context.Context, id string) (OvertimeRequestResponse, error)
	List(ctx context.Context, filter Filter) (ListOvertimeRequestsResponse, error)
}
