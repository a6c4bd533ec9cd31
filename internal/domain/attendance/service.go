package attendance

import "context"

// Service defines business logic for attendance records: manual
// declarations and admin edits, anomaly resolution and read projections.
type Service interface {
	// Declare creates or edits an attendance record, recomputing worked
	// minutes and re-running anomaly detection.
	Declare(ctx context.Context, req DeclareRequest) (RecordResponse, error)

	// Resolve corrects an anomalous record. The response reports whether
	// the corrected values re-triggered a detection rule.
	Resolve(ctx context.Context, req ResolveRequest) (ResolveResponse, error)

	Get(ctx context.Context, id string) (RecordResponse, error)
	List(ctx context.Context, filter Filter) (ListResponse, error)
}
