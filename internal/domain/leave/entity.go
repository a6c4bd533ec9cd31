package leave

import (
	"time"
)

type RequestStatus string

const (
	StatusPending    RequestStatus = "pending"
	StatusApprovedN1 RequestStatus = "approved_n1"
	StatusApprovedN2 RequestStatus = "approved_n2"
	StatusApprovedHR RequestStatus = "approved_hr"
	StatusApproved   RequestStatus = "approved"
	StatusRejected   RequestStatus = "rejected"
)

// IsTerminal reports whether no further transition is permitted.
func (s RequestStatus) IsTerminal() bool {
	return s == StatusApprovedHR || s == StatusApproved || s == StatusRejected
}

// Stage identifies one approval level: direct manager, manager's manager,
// Human Resources.
type Stage string

const (
	StageN1 Stage = "n1"
	StageN2 Stage = "n2"
	StageHR Stage = "hr"
)

// LeaveType is the policy a request is created under.
type LeaveType struct {
	ID   string
	Name string
	Code *string

	IsActive     bool
	AllowHalfDay bool

	MinDaysPerRequest float64
	MaxDaysPerRequest float64

	// ApprovalStages overrides the engine default when between 1 and 3;
	// zero means "use the configured default".
	ApprovalStages int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StageApproval is the per-stage audit record. Once written it is never
// cleared, even when the request is later rejected.
type StageApproval struct {
	ApproverID string
	ApprovedAt time.Time
	Comment    string
}

// LeaveRequest advances strictly forward through the approval chain or
// terminates in rejected; it never regresses.
type LeaveRequest struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string

	StartDate    time.Time
	EndDate      time.Time
	StartHalfDay bool
	EndHalfDay   bool
	TotalDays    float64

	Reason string
	Status RequestStatus

	N1 *StageApproval
	N2 *StageApproval
	HR *StageApproval

	RejectedBy      *string
	RejectedAt      *time.Time
	RejectionReason *string

	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	LeaveTypeName *string
	EmployeeName  *string
}

// StageRecord returns the audit slot for a stage.
func (r *LeaveRequest) StageRecord(stage Stage) **StageApproval {
	switch stage {
	case StageN1:
		return &r.N1
	case StageN2:
		return &r.N2
	default:
		return &r.HR
	}
}

// TotalDays computes the inclusive day count between start and end, minus
// 0.5 per half-day boundary flag, clamped at zero.
func TotalDays(start, end time.Time, startHalf, endHalf bool) float64 {
	if end.Before(start) {
		return 0
	}
	days := float64(int(end.Sub(start).Hours()/24)) + 1
	if startHalf {
		days -= 0.5
	}
	if endHalf {
		days -= 0.5
	}
	if days < 0 {
		return 0
	}
	return days
}
