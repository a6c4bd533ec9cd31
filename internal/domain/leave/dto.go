package leave

import (
	"github.com/atlashr/timecore-backend-go/internal/pkg/validator"
)

type CreateLeaveTypeRequest struct {
	Name              string  `json:"name"`
	Code              *string `json:"code"`
	AllowHalfDay      bool    `json:"allow_half_day"`
	MinDaysPerRequest float64 `json:"min_days_per_request"`
	MaxDaysPerRequest float64 `json:"max_days_per_request"`
	ApprovalStages    int     `json:"approval_stages"` // 0 = engine default
}

func (r *CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.MinDaysPerRequest < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "min_days_per_request",
			Message: "min_days_per_request must not be negative",
		})
	}
	if r.MaxDaysPerRequest > 0 && r.MaxDaysPerRequest < r.MinDaysPerRequest {
		errs = append(errs, validator.ValidationError{
			Field:   "max_days_per_request",
			Message: "max_days_per_request must not be below min_days_per_request",
		})
	}
	if r.ApprovalStages < 0 || r.ApprovalStages > 3 {
		errs = append(errs, validator.ValidationError{
			Field:   "approval_stages",
			Message: "approval_stages must be between 0 and 3",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveTypeResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Code              *string `json:"code,omitempty"`
	IsActive          bool    `json:"is_active"`
	AllowHalfDay      bool    `json:"allow_half_day"`
	MinDaysPerRequest float64 `json:"min_days_per_request"`
	MaxDaysPerRequest float64 `json:"max_days_per_request"`
	ApprovalStages    int     `json:"approval_stages"`
}

type CreateLeaveRequestRequest struct {
	EmployeeID   string `json:"employee_id"`
	LeaveTypeID  string `json:"leave_type_id"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	StartHalfDay bool   `json:"start_half_day"`
	EndHalfDay   bool   `json:"end_half_day"`
	Reason       string `json:"reason"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must use the YYYY-MM-DD format",
		})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must use the YYYY-MM-DD format",
		})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApproveRequest struct {
	ID      string `json:"-"`
	Stage   string `json:"stage"` // "n1", "n2", "hr"; defaults to the next pending stage
	Comment string `json:"comment"`

	ApproverID string `json:"-"`
}

func (r *ApproveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "leave request id is required",
		})
	}
	if validator.IsEmpty(r.Comment) {
		errs = append(errs, validator.ValidationError{
			Field:   "comment",
			Message: "comment is required",
		})
	}
	if r.Stage != "" && !validator.IsInSlice(r.Stage, []string{string(StageN1), string(StageN2), string(StageHR)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "stage",
			Message: "stage must be one of n1, n2, hr",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectRequest struct {
	ID     string `json:"-"`
	Reason string `json:"reason"`

	ApproverID string `json:"-"`
}

func (r *RejectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "leave request id is required",
		})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StageApprovalResponse struct {
	ApproverID string `json:"approver_id"`
	ApprovedAt string `json:"approved_at"`
	Comment    string `json:"comment"`
}

type LeaveRequestResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	LeaveTypeID   string  `json:"leave_type_id"`
	LeaveTypeName *string `json:"leave_type_name,omitempty"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	StartHalfDay  bool    `json:"start_half_day"`
	EndHalfDay    bool    `json:"end_half_day"`
	TotalDays     float64 `json:"total_days"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`

	N1 *StageApprovalResponse `json:"n1,omitempty"`
	N2 *StageApprovalResponse `json:"n2,omitempty"`
	HR *StageApprovalResponse `json:"hr,omitempty"`

	RejectedBy      *string `json:"rejected_by,omitempty"`
	RejectedAt      *string `json:"rejected_at,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`

	SubmittedAt string `json:"submitted_at"`
}

type Filter struct {
	EmployeeID string
	Status     string
	Page       int
	Limit      int
}

type ListLeaveRequestsResponse struct {
	TotalCount int64                  `json:"total_count"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	Requests   []LeaveRequestResponse `json:"requests"`
}
