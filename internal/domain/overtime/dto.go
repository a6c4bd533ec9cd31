package overtime

import (
	"github.com/atlashr/timecore-backend-go/internal/pkg/validator"
)

type CreateOvertimeRequestRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"` // "HH:MM"
	EndTime    string `json:"end_time"`
	Reason     string `json:"reason"`
	Priority   string `json:"priority"`
}

func (r *CreateOvertimeRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must use the YYYY-MM-DD format",
		})
	}

	start, okStart := validator.IsValidClockTime(r.StartTime)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a valid HH:MM clock time",
		})
	}
	end, okEnd := validator.IsValidClockTime(r.EndTime)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be a valid HH:MM clock time",
		})
	}
	if okStart && okEnd && !end.After(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be after start_time",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if r.Priority != "" && !validator.IsInSlice(r.Priority, []string{
		string(PriorityUrgent), string(PriorityHigh), string(PriorityNormal), string(PriorityLow),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be one of urgent, high, normal, low",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideRequest struct {
	ID      string `json:"-"`
	Comment string `json:"comment"` // approve comment or rejection reason

	ActorID string `json:"-"`
}

func (r *DecideRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "overtime request id is required",
		})
	}
	if validator.IsEmpty(r.Comment) {
		errs = append(errs, validator.ValidationError{
			Field:   "comment",
			Message: "comment is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateCancel skips the comment requirement; withdrawing one's own
// request needs no justification.
func (r *DecideRequest) ValidateCancel() error {
	if validator.IsEmpty(r.ID) {
		return validator.ValidationErrors{{
			Field:   "id",
			Message: "overtime request id is required",
		}}
	}
	return nil
}

type OvertimeRequestResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	Date           string  `json:"date"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	EstimatedHours float64 `json:"estimated_hours"`
	Reason         string  `json:"reason"`
	Priority       string  `json:"priority"`
	Status         string  `json:"status"`

	DecidedBy       *string `json:"decided_by,omitempty"`
	DecidedAt       *string `json:"decided_at,omitempty"`
	DecisionComment *string `json:"decision_comment,omitempty"`

	SubmittedAt string `json:"submitted_at"`
}

type Filter struct {
	EmployeeID string
	Status     string
	Page       int
	Limit      int
}

type ListOvertimeRequestsResponse struct {
	TotalCount int64                     `json:"total_count"`
	Page       int                       `json:"page"`
	Limit      int                       `json:"limit"`
	Requests   []OvertimeRequestResponse `json:"requests"`
}
