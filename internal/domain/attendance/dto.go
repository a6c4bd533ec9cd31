package attendance

import (
	"github.com/atlashr/timecore-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type DeclareRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`      // "2006-01-02"
	CheckIn    *string `json:"check_in"`  // RFC3339 or "HH:MM"
	CheckOut   *string `json:"check_out"` // RFC3339 or "HH:MM"
	Status     *string `json:"status"`    // optional; derived when absent
	Source     string  `json:"source"`
	Notes      *string `json:"notes"`

	// ActorID is filled from token claims by the handler, never from the body.
	ActorID string `json:"-"`

	// MinNoteLen is the configured minimum for manual-entry notes.
	MinNoteLen int `json:"-"`
}

func (r *DeclareRequest) Validate() error {
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

	if r.Status != nil && !validator.IsInSlice(*r.Status, statusStrings()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "unknown attendance status",
		})
	}

	if r.Notes != nil && !validator.MinLength(*r.Notes, r.MinNoteLen) {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes are too short",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ResolveRequest struct {
	ID              string  `json:"-"`
	CheckIn         *string `json:"check_in"`
	CheckOut        *string `json:"check_out"`
	Status          string  `json:"status"`
	ResolutionNotes string  `json:"resolution_notes"`

	ActorID    string `json:"-"`
	MinNoteLen int    `json:"-"`
}

func (r *ResolveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "attendance record id is required",
		})
	}

	minLen := r.MinNoteLen
	if minLen < 1 {
		minLen = 1
	}
	if !validator.MinLength(r.ResolutionNotes, minLen) {
		errs = append(errs, validator.ValidationError{
			Field:   "resolution_notes",
			Message: "resolution_notes is required",
		})
	}

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "corrected status is required",
		})
	} else if !validator.IsInSlice(r.Status, statusStrings()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "unknown attendance status",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func statusStrings() []string {
	out := make([]string, 0, len(ValidStatuses))
	for _, s := range ValidStatuses {
		out = append(out, string(s))
	}
	return out
}

type Filter struct {
	EmployeeID  string
	From        string
	To          string
	OnlyAnomaly bool
	Page        int
	Limit       int
}

type RecordResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	Date          string  `json:"date"`
	CheckIn       *string `json:"check_in"`
	CheckOut      *string `json:"check_out"`
	Status        string  `json:"status"`
	WorkedMinutes *int    `json:"worked_minutes"`
	LateMinutes   *int    `json:"late_minutes"`
	EarlyMinutes  *int    `json:"early_minutes"`
	IsManualEntry bool    `json:"is_manual_entry"`
	Source        string  `json:"source"`
	Notes         *string `json:"notes,omitempty"`

	IsAnomaly       bool    `json:"is_anomaly"`
	AnomalyType     *string `json:"anomaly_type,omitempty"`
	AnomalyResolved bool    `json:"anomaly_resolved"`
	ResolvedBy      *string `json:"resolved_by,omitempty"`
	ResolvedAt      *string `json:"resolved_at,omitempty"`
	ResolutionNotes *string `json:"resolution_notes,omitempty"`
}

type ResolveResponse struct {
	Record RecordResponse `json:"record"`

	// StillAnomalous is true when the corrected values re-triggered a
	// detection rule: the resolution was recorded but the record remains
	// flagged with the new anomaly type.
	StillAnomalous bool `json:"still_anomalous"`
}

type ListResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Records    []RecordResponse `json:"records"`
}
