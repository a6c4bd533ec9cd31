package recovery

import (
	"github.com/atlashr/timecore-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePeriodRequest struct {
	Name                string  `json:"name"`
	StartDate           string  `json:"start_date"`
	EndDate             string  `json:"end_date"`
	TotalHoursToRecover string  `json:"total_hours_to_recover"`
	Department          *string `json:"department"`
	Segment             *string `json:"segment"`
	Centre              *string `json:"centre"`
}

func (r *CreatePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
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

	total, err := decimal.NewFromString(r.TotalHoursToRecover)
	if err != nil || !total.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "total_hours_to_recover",
			Message: "total_hours_to_recover must be a positive number",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DeclareRequest struct {
	PeriodID string  `json:"period_id"`
	Date     string  `json:"date"`
	IsDayOff bool    `json:"is_day_off"`
	Hours    string  `json:"hours_to_recover"` // ignored when is_day_off
	Notes    *string `json:"notes"`

	MinNoteLen int `json:"-"`
}

func (r *DeclareRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PeriodID) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_id",
			Message: "period_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must use the YYYY-MM-DD format",
		})
	}

	if !r.IsDayOff {
		hours, err := decimal.NewFromString(r.Hours)
		if err != nil || !hours.IsPositive() {
			errs = append(errs, validator.ValidationError{
				Field:   "hours_to_recover",
				Message: "hours_to_recover must be a positive number",
			})
		}
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

type UpdateDeclarationRequest struct {
	ID    string  `json:"-"`
	Date  *string `json:"date"`
	Hours *string `json:"hours_to_recover"`
	Notes *string `json:"notes"`

	MinNoteLen int `json:"-"`
}

func (r *UpdateDeclarationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "declaration id is required",
		})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must use the YYYY-MM-DD format",
			})
		}
	}
	if r.Hours != nil {
		hours, err := decimal.NewFromString(*r.Hours)
		if err != nil || !hours.IsPositive() {
			errs = append(errs, validator.ValidationError{
				Field:   "hours_to_recover",
				Message: "hours_to_recover must be a positive number",
			})
		}
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

type PeriodResponse struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	StartDate           string  `json:"start_date"`
	EndDate             string  `json:"end_date"`
	TotalHoursToRecover string  `json:"total_hours_to_recover"`
	HoursRemaining      string  `json:"hours_remaining"`
	Department          *string `json:"department,omitempty"`
	Segment             *string `json:"segment,omitempty"`
	Centre              *string `json:"centre,omitempty"`
	AppliesToAll        bool    `json:"applies_to_all"`
}

type DeclarationResponse struct {
	ID             string  `json:"id"`
	PeriodID       string  `json:"period_id"`
	Date           string  `json:"date"`
	IsDayOff       bool    `json:"is_day_off"`
	HoursToRecover string  `json:"hours_to_recover"`
	Notes          *string `json:"notes,omitempty"`

	// PeriodHoursRemaining is the period's debt after this declaration.
	PeriodHoursRemaining string `json:"period_hours_remaining"`
}
