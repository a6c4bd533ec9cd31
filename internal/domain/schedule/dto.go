package schedule

import (
	"time"

	"github.com/atlashr/timecore-backend-go/internal/pkg/validator"
)

type DayWindowRequest struct {
	Weekday int    `json:"weekday"` // 0 = Sunday ... 6 = Saturday
	Start   string `json:"start"`   // "HH:MM"
	End     string `json:"end"`
}

type CreateWorkScheduleRequest struct {
	Name                         string             `json:"name"`
	Days                         []DayWindowRequest `json:"days"`
	BreakStart                   *string            `json:"break_start"`
	BreakEnd                     *string            `json:"break_end"`
	LateToleranceMinutes         int                `json:"late_tolerance_minutes"`
	EarlyLeaveToleranceMinutes   int                `json:"early_leave_tolerance_minutes"`
	DeductBreak                  bool               `json:"deduct_break"`
	BreakDeductionThresholdHours float64            `json:"break_deduction_threshold_hours"`
	MinHalfDayHours              float64            `json:"min_half_day_hours"`
	IsDefault                    bool               `json:"is_default"`
}

func (r *CreateWorkScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(r.Days) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "at least one working day is required",
		})
	}

	for _, d := range r.Days {
		if d.Weekday < 0 || d.Weekday > 6 {
			errs = append(errs, validator.ValidationError{
				Field:   "days.weekday",
				Message: "weekday must be between 0 (Sunday) and 6 (Saturday)",
			})
			continue
		}
		start, okStart := validator.IsValidClockTime(d.Start)
		end, okEnd := validator.IsValidClockTime(d.End)
		if !okStart || !okEnd {
			errs = append(errs, validator.ValidationError{
				Field:   "days." + time.Weekday(d.Weekday).String(),
				Message: "start and end must be valid HH:MM clock times",
			})
		} else if !end.After(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "days." + time.Weekday(d.Weekday).String(),
				Message: "end must be after start",
			})
		}
	}

	if (r.BreakStart == nil) != (r.BreakEnd == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_start",
			Message: "break_start and break_end must be provided together",
		})
	}
	if r.BreakStart != nil && r.BreakEnd != nil {
		start, okStart := validator.IsValidClockTime(*r.BreakStart)
		end, okEnd := validator.IsValidClockTime(*r.BreakEnd)
		if !okStart || !okEnd {
			errs = append(errs, validator.ValidationError{
				Field:   "break_start",
				Message: "break window must use valid HH:MM clock times",
			})
		} else if !end.After(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "break_end",
				Message: "break_end must be after break_start",
			})
		}
	}

	if r.LateToleranceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "late_tolerance_minutes",
			Message: "late_tolerance_minutes must not be negative",
		})
	}
	if r.EarlyLeaveToleranceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "early_leave_tolerance_minutes",
			Message: "early_leave_tolerance_minutes must not be negative",
		})
	}
	if r.BreakDeductionThresholdHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_deduction_threshold_hours",
			Message: "break_deduction_threshold_hours must not be negative",
		})
	}
	if r.MinHalfDayHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "min_half_day_hours",
			Message: "min_half_day_hours must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkScheduleResponse struct {
	ID                           string             `json:"id"`
	Name                         string             `json:"name"`
	Days                         []DayWindowRequest `json:"days"`
	BreakStart                   *string            `json:"break_start"`
	BreakEnd                     *string            `json:"break_end"`
	LateToleranceMinutes         int                `json:"late_tolerance_minutes"`
	EarlyLeaveToleranceMinutes   int                `json:"early_leave_tolerance_minutes"`
	DeductBreak                  bool               `json:"deduct_break"`
	BreakDeductionThresholdHours float64            `json:"break_deduction_threshold_hours"`
	MinHalfDayHours              float64            `json:"min_half_day_hours"`
	IsDefault                    bool               `json:"is_default"`
	IsActive                     bool               `json:"is_active"`
}
