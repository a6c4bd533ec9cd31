package response

import (
	"errors"
	"net/http"

	"github.com/atlashr/timecore-backend-go/internal/domain/attendance"
	"github.com/atlashr/timecore-backend-go/internal/domain/leave"
	"github.com/atlashr/timecore-backend-go/internal/domain/overtime"
	"github.com/atlashr/timecore-backend-go/internal/domain/payroll"
	"github.com/atlashr/timecore-backend-go/internal/domain/recovery"
	"github.com/atlashr/timecore-backend-go/internal/domain/schedule"
	"github.com/atlashr/timecore-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Insufficient recovery hours: surface the remaining balance so the
	// client can adjust without a second round trip.
	var insufficient *recovery.InsufficientHoursError
	if errors.As(err, &insufficient) {
		UnprocessableEntity(w, "Declaration exceeds the period's remaining hours", map[string]string{
			"period_id":       insufficient.PeriodID,
			"hours_remaining": insufficient.Remaining.String(),
			"hours_requested": insufficient.Requested.String(),
		})
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidTimeRange):
		BadRequest(w, "Check-out must be after check-in", nil)
	case errors.Is(err, attendance.ErrEmptyResolutionNotes):
		ValidationError(w, map[string]string{"resolution_notes": "resolution notes are required"})
	case errors.Is(err, attendance.ErrNotAnAnomaly):
		Conflict(w, "Attendance record is not flagged as an anomaly", nil)
	case errors.Is(err, attendance.ErrAlreadyResolved):
		Conflict(w, "Anomaly has already been resolved", nil)
	case errors.Is(err, attendance.ErrDuplicateRecord):
		Conflict(w, "An attendance record already exists for this employee and date", nil)
	case errors.Is(err, attendance.ErrConflict):
		Conflict(w, "Attendance record was modified concurrently, reload and retry", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrLeaveTypeInactive):
		UnprocessableEntity(w, "Leave type is inactive", nil)
	case errors.Is(err, leave.ErrHalfDayNotAllowed):
		UnprocessableEntity(w, "Leave type does not allow half days", nil)
	case errors.Is(err, leave.ErrDaysOutOfBounds):
		UnprocessableEntity(w, "Total days are outside the leave type bounds", nil)
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "An overlapping leave request already exists", nil)
	case errors.Is(err, leave.ErrInvalidStateTransition):
		Conflict(w, err.Error(), nil)
	case errors.Is(err, leave.ErrConflict):
		Conflict(w, "Leave request was modified concurrently, reload and retry", nil)

	// Overtime domain errors
	case errors.Is(err, overtime.ErrOvertimeRequestNotFound):
		NotFound(w, "Overtime request not found")
	case errors.Is(err, overtime.ErrInvalidStateTransition):
		Conflict(w, err.Error(), nil)
	case errors.Is(err, overtime.ErrConflict):
		Conflict(w, "Overtime request was modified concurrently, reload and retry", nil)

	// Recovery domain errors
	case errors.Is(err, recovery.ErrPeriodNotFound):
		NotFound(w, "Recovery period not found")
	case errors.Is(err, recovery.ErrDeclarationNotFound):
		NotFound(w, "Recovery declaration not found")
	case errors.Is(err, recovery.ErrInvalidHours):
		UnprocessableEntity(w, "hours_to_recover must be positive for non-day-off declarations", nil)
	case errors.Is(err, recovery.ErrDayOffDeclaration):
		UnprocessableEntity(w, "Day-off declarations carry no recoverable hours", nil)
	case errors.Is(err, recovery.ErrConflict):
		Conflict(w, "Recovery period was modified concurrently, reload and retry", nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrWorkScheduleNotFound):
		NotFound(w, "Work schedule not found")
	case errors.Is(err, schedule.ErrNoActiveSchedule):
		NotFound(w, "No active work schedule")
	case errors.Is(err, schedule.ErrScheduleInactive):
		Conflict(w, "Work schedule is not active", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPrimeTypeNotFound):
		NotFound(w, "Prime type not found")
	case errors.Is(err, payroll.ErrEmployeePrimeNotFound):
		NotFound(w, "Employee prime not found")
	case errors.Is(err, payroll.ErrDuplicatePrimeCode):
		Conflict(w, "Prime type code already exists", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
