package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent       Status = "present"
	StatusAbsent        Status = "absent"
	StatusLate          Status = "late"
	StatusEarlyLeave    Status = "early_leave"
	StatusPartial       Status = "partial"
	StatusHalfDay       Status = "half_day"
	StatusLeave         Status = "leave"
	StatusSick          Status = "sick"
	StatusMission       Status = "mission"
	StatusTraining      Status = "training"
	StatusHoliday       Status = "holiday"
	StatusWeekend       Status = "weekend"
	StatusRecoveryOff   Status = "recovery_off"
	StatusRecoveryPaid  Status = "recovery_paid"
	StatusRecoveryUnpaid Status = "recovery_unpaid"
)

// ValidStatuses lists all accepted attendance statuses.
var ValidStatuses = []Status{
	StatusPresent, StatusAbsent, StatusLate, StatusEarlyLeave, StatusPartial,
	StatusHalfDay, StatusLeave, StatusSick, StatusMission, StatusTraining,
	StatusHoliday, StatusWeekend, StatusRecoveryOff, StatusRecoveryPaid,
	StatusRecoveryUnpaid,
}

// ImpliesPresence reports whether the status means the employee was expected
// to have clocked in and out on that day. Anomaly detection only applies its
// check-in/check-out rules to these statuses.
func (s Status) ImpliesPresence() bool {
	switch s {
	case StatusPresent, StatusLate, StatusEarlyLeave, StatusPartial, StatusHalfDay:
		return true
	}
	return false
}

// IsNonWorkingContext reports whether the status explains a record on a
// non-working weekday (recovery work, holidays, planned weekend shifts).
func (s Status) IsNonWorkingContext() bool {
	switch s {
	case StatusRecoveryOff, StatusRecoveryPaid, StatusRecoveryUnpaid,
		StatusHoliday, StatusWeekend:
		return true
	}
	return false
}

type AnomalyType string

const (
	AnomalyMissingCheckIn        AnomalyType = "missing_check_in"
	AnomalyMissingCheckOut       AnomalyType = "missing_check_out"
	AnomalyExcessiveHours        AnomalyType = "excessive_hours"
	AnomalyLateWithoutStatus     AnomalyType = "late_without_status"
	AnomalyEarlyDeparture        AnomalyType = "early_departure"
	AnomalyWeekendWorkUnplanned  AnomalyType = "weekend_work_unplanned"
)

// Record is one employee-day of attendance. Check-out, when present, is
// strictly after check-in on the same date. WorkedMinutes is always derived
// from the check pair by the time ledger, never written directly.
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time

	CheckIn  *time.Time
	CheckOut *time.Time

	Status        Status
	WorkedMinutes *int
	LateMinutes   *int
	EarlyMinutes  *int

	IsManualEntry bool
	Source        string
	Notes         *string

	IsAnomaly       bool
	AnomalyType     *AnomalyType
	AnomalyResolved bool
	ResolvedBy      *string
	ResolvedAt      *time.Time
	ResolutionNotes *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName *string
}
