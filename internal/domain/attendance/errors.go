package attendance

import "errors"

// Attendance domain errors
var (
	ErrRecordNotFound        = errors.New("attendance record not found")
	ErrInvalidTimeRange      = errors.New("check-out must be after check-in")
	ErrEmptyResolutionNotes  = errors.New("resolution notes are required")
	ErrNotAnAnomaly          = errors.New("attendance record is not flagged as an anomaly")
	ErrAlreadyResolved       = errors.New("anomaly has already been resolved")
	ErrConflict              = errors.New("attendance record was modified concurrently")
	ErrDuplicateRecord       = errors.New("attendance record already exists for this employee and date")
)
