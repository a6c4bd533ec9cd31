package schedule

import "errors"

var (
	ErrWorkScheduleNotFound = errors.New("work schedule not found")
	ErrNoActiveSchedule     = errors.New("no active work schedule")
	ErrScheduleInactive     = errors.New("work schedule is not active")
)
