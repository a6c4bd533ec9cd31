package leave

import (
	"errors"
	"fmt"
)

var (
	ErrLeaveRequestNotFound   = errors.New("leave request not found")
	ErrLeaveTypeNotFound      = errors.New("leave type not found")
	ErrLeaveTypeInactive      = errors.New("leave type is inactive")
	ErrHalfDayNotAllowed      = errors.New("leave type does not allow half days")
	ErrOverlappingLeave       = errors.New("an overlapping leave request already exists")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrConflict               = errors.New("leave request was modified concurrently")
	ErrDaysOutOfBounds        = errors.New("total days outside the leave type bounds")
)

// StateTransitionError carries the actual status so callers can refresh
// their view before retrying.
type StateTransitionError struct {
	Attempted Stage
	Expected  RequestStatus
	Actual    RequestStatus
}

func (e *StateTransitionError) Error() string {
	return fmt.Sprintf("stage %s requires status %q, request is %q", e.Attempted, e.Expected, e.Actual)
}

func (e *StateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}
