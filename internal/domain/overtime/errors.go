package overtime

import (
	"errors"
	"fmt"
)

var (
	ErrOvertimeRequestNotFound = errors.New("overtime request not found")
	ErrInvalidStateTransition  = errors.New("invalid state transition")
	ErrConflict                = errors.New("overtime request was modified concurrently")
)

// StateTransitionError reports the actual status of a request that was no
// longer pending.
type StateTransitionError struct {
	Actual Status
}

func (e *StateTransitionError) Error() string {
	return fmt.Sprintf("overtime request is %q, only pending requests can be decided", e.Actual)
}

func (e *StateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}
