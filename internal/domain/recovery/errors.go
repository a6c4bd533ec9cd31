package recovery

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrPeriodNotFound            = errors.New("recovery period not found")
	ErrDeclarationNotFound       = errors.New("recovery declaration not found")
	ErrInvalidHours              = errors.New("hours_to_recover must be positive for non-day-off declarations")
	ErrInsufficientRemainingHours = errors.New("declaration exceeds the period's remaining hours")
	ErrConflict                  = errors.New("recovery period was modified concurrently")
	ErrDayOffDeclaration         = errors.New("day-off declarations carry no recoverable hours")
)

// InsufficientHoursError reports how much of the period's debt is left.
type InsufficientHoursError struct {
	PeriodID  string
	Remaining decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientHoursError) Error() string {
	return fmt.Sprintf("period %s has %s hours remaining, requested %s",
		e.PeriodID, e.Remaining.String(), e.Requested.String())
}

func (e *InsufficientHoursError) Unwrap() error {
	return ErrInsufficientRemainingHours
}
