package recovery

import (
	"time"

	"github.com/shopspring/decimal"
)

// Scope limits a period to a department, segment or centre. All-nil means
// the period applies to everyone.
type Scope struct {
	Department *string
	Segment    *string
	Centre     *string
}

// AppliesToAll reports whether the period is unscoped.
func (s Scope) AppliesToAll() bool {
	return s.Department == nil && s.Segment == nil && s.Centre == nil
}

// Period is a window during which employees owe back hours not worked,
// for instance a holiday bridge. Declarations pay the debt down.
type Period struct {
	ID        string
	Name      string
	StartDate time.Time
	EndDate   time.Time

	TotalHoursToRecover decimal.Decimal
	Scope               Scope

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Declaration is one day's entry against a period. A day-off declaration
// is paid and non-recoverable: it carries zero hours and leaves the debt
// untouched.
type Declaration struct {
	ID       string
	PeriodID string
	Date     time.Time

	IsDayOff       bool
	HoursToRecover decimal.Decimal
	Notes          *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
