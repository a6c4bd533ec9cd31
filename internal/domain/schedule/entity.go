package schedule

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time with minute resolution, detached from any
// calendar date. Schedule windows are stored this way and anchored to a
// concrete date only when a record is evaluated.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM" in 24h format.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Minutes returns minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// On anchors the clock time to a calendar date in the date's location.
func (t TimeOfDay) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, 0, 0, date.Location())
}

// DayWindow is the working window for a single weekday. A nil DayWindow on
// the schedule means the weekday is non-working.
type DayWindow struct {
	Start TimeOfDay
	End   TimeOfDay
}

// WorkSchedule is the per-weekday working-time template applied to employees.
// Exactly one schedule is active at a time; see Repository.Activate.
type WorkSchedule struct {
	ID   string
	Name string

	// Days is indexed by time.Weekday (Sunday = 0). Nil entries are
	// non-working days.
	Days [7]*DayWindow

	BreakStart *TimeOfDay
	BreakEnd   *TimeOfDay

	LateToleranceMinutes       int
	EarlyLeaveToleranceMinutes int

	// DeductBreak controls whether the break window is subtracted from
	// worked time once the raw duration reaches BreakDeductionThresholdHours.
	DeductBreak                  bool
	BreakDeductionThresholdHours float64

	// MinHalfDayHours is the minimum worked duration for a day to count as
	// half_day rather than partial.
	MinHalfDayHours float64

	IsDefault bool
	IsActive  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultBreakDeductionThresholdHours applies when a schedule leaves the
// threshold unset.
const DefaultBreakDeductionThresholdHours = 4.0

// DaySchedule is the resolved rule set for one concrete weekday: the day's
// window plus the schedule-level tolerances and break policy. This is the
// unit the time ledger computes against.
type DaySchedule struct {
	Window *DayWindow // nil = non-working day

	BreakStart *TimeOfDay
	BreakEnd   *TimeOfDay

	LateToleranceMinutes       int
	EarlyLeaveToleranceMinutes int

	DeductBreak                  bool
	BreakDeductionThresholdHours float64

	MinHalfDayHours float64
}

// DayFor resolves the schedule for the given weekday.
func (ws WorkSchedule) DayFor(weekday time.Weekday) DaySchedule {
	threshold := ws.BreakDeductionThresholdHours
	if threshold <= 0 {
		threshold = DefaultBreakDeductionThresholdHours
	}
	return DaySchedule{
		Window:                       ws.Days[weekday],
		BreakStart:                   ws.BreakStart,
		BreakEnd:                     ws.BreakEnd,
		LateToleranceMinutes:         ws.LateToleranceMinutes,
		EarlyLeaveToleranceMinutes:   ws.EarlyLeaveToleranceMinutes,
		DeductBreak:                  ws.DeductBreak,
		BreakDeductionThresholdHours: threshold,
		MinHalfDayHours:              ws.MinHalfDayHours,
	}
}

// IsWorkingDay reports whether the resolved day has a working window.
func (d DaySchedule) IsWorkingDay() bool {
	return d.Window != nil
}

// BreakMinutes returns the length of the break window, zero when no break
// is configured or the window is inverted.
func (d DaySchedule) BreakMinutes() int {
	if d.BreakStart == nil || d.BreakEnd == nil {
		return 0
	}
	mins := d.BreakEnd.Minutes() - d.BreakStart.Minutes()
	if mins < 0 {
		return 0
	}
	return mins
}
