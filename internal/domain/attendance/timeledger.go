package attendance

import (
	"time"

	"github.com/atlashr/timecore-backend-go/internal/domain/schedule"
)

// ComputeWorkedMinutes derives worked minutes from a check pair under the
// day's break policy. Returns nil when either time is missing, and
// ErrInvalidTimeRange when the pair is inverted or equal. The break window
// is only deducted once the raw duration exceeds the schedule threshold.
// Pure: safe to call repeatedly on the same inputs.
func ComputeWorkedMinutes(checkIn, checkOut *time.Time, day schedule.DaySchedule) (*int, error) {
	if checkIn == nil || checkOut == nil {
		return nil, nil
	}
	if !checkOut.After(*checkIn) {
		return nil, ErrInvalidTimeRange
	}

	raw := checkOut.Sub(*checkIn)
	minutes := int(raw.Minutes())

	threshold := day.BreakDeductionThresholdHours
	if threshold <= 0 {
		threshold = schedule.DefaultBreakDeductionThresholdHours
	}

	// The deduction phases in past the threshold instead of stepping, so
	// worked minutes stay monotonic in the raw duration: a 4h01 day is
	// never credited less than a 3h59 one.
	if day.DeductBreak && raw.Hours() > threshold {
		deduct := day.BreakMinutes()
		if over := minutes - int(threshold*60); over < deduct {
			deduct = over
		}
		if deduct > 0 {
			minutes -= deduct
		}
	}

	return &minutes, nil
}

// Punctuality captures lateness and early departure relative to the day's
// scheduled window plus tolerances.
type Punctuality struct {
	Late         bool
	LateMinutes  int
	EarlyLeave   bool
	EarlyMinutes int
}

// ClassifyPunctuality compares the check pair against the scheduled window.
// A check-in after start+tolerance is late; a check-out before
// end-tolerance is an early leave. Minutes are measured from the scheduled
// boundary, not from the tolerance limit. Non-working days classify as
// neither.
func ClassifyPunctuality(checkIn, checkOut *time.Time, date time.Time, day schedule.DaySchedule) Punctuality {
	var p Punctuality
	if day.Window == nil {
		return p
	}

	if checkIn != nil {
		scheduledStart := day.Window.Start.On(date)
		limit := scheduledStart.Add(time.Duration(day.LateToleranceMinutes) * time.Minute)
		if checkIn.After(limit) {
			p.Late = true
			p.LateMinutes = int(checkIn.Sub(scheduledStart).Minutes())
		}
	}

	if checkOut != nil {
		scheduledEnd := day.Window.End.On(date)
		limit := scheduledEnd.Add(-time.Duration(day.EarlyLeaveToleranceMinutes) * time.Minute)
		if checkOut.Before(limit) {
			p.EarlyLeave = true
			p.EarlyMinutes = int(scheduledEnd.Sub(*checkOut).Minutes())
		}
	}

	return p
}

// DeriveStatus picks a status from computed time when the caller supplied
// none. Half-day and partial classification uses the schedule's minimum
// half-day threshold against the scheduled window length.
//
// A record with only one clock event has no computable duration but still
// proves presence; it derives partial so the missing-check rules apply.
func DeriveStatus(checkIn, checkOut *time.Time, worked *int, p Punctuality, day schedule.DaySchedule) Status {
	if worked == nil {
		if checkIn != nil || checkOut != nil {
			return StatusPartial
		}
		return StatusAbsent
	}
	if day.Window != nil {
		scheduledMinutes := day.Window.End.Minutes() - day.Window.Start.Minutes()
		if day.DeductBreak {
			scheduledMinutes -= day.BreakMinutes()
		}
		minHalf := int(day.MinHalfDayHours * 60)
		if minHalf > 0 && *worked < minHalf {
			return StatusPartial
		}
		if scheduledMinutes > 0 && float64(*worked) <= float64(scheduledMinutes)*0.5 {
			return StatusHalfDay
		}
	}
	if p.Late {
		return StatusLate
	}
	if p.EarlyLeave {
		return StatusEarlyLeave
	}
	return StatusPresent
}
