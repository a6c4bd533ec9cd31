package attendance

import (
	"testing"
	"time"

	"github.com/atlashr/timecore-backend-go/internal/domain/schedule"
)

func mustClock(t *testing.T, s string) schedule.TimeOfDay {
	t.Helper()
	tod, err := schedule.ParseTimeOfDay(s)
	if err != nil {
		t.Fatalf("ParseTimeOfDay(%q): %v", s, err)
	}
	return tod
}

func tp(t *testing.T, date, clock string) *time.Time {
	t.Helper()
	v, err := time.Parse("2006-01-02 15:04", date+" "+clock)
	if err != nil {
		t.Fatalf("parse %s %s: %v", date, clock, err)
	}
	return &v
}

func standardDay(t *testing.T) schedule.DaySchedule {
	t.Helper()
	breakStart := mustClock(t, "13:00")
	breakEnd := mustClock(t, "14:00")
	return schedule.DaySchedule{
		Window:                       &schedule.DayWindow{Start: mustClock(t, "09:00"), End: mustClock(t, "18:00")},
		BreakStart:                   &breakStart,
		BreakEnd:                     &breakEnd,
		LateToleranceMinutes:         15,
		EarlyLeaveToleranceMinutes:   15,
		DeductBreak:                  true,
		BreakDeductionThresholdHours: 4,
		MinHalfDayHours:              3,
	}
}

func TestComputeWorkedMinutes(t *testing.T) {
	day := standardDay(t)

	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{"full day deducts break", "09:00", "18:00", 480},
		{"short day keeps break", "09:00", "11:00", 120},
		{"exactly at threshold keeps break", "09:00", "13:00", 240},
		{"just past threshold phases in", "09:00", "13:10", 240},
		{"long day", "08:00", "20:00", 660},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ComputeWorkedMinutes(tp(t, "2025-01-06", c.checkIn), tp(t, "2025-01-06", c.checkOut), day)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got == nil || *got != c.want {
				t.Fatalf("ComputeWorkedMinutes(%s, %s) = %v, want %d", c.checkIn, c.checkOut, got, c.want)
			}
		})
	}
}

func TestComputeWorkedMinutesMissingTimes(t *testing.T) {
	day := standardDay(t)

	got, err := ComputeWorkedMinutes(nil, tp(t, "2025-01-06", "18:00"), day)
	if err != nil || got != nil {
		t.Fatalf("missing check-in: got (%v, %v), want (nil, nil)", got, err)
	}
	got, err = ComputeWorkedMinutes(tp(t, "2025-01-06", "09:00"), nil, day)
	if err != nil || got != nil {
		t.Fatalf("missing check-out: got (%v, %v), want (nil, nil)", got, err)
	}
}

func TestComputeWorkedMinutesInvalidRange(t *testing.T) {
	day := standardDay(t)

	_, err := ComputeWorkedMinutes(tp(t, "2025-01-06", "18:00"), tp(t, "2025-01-06", "09:00"), day)
	if err != ErrInvalidTimeRange {
		t.Fatalf("inverted pair: got %v, want ErrInvalidTimeRange", err)
	}
	same := tp(t, "2025-01-06", "09:00")
	_, err = ComputeWorkedMinutes(same, same, day)
	if err != ErrInvalidTimeRange {
		t.Fatalf("equal pair: got %v, want ErrInvalidTimeRange", err)
	}
}

// Worked minutes must grow with the raw duration and never go negative.
func TestComputeWorkedMinutesMonotonic(t *testing.T) {
	day := standardDay(t)
	checkIn := tp(t, "2025-01-06", "09:00")

	prev := -1
	for outMin := 545; outMin <= 1080; outMin += 5 { // 09:05 .. 18:00
		out := time.Date(2025, 1, 6, outMin/60, outMin%60, 0, 0, time.UTC)
		got, err := ComputeWorkedMinutes(checkIn, &out, day)
		if err != nil {
			t.Fatalf("unexpected error at %v: %v", out, err)
		}
		if *got < 0 {
			t.Fatalf("negative worked minutes at %v", out)
		}
		if *got < prev {
			t.Fatalf("worked minutes decreased at %v: %d < %d", out, *got, prev)
		}
		prev = *got
	}
}

func TestClassifyPunctuality(t *testing.T) {
	day := standardDay(t)
	date := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name       string
		checkIn    string
		checkOut   string
		late       bool
		lateMins   int
		early      bool
		earlyMins  int
	}{
		{"on time", "09:00", "18:00", false, 0, false, 0},
		{"inside tolerance", "09:15", "17:45", false, 0, false, 0},
		{"late beyond tolerance", "09:30", "18:00", true, 30, false, 0},
		{"early departure", "09:00", "17:00", false, 0, true, 60},
		{"late and early", "10:00", "16:30", true, 60, true, 90},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := ClassifyPunctuality(tp(t, "2025-01-06", c.checkIn), tp(t, "2025-01-06", c.checkOut), date, day)
			if p.Late != c.late || p.LateMinutes != c.lateMins {
				t.Fatalf("late = (%v, %d), want (%v, %d)", p.Late, p.LateMinutes, c.late, c.lateMins)
			}
			if p.EarlyLeave != c.early || p.EarlyMinutes != c.earlyMins {
				t.Fatalf("early = (%v, %d), want (%v, %d)", p.EarlyLeave, p.EarlyMinutes, c.early, c.earlyMins)
			}
		})
	}
}

func TestClassifyPunctualityNonWorkingDay(t *testing.T) {
	day := schedule.DaySchedule{} // no window
	date := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	p := ClassifyPunctuality(tp(t, "2025-01-05", "10:00"), tp(t, "2025-01-05", "12:00"), date, day)
	if p.Late || p.EarlyLeave {
		t.Fatalf("non-working day classified as late/early: %+v", p)
	}
}

func TestDeriveStatus(t *testing.T) {
	day := standardDay(t)

	mins := func(v int) *int { return &v }
	opt := func(clock string) *time.Time {
		if clock == "" {
			return nil
		}
		return tp(t, "2025-01-06", clock)
	}
	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		worked   *int
		p        Punctuality
		want     Status
	}{
		{"no times", "", "", nil, Punctuality{}, StatusAbsent},
		{"check-in only implies presence", "09:00", "", nil, Punctuality{}, StatusPartial},
		{"check-out only implies presence", "", "18:00", nil, Punctuality{}, StatusPartial},
		{"full present", "09:00", "18:00", mins(480), Punctuality{}, StatusPresent},
		{"below half-day threshold", "09:00", "11:00", mins(120), Punctuality{}, StatusPartial},
		{"half day", "09:00", "12:40", mins(220), Punctuality{}, StatusHalfDay},
		{"late", "09:30", "18:00", mins(450), Punctuality{Late: true, LateMinutes: 30}, StatusLate},
		{"early leave", "09:00", "17:00", mins(420), Punctuality{EarlyLeave: true, EarlyMinutes: 60}, StatusEarlyLeave},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := DeriveStatus(opt(c.checkIn), opt(c.checkOut), c.worked, c.p, day)
			if got != c.want {
				t.Fatalf("DeriveStatus = %s, want %s", got, c.want)
			}
		})
	}
}
