package attendance

import (
	"testing"
	"time"

	"github.com/atlashr/timecore-backend-go/internal/domain/schedule"
)

const maxDaily = 720

func TestDetectMissingChecks(t *testing.T) {
	day := standardDay(t)
	date := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

	rec := Record{Date: date, Status: StatusPresent}
	if got := Detect(rec, day, maxDaily); got == nil || *got != AnomalyMissingCheckIn {
		t.Fatalf("no checks: got %v, want missing_check_in", got)
	}

	rec.CheckIn = tp(t, "2025-01-06", "09:00")
	if got := Detect(rec, day, maxDaily); got == nil || *got != AnomalyMissingCheckOut {
		t.Fatalf("no check-out: got %v, want missing_check_out", got)
	}

	// Leave statuses do not imply presence; no check pair expected.
	rec = Record{Date: date, Status: StatusLeave}
	if got := Detect(rec, day, maxDaily); got != nil {
		t.Fatalf("leave day flagged: %v", *got)
	}
}

func TestDetectExcessiveHours(t *testing.T) {
	day := standardDay(t)
	date := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	worked := 800

	rec := Record{
		Date:          date,
		Status:        StatusLate, // not present: late rules skipped
		CheckIn:       tp(t, "2025-01-06", "06:00"),
		CheckOut:      tp(t, "2025-01-06", "20:00"),
		WorkedMinutes: &worked,
	}
	if got := Detect(rec, day, maxDaily); got == nil || *got != AnomalyExcessiveHours {
		t.Fatalf("got %v, want excessive_hours", got)
	}
}

func TestDetectLateWithoutStatus(t *testing.T) {
	day := standardDay(t)
	date := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	worked := 460

	rec := Record{
		Date:          date,
		Status:        StatusPresent,
		CheckIn:       tp(t, "2025-01-06", "09:40"),
		CheckOut:      tp(t, "2025-01-06", "18:00"),
		WorkedMinutes: &worked,
	}
	if got := Detect(rec, day, maxDaily); got == nil || *got != AnomalyLateWithoutStatus {
		t.Fatalf("got %v, want late_without_status", got)
	}

	// Status already records the lateness: no anomaly.
	rec.Status = StatusLate
	if got := Detect(rec, day, maxDaily); got != nil {
		t.Fatalf("late status still flagged: %v", *got)
	}
}

func TestDetectEarlyDeparture(t *testing.T) {
	day := standardDay(t)
	date := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	worked := 420

	rec := Record{
		Date:          date,
		Status:        StatusPresent,
		CheckIn:       tp(t, "2025-01-06", "09:00"),
		CheckOut:      tp(t, "2025-01-06", "16:30"),
		WorkedMinutes: &worked,
	}
	if got := Detect(rec, day, maxDaily); got == nil || *got != AnomalyEarlyDeparture {
		t.Fatalf("got %v, want early_departure", got)
	}
}

func TestDetectWeekendWorkUnplanned(t *testing.T) {
	day := schedule.DaySchedule{} // non-working day
	date := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	worked := 180

	rec := Record{
		Date:          date,
		Status:        StatusMission,
		CheckIn:       tp(t, "2025-01-05", "10:00"),
		CheckOut:      tp(t, "2025-01-05", "13:00"),
		WorkedMinutes: &worked,
	}
	if got := Detect(rec, day, maxDaily); got == nil || *got != AnomalyWeekendWorkUnplanned {
		t.Fatalf("got %v, want weekend_work_unplanned", got)
	}

	// Recovery and holiday contexts explain weekend presence.
	for _, st := range []Status{StatusRecoveryPaid, StatusRecoveryUnpaid, StatusRecoveryOff, StatusHoliday, StatusWeekend} {
		rec.Status = st
		if got := Detect(rec, day, maxDaily); got != nil {
			t.Fatalf("status %s flagged on weekend: %v", st, *got)
		}
	}
}

// Rules are mutually exclusive: the first match in precedence order wins.
func TestDetectPrecedence(t *testing.T) {
	day := standardDay(t)
	date := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	worked := 800

	// Missing check-out beats excessive hours.
	rec := Record{
		Date:          date,
		Status:        StatusPresent,
		CheckIn:       tp(t, "2025-01-06", "09:40"),
		WorkedMinutes: &worked,
	}
	if got := Detect(rec, day, maxDaily); got == nil || *got != AnomalyMissingCheckOut {
		t.Fatalf("got %v, want missing_check_out first", got)
	}

	// Excessive hours beats late_without_status.
	rec.CheckOut = tp(t, "2025-01-06", "23:30")
	if got := Detect(rec, day, maxDaily); got == nil || *got != AnomalyExcessiveHours {
		t.Fatalf("got %v, want excessive_hours before late_without_status", got)
	}
}

func TestDetectCleanRecord(t *testing.T) {
	day := standardDay(t)
	date := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	worked := 480

	rec := Record{
		Date:          date,
		Status:        StatusPresent,
		CheckIn:       tp(t, "2025-01-06", "09:00"),
		CheckOut:      tp(t, "2025-01-06", "18:00"),
		WorkedMinutes: &worked,
	}
	if got := Detect(rec, day, maxDaily); got != nil {
		t.Fatalf("clean record flagged: %v", *got)
	}
}
