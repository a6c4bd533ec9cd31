package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/atlashr/timecore-backend-go/internal/config"
	"github.com/atlashr/timecore-backend-go/internal/domain/attendance"
	"github.com/atlashr/timecore-backend-go/internal/domain/schedule"
	"github.com/atlashr/timecore-backend-go/internal/pkg/validator"
	"github.com/atlashr/timecore-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func mustTOD(t *testing.T, s string) schedule.TimeOfDay {
	t.Helper()
	tod, err := schedule.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

// newTestService wires an attendance service with a Monday-to-Friday
// 09:00-18:00 schedule, a one hour break at 13:00 and 15 minute tolerances.
func newTestService(t *testing.T) attendance.Service {
	t.Helper()

	scheduleRepo := memory.NewWorkScheduleRepository()
	window := &schedule.DayWindow{Start: mustTOD(t, "09:00"), End: mustTOD(t, "18:00")}
	breakStart := mustTOD(t, "13:00")
	breakEnd := mustTOD(t, "14:00")

	ws := schedule.WorkSchedule{
		Name: "standard week",
		Days: [7]*schedule.DayWindow{
			time.Monday:    window,
			time.Tuesday:   window,
			time.Wednesday: window,
			time.Thursday:  window,
			time.Friday:    window,
		},
		BreakStart:                   &breakStart,
		BreakEnd:                     &breakEnd,
		LateToleranceMinutes:         15,
		EarlyLeaveToleranceMinutes:   15,
		DeductBreak:                  true,
		BreakDeductionThresholdHours: 4,
		MinHalfDayHours:              3,
	}
	ws, err := scheduleRepo.Create(context.Background(), ws)
	require.NoError(t, err)
	require.NoError(t, scheduleRepo.Activate(context.Background(), ws.ID))

	return NewAttendanceService(memory.NewAttendanceRepository(), scheduleRepo, config.EngineConfig{
		MaxDailyWorkMinutes:   720,
		MinResolutionNoteLen:  5,
		MinDeclarationNoteLen: 1,
	})
}

// 2025-08-11 is a Monday.
const workday = "2025-08-11"

func TestDeclareFullDay(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Declare(context.Background(), attendance.DeclareRequest{
		EmployeeID: "emp-1",
		Date:       workday,
		CheckIn:    strPtr("09:00"),
		CheckOut:   strPtr("18:00"),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.WorkedMinutes)
	assert.Equal(t, 480, *resp.WorkedMinutes)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	assert.False(t, resp.IsAnomaly)
	assert.True(t, resp.IsManualEntry)
}

func TestDeclareInvertedTimesFails(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Declare(context.Background(), attendance.DeclareRequest{
		EmployeeID: "emp-1",
		Date:       workday,
		CheckIn:    strPtr("18:00"),
		CheckOut:   strPtr("09:00"),
	})
	assert.ErrorIs(t, err, attendance.ErrInvalidTimeRange)
}

func TestDeclareMissingCheckOutFlagsAnomaly(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Declare(context.Background(), attendance.DeclareRequest{
		EmployeeID: "emp-1",
		Date:       workday,
		CheckIn:    strPtr("09:00"),
		Status:     strPtr("present"),
	})
	require.NoError(t, err)

	assert.True(t, resp.IsAnomaly)
	require.NotNil(t, resp.AnomalyType)
	assert.Equal(t, string(attendance.AnomalyMissingCheckOut), *resp.AnomalyType)
}

func TestDeclareCheckInOnlyWithoutStatusFlagsAnomaly(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Declare(context.Background(), attendance.DeclareRequest{
		EmployeeID: "emp-1",
		Date:       workday,
		CheckIn:    strPtr("09:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusPartial), resp.Status)
	assert.True(t, resp.IsAnomaly)
	require.NotNil(t, resp.AnomalyType)
	assert.Equal(t, string(attendance.AnomalyMissingCheckOut), *resp.AnomalyType)
}

func TestDeclareCheckOutOnlyWithoutStatusFlagsAnomaly(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Declare(context.Background(), attendance.DeclareRequest{
		EmployeeID: "emp-1",
		Date:       workday,
		CheckOut:   strPtr("18:00"),
	})
	require.NoError(t, err)

	assert.True(t, resp.IsAnomaly)
	require.NotNil(t, resp.AnomalyType)
	assert.Equal(t, string(attendance.AnomalyMissingCheckIn), *resp.AnomalyType)
}

func TestDeclareLateWithoutStatusFlagsAnomaly(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Declare(context.Background(), attendance.DeclareRequest{
		EmployeeID: "emp-1",
		Date:       workday,
		CheckIn:    strPtr("09:40"),
		CheckOut:   strPtr("18:00"),
		Status:     strPtr("present"),
	})
	require.NoError(t, err)

	assert.True(t, resp.IsAnomaly)
	require.NotNil(t, resp.AnomalyType)
	assert.Equal(t, string(attendance.AnomalyLateWithoutStatus), *resp.AnomalyType)
}

func TestDeclareUnplannedWeekendWork(t *testing.T) {
	svc := newTestService(t)

	// 2025-08-09 is a Saturday with no configured window.
	resp, err := svc.Declare(context.Background(), attendance.DeclareRequest{
		EmployeeID: "emp-1",
		Date:       "2025-08-09",
		CheckIn:    strPtr("10:00"),
		CheckOut:   strPtr("15:00"),
		Status:     strPtr("present"),
	})
	require.NoError(t, err)

	assert.True(t, resp.IsAnomaly)
	require.NotNil(t, resp.AnomalyType)
	assert.Equal(t, string(attendance.AnomalyWeekendWorkUnplanned), *resp.AnomalyType)
}

func TestDeclareEditsExistingDay(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Declare(ctx, attendance.DeclareRequest{
		EmployeeID: "emp-1",
		Date:       workday,
		CheckIn:    strPtr("09:00"),
	})
	require.NoError(t, err)

	second, err := svc.Declare(ctx, attendance.DeclareRequest{
		EmployeeID: "emp-1",
		Date:       workday,
		CheckIn:    strPtr("09:00"),
		CheckOut:   strPtr("18:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	require.NotNil(t, second.WorkedMinutes)
	assert.Equal(t, 480, *second.WorkedMinutes)
}

func declareAnomalous(t *testing.T, svc attendance.Service) attendance.RecordResponse {
	t.Helper()

	resp, err := svc.Declare(context.Background(), attendance.DeclareRequest{
		EmployeeID: "emp-1",
		Date:       workday,
		CheckIn:    strPtr("09:00"),
		Status:     strPtr("present"),
	})
	require.NoError(t, err)
	require.True(t, resp.IsAnomaly)
	return resp
}

func TestResolveRequiresNotes(t *testing.T) {
	svc := newTestService(t)
	rec := declareAnomalous(t, svc)

	_, err := svc.Resolve(context.Background(), attendance.ResolveRequest{
		ID:      rec.ID,
		Status:  "present",
		ActorID: "admin-1",
	})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	// Failed resolution leaves the record unmodified.
	got, err := svc.Get(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.True(t, got.IsAnomaly)
	assert.False(t, got.AnomalyResolved)
	assert.Nil(t, got.ResolvedBy)
}

func TestResolveClearsAnomaly(t *testing.T) {
	svc := newTestService(t)
	rec := declareAnomalous(t, svc)

	resp, err := svc.Resolve(context.Background(), attendance.ResolveRequest{
		ID:              rec.ID,
		CheckOut:        strPtr("18:00"),
		Status:          "present",
		ResolutionNotes: "badge reader failed on exit",
		ActorID:         "admin-1",
	})
	require.NoError(t, err)

	assert.False(t, resp.StillAnomalous)
	assert.False(t, resp.Record.IsAnomaly)
	assert.True(t, resp.Record.AnomalyResolved)
	require.NotNil(t, resp.Record.ResolvedBy)
	assert.Equal(t, "admin-1", *resp.Record.ResolvedBy)
	require.NotNil(t, resp.Record.WorkedMinutes)
	assert.Equal(t, 480, *resp.Record.WorkedMinutes)
}

func TestResolveSurfacesNewAnomaly(t *testing.T) {
	svc := newTestService(t)
	rec := declareAnomalous(t, svc)

	// The correction itself trips the excessive hours rule.
	resp, err := svc.Resolve(context.Background(), attendance.ResolveRequest{
		ID:              rec.ID,
		CheckIn:         strPtr("06:00"),
		CheckOut:        strPtr("23:30"),
		Status:          "present",
		ResolutionNotes: "entered from paper log",
		ActorID:         "admin-1",
	})
	require.NoError(t, err)

	assert.True(t, resp.StillAnomalous)
	assert.True(t, resp.Record.IsAnomaly)
	require.NotNil(t, resp.Record.AnomalyType)
	assert.Equal(t, string(attendance.AnomalyExcessiveHours), *resp.Record.AnomalyType)
	assert.True(t, resp.Record.AnomalyResolved)
}

func TestResolveNonAnomalousRecordFails(t *testing.T) {
	svc := newTestService(t)

	clean, err := svc.Declare(context.Background(), attendance.DeclareRequest{
		EmployeeID: "emp-1",
		Date:       workday,
		CheckIn:    strPtr("09:00"),
		CheckOut:   strPtr("18:00"),
	})
	require.NoError(t, err)
	require.False(t, clean.IsAnomaly)

	_, err = svc.Resolve(context.Background(), attendance.ResolveRequest{
		ID:              clean.ID,
		Status:          "present",
		ResolutionNotes: "nothing to fix here",
		ActorID:         "admin-1",
	})
	assert.ErrorIs(t, err, attendance.ErrNotAnAnomaly)
}

func TestResolveTwiceFails(t *testing.T) {
	svc := newTestService(t)
	rec := declareAnomalous(t, svc)
	ctx := context.Background()

	_, err := svc.Resolve(ctx, attendance.ResolveRequest{
		ID:              rec.ID,
		CheckOut:        strPtr("18:00"),
		Status:          "present",
		ResolutionNotes: "badge reader failed",
		ActorID:         "admin-1",
	})
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, attendance.ResolveRequest{
		ID:              rec.ID,
		CheckOut:        strPtr("17:00"),
		Status:          "present",
		ResolutionNotes: "second opinion on exit time",
		ActorID:         "admin-2",
	})
	assert.Error(t, err)
}
