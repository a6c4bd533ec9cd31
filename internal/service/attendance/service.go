package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atlashr/timecore-backend-go/internal/config"
	"github.com/atlashr/timecore-backend-go/internal/domain/attendance"
	"github.com/atlashr/timecore-backend-go/internal/domain/schedule"
)

type AttendanceServiceImpl struct {
	attendance.Repository
	schedules schedule.WorkScheduleRepository
	engine    config.EngineConfig
}

func NewAttendanceService(
	repo attendance.Repository,
	schedules schedule.WorkScheduleRepository,
	engine config.EngineConfig,
) attendance.Service {
	return &AttendanceServiceImpl{
		Repository: repo,
		schedules:  schedules,
		engine:     engine,
	}
}

// parseCheckTime accepts an RFC3339 timestamp or a bare "HH:MM" clock time
// anchored to the record's date.
func parseCheckTime(s *string, date time.Time) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, *s); err == nil {
		return &t, nil
	}
	tod, err := schedule.ParseTimeOfDay(*s)
	if err != nil {
		return nil, err
	}
	t := tod.On(date)
	return &t, nil
}

func (s *AttendanceServiceImpl) dayFor(ctx context.Context, date time.Time) (schedule.DaySchedule, error) {
	ws, err := s.schedules.GetActive(ctx)
	if err != nil {
		if errors.Is(err, schedule.ErrNoActiveSchedule) {
			// No schedule configured: every day is unscheduled, the
			// ledger still computes raw minutes.
			return schedule.DaySchedule{
				BreakDeductionThresholdHours: schedule.DefaultBreakDeductionThresholdHours,
			}, nil
		}
		return schedule.DaySchedule{}, fmt.Errorf("failed to get active work schedule: %w", err)
	}
	return ws.DayFor(date.Weekday()), nil
}

// evaluate runs the time ledger and anomaly detection over a record,
// filling the derived fields in place.
func (s *AttendanceServiceImpl) evaluate(rec *attendance.Record, day schedule.DaySchedule, statusSupplied bool) error {
	worked, err := attendance.ComputeWorkedMinutes(rec.CheckIn, rec.CheckOut, day)
	if err != nil {
		return err
	}
	rec.WorkedMinutes = worked

	punct := attendance.ClassifyPunctuality(rec.CheckIn, rec.CheckOut, rec.Date, day)
	rec.LateMinutes, rec.EarlyMinutes = nil, nil
	if punct.Late {
		late := punct.LateMinutes
		rec.LateMinutes = &late
	}
	if punct.EarlyLeave {
		early := punct.EarlyMinutes
		rec.EarlyMinutes = &early
	}

	if !statusSupplied {
		rec.Status = attendance.DeriveStatus(rec.CheckIn, rec.CheckOut, worked, punct, day)
	}

	anomaly := attendance.Detect(*rec, day, s.engine.MaxDailyWorkMinutes)
	rec.IsAnomaly = anomaly != nil
	rec.AnomalyType = anomaly
	return nil
}

// Declare implements attendance.Service.
func (s *AttendanceServiceImpl) Declare(ctx context.Context, req attendance.DeclareRequest) (attendance.RecordResponse, error) {
	req.MinNoteLen = s.engine.MinDeclarationNoteLen
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	day, err := s.dayFor(ctx, date)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	checkIn, err := parseCheckTime(req.CheckIn, date)
	if err != nil {
		return attendance.RecordResponse{}, attendance.ErrInvalidTimeRange
	}
	checkOut, err := parseCheckTime(req.CheckOut, date)
	if err != nil {
		return attendance.RecordResponse{}, attendance.ErrInvalidTimeRange
	}

	source := req.Source
	if source == "" {
		source = "manual"
	}

	rec := attendance.Record{
		EmployeeID:    req.EmployeeID,
		Date:          date,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		IsManualEntry: source == "manual",
		Source:        source,
		Notes:         req.Notes,
	}
	if req.Status != nil {
		rec.Status = attendance.Status(*req.Status)
	}
	if err := s.evaluate(&rec, day, req.Status != nil); err != nil {
		return attendance.RecordResponse{}, err
	}

	existing, err := s.Repository.GetByEmployeeAndDate(ctx, req.EmployeeID, req.Date)
	switch {
	case err == nil:
		// Admin edit of an existing day. Anomaly resolution metadata is
		// kept; detection ran against the new values.
		rec.ID = existing.ID
		rec.AnomalyResolved = existing.AnomalyResolved
		rec.ResolvedBy = existing.ResolvedBy
		rec.ResolvedAt = existing.ResolvedAt
		rec.ResolutionNotes = existing.ResolutionNotes
		rec.CreatedAt = existing.CreatedAt
		if err := s.Repository.Update(ctx, rec); err != nil {
			return attendance.RecordResponse{}, err
		}
	case errors.Is(err, attendance.ErrRecordNotFound):
		rec, err = s.Repository.Create(ctx, rec)
		if err != nil {
			return attendance.RecordResponse{}, err
		}
	default:
		return attendance.RecordResponse{}, err
	}

	return toRecordResponse(rec), nil
}

// Resolve implements attendance.Service.
func (s *AttendanceServiceImpl) Resolve(ctx context.Context, req attendance.ResolveRequest) (attendance.ResolveResponse, error) {
	req.MinNoteLen = s.engine.MinResolutionNoteLen
	if err := req.Validate(); err != nil {
		return attendance.ResolveResponse{}, err
	}

	rec, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.ResolveResponse{}, err
	}
	if !rec.IsAnomaly {
		return attendance.ResolveResponse{}, attendance.ErrNotAnAnomaly
	}
	if rec.AnomalyResolved {
		return attendance.ResolveResponse{}, attendance.ErrAlreadyResolved
	}

	guard := attendance.ResolveGuard{
		IsAnomaly:   rec.IsAnomaly,
		AnomalyType: rec.AnomalyType,
	}

	day, err := s.dayFor(ctx, rec.Date)
	if err != nil {
		return attendance.ResolveResponse{}, err
	}

	// Corrections overwrite; absent fields keep the stored values.
	if req.CheckIn != nil {
		if rec.CheckIn, err = parseCheckTime(req.CheckIn, rec.Date); err != nil {
			return attendance.ResolveResponse{}, attendance.ErrInvalidTimeRange
		}
	}
	if req.CheckOut != nil {
		if rec.CheckOut, err = parseCheckTime(req.CheckOut, rec.Date); err != nil {
			return attendance.ResolveResponse{}, attendance.ErrInvalidTimeRange
		}
	}
	rec.Status = attendance.Status(req.Status)

	if err := s.evaluate(&rec, day, true); err != nil {
		return attendance.ResolveResponse{}, err
	}

	now := time.Now()
	rec.AnomalyResolved = true
	rec.ResolvedBy = &req.ActorID
	rec.ResolvedAt = &now
	rec.ResolutionNotes = &req.ResolutionNotes

	if err := s.Repository.UpdateResolved(ctx, rec, guard); err != nil {
		return attendance.ResolveResponse{}, err
	}

	return attendance.ResolveResponse{
		Record:         toRecordResponse(rec),
		StillAnomalous: rec.IsAnomaly,
	}, nil
}

// Get implements attendance.Service.
func (s *AttendanceServiceImpl) Get(ctx context.Context, id string) (attendance.RecordResponse, error) {
	rec, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	return toRecordResponse(rec), nil
}

// List implements attendance.Service.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.Filter) (attendance.ListResponse, error) {
	records, total, err := s.Repository.List(ctx, filter)
	if err != nil {
		return attendance.ListResponse{}, err
	}

	resp := attendance.ListResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Records:    make([]attendance.RecordResponse, 0, len(records)),
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, toRecordResponse(rec))
	}
	return resp, nil
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func toRecordResponse(rec attendance.Record) attendance.RecordResponse {
	resp := attendance.RecordResponse{
		ID:            rec.ID,
		EmployeeID:    rec.EmployeeID,
		EmployeeName:  rec.EmployeeName,
		Date:          rec.Date.Format("2006-01-02"),
		CheckIn:       formatTimePtr(rec.CheckIn),
		CheckOut:      formatTimePtr(rec.CheckOut),
		Status:        string(rec.Status),
		WorkedMinutes: rec.WorkedMinutes,
		LateMinutes:   rec.LateMinutes,
		EarlyMinutes:  rec.EarlyMinutes,
		IsManualEntry: rec.IsManualEntry,
		Source:        rec.Source,
		Notes:         rec.Notes,

		IsAnomaly:       rec.IsAnomaly,
		AnomalyResolved: rec.AnomalyResolved,
		ResolvedBy:      rec.ResolvedBy,
		ResolvedAt:      formatTimePtr(rec.ResolvedAt),
		ResolutionNotes: rec.ResolutionNotes,
	}
	if rec.AnomalyType != nil {
		at := string(*rec.AnomalyType)
		resp.AnomalyType = &at
	}
	return resp
}
