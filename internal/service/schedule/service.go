package schedule

import (
	"context"
	"time"

	"github.com/atlashr/timecore-backend-go/internal/domain/schedule"
)

type WorkScheduleServiceImpl struct {
	schedule.WorkScheduleRepository
}

func NewWorkScheduleService(repo schedule.WorkScheduleRepository) schedule.WorkScheduleService {
	return &WorkScheduleServiceImpl{WorkScheduleRepository: repo}
}

// Create implements schedule.WorkScheduleService.
func (s *WorkScheduleServiceImpl) Create(ctx context.Context, req schedule.CreateWorkScheduleRequest) (schedule.WorkScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	ws := schedule.WorkSchedule{
		Name:                         req.Name,
		LateToleranceMinutes:         req.LateToleranceMinutes,
		EarlyLeaveToleranceMinutes:   req.EarlyLeaveToleranceMinutes,
		DeductBreak:                  req.DeductBreak,
		BreakDeductionThresholdHours: req.BreakDeductionThresholdHours,
		MinHalfDayHours:              req.MinHalfDayHours,
		IsDefault:                    req.IsDefault,
	}

	for _, d := range req.Days {
		start, err := schedule.ParseTimeOfDay(d.Start)
		if err != nil {
			return schedule.WorkScheduleResponse{}, err
		}
		end, err := schedule.ParseTimeOfDay(d.End)
		if err != nil {
			return schedule.WorkScheduleResponse{}, err
		}
		ws.Days[time.Weekday(d.Weekday)] = &schedule.DayWindow{Start: start, End: end}
	}
	if req.BreakStart != nil && req.BreakEnd != nil {
		bs, err := schedule.ParseTimeOfDay(*req.BreakStart)
		if err != nil {
			return schedule.WorkScheduleResponse{}, err
		}
		be, err := schedule.ParseTimeOfDay(*req.BreakEnd)
		if err != nil {
			return schedule.WorkScheduleResponse{}, err
		}
		ws.BreakStart, ws.BreakEnd = &bs, &be
	}

	ws, err := s.WorkScheduleRepository.Create(ctx, ws)
	if err != nil {
		return schedule.WorkScheduleResponse{}, err
	}
	return toScheduleResponse(ws), nil
}

// Get implements schedule.WorkScheduleService.
func (s *WorkScheduleServiceImpl) Get(ctx context.Context, id string) (schedule.WorkScheduleResponse, error) {
	ws, err := s.WorkScheduleRepository.GetByID(ctx, id)
	if err != nil {
		return schedule.WorkScheduleResponse{}, err
	}
	return toScheduleResponse(ws), nil
}

// List implements schedule.WorkScheduleService.
func (s *WorkScheduleServiceImpl) List(ctx context.Context) ([]schedule.WorkScheduleResponse, error) {
	schedules, err := s.WorkScheduleRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]schedule.WorkScheduleResponse, 0, len(schedules))
	for _, ws := range schedules {
		result = append(result, toScheduleResponse(ws))
	}
	return result, nil
}

// Activate implements schedule.WorkScheduleService.
func (s *WorkScheduleServiceImpl) Activate(ctx context.Context, id string) (schedule.WorkScheduleResponse, error) {
	if err := s.WorkScheduleRepository.Activate(ctx, id); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}
	ws, err := s.WorkScheduleRepository.GetByID(ctx, id)
	if err != nil {
		return schedule.WorkScheduleResponse{}, err
	}
	return toScheduleResponse(ws), nil
}

func toScheduleResponse(ws schedule.WorkSchedule) schedule.WorkScheduleResponse {
	resp := schedule.WorkScheduleResponse{
		ID:                           ws.ID,
		Name:                         ws.Name,
		LateToleranceMinutes:         ws.LateToleranceMinutes,
		EarlyLeaveToleranceMinutes:   ws.EarlyLeaveToleranceMinutes,
		DeductBreak:                  ws.DeductBreak,
		BreakDeductionThresholdHours: ws.BreakDeductionThresholdHours,
		MinHalfDayHours:              ws.MinHalfDayHours,
		IsDefault:                    ws.IsDefault,
		IsActive:                     ws.IsActive,
	}
	for day, window := range ws.Days {
		if window == nil {
			continue
		}
		resp.Days = append(resp.Days, schedule.DayWindowRequest{
			Weekday: day,
			Start:   window.Start.String(),
			End:     window.End.String(),
		})
	}
	if ws.BreakStart != nil {
		s := ws.BreakStart.String()
		resp.BreakStart = &s
	}
	if ws.BreakEnd != nil {
		s := ws.BreakEnd.String()
		resp.BreakEnd = &s
	}
	return resp
}
