package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atlashr/timecore-backend-go/internal/domain/schedule"
	"github.com/atlashr/timecore-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type workScheduleRepository struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.WorkScheduleRepository {
	return &workScheduleRepository{db: db}
}

// Day windows and break times are stored as "HH:MM" text, NULL meaning a
// non-working day or no break.
func timeOfDayToText(t *schedule.TimeOfDay) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}

func textToTimeOfDay(s *string) (*schedule.TimeOfDay, error) {
	if s == nil {
		return nil, nil
	}
	t, err := schedule.ParseTimeOfDay(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func windowColumns(w *schedule.DayWindow) (*string, *string) {
	if w == nil {
		return nil, nil
	}
	return timeOfDayToText(&w.Start), timeOfDayToText(&w.End)
}

func columnsToWindow(start, end *string) (*schedule.DayWindow, error) {
	if start == nil || end == nil {
		return nil, nil
	}
	s, err := schedule.ParseTimeOfDay(*start)
	if err != nil {
		return nil, err
	}
	e, err := schedule.ParseTimeOfDay(*end)
	if err != nil {
		return nil, err
	}
	return &schedule.DayWindow{Start: s, End: e}, nil
}

const workScheduleColumns = `
	id, name,
	sun_start, sun_end, mon_start, mon_end, tue_start, tue_end,
	wed_start, wed_end, thu_start, thu_end, fri_start, fri_end,
	sat_start, sat_end,
	break_start, break_end,
	late_tolerance_minutes, early_leave_tolerance_minutes,
	deduct_break, break_deduction_threshold_hours, min_half_day_hours,
	is_default, is_active, created_at, updated_at
`

func scanWorkSchedule(row pgx.Row) (schedule.WorkSchedule, error) {
	var ws schedule.WorkSchedule
	var dayText [7][2]*string
	var breakStart, breakEnd *string

	err := row.Scan(
		&ws.ID, &ws.Name,
		&dayText[time.Sunday][0], &dayText[time.Sunday][1],
		&dayText[time.Monday][0], &dayText[time.Monday][1],
		&dayText[time.Tuesday][0], &dayText[time.Tuesday][1],
		&dayText[time.Wednesday][0], &dayText[time.Wednesday][1],
		&dayText[time.Thursday][0], &dayText[time.Thursday][1],
		&dayText[time.Friday][0], &dayText[time.Friday][1],
		&dayText[time.Saturday][0], &dayText[time.Saturday][1],
		&breakStart, &breakEnd,
		&ws.LateToleranceMinutes, &ws.EarlyLeaveToleranceMinutes,
		&ws.DeductBreak, &ws.BreakDeductionThresholdHours, &ws.MinHalfDayHours,
		&ws.IsDefault, &ws.IsActive, &ws.CreatedAt, &ws.UpdatedAt,
	)
	if err != nil {
		return schedule.WorkSchedule{}, err
	}

	for day := range ws.Days {
		ws.Days[day], err = columnsToWindow(dayText[day][0], dayText[day][1])
		if err != nil {
			return schedule.WorkSchedule{}, err
		}
	}
	if ws.BreakStart, err = textToTimeOfDay(breakStart); err != nil {
		return schedule.WorkSchedule{}, err
	}
	if ws.BreakEnd, err = textToTimeOfDay(breakEnd); err != nil {
		return schedule.WorkSchedule{}, err
	}
	return ws, nil
}

func workScheduleArgs(ws schedule.WorkSchedule) []interface{} {
	args := []interface{}{ws.Name}
	for day := time.Sunday; day <= time.Saturday; day++ {
		start, end := windowColumns(ws.Days[day])
		args = append(args, start, end)
	}
	args = append(args,
		timeOfDayToText(ws.BreakStart), timeOfDayToText(ws.BreakEnd),
		ws.LateToleranceMinutes, ws.EarlyLeaveToleranceMinutes,
		ws.DeductBreak, ws.BreakDeductionThresholdHours, ws.MinHalfDayHours,
		ws.IsDefault, ws.IsActive,
	)
	return args
}

// Create implements schedule.WorkScheduleRepository.
func (r *workScheduleRepository) Create(ctx context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_schedules (
			id, name,
			sun_start, sun_end, mon_start, mon_end, tue_start, tue_end,
			wed_start, wed_end, thu_start, thu_end, fri_start, fri_end,
			sat_start, sat_end,
			break_start, break_end,
			late_tolerance_minutes, early_leave_tolerance_minutes,
			deduct_break, break_deduction_threshold_hours, min_half_day_hours,
			is_default, is_active
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, workScheduleArgs(ws)...).
		Scan(&ws.ID, &ws.CreatedAt, &ws.UpdatedAt)
	if err != nil {
		return schedule.WorkSchedule{}, fmt.Errorf("failed to create work schedule: %w", err)
	}
	return ws, nil
}

// GetByID implements schedule.WorkScheduleRepository.
func (r *workScheduleRepository) GetByID(ctx context.Context, id string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workScheduleColumns + ` FROM work_schedules WHERE id = $1`

	ws, err := scanWorkSchedule(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WorkSchedule{}, schedule.ErrWorkScheduleNotFound
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get work schedule: %w", err)
	}
	return ws, nil
}

// GetActive implements schedule.WorkScheduleRepository.
func (r *workScheduleRepository) GetActive(ctx context.Context) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workScheduleColumns + ` FROM work_schedules WHERE is_active = TRUE LIMIT 1`

	ws, err := scanWorkSchedule(q.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WorkSchedule{}, schedule.ErrNoActiveSchedule
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get active work schedule: %w", err)
	}
	return ws, nil
}

// List implements schedule.WorkScheduleRepository.
func (r *workScheduleRepository) List(ctx context.Context) ([]schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workScheduleColumns + ` FROM work_schedules ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list work schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.WorkSchedule
	for rows.Next() {
		ws, err := scanWorkSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work schedule: %w", err)
		}
		schedules = append(schedules, ws)
	}
	return schedules, rows.Err()
}

// Update implements schedule.WorkScheduleRepository.
func (r *workScheduleRepository) Update(ctx context.Context, ws schedule.WorkSchedule) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_schedules SET
			name = $2,
			sun_start = $3, sun_end = $4, mon_start = $5, mon_end = $6,
			tue_start = $7, tue_end = $8, wed_start = $9, wed_end = $10,
			thu_start = $11, thu_end = $12, fri_start = $13, fri_end = $14,
			sat_start = $15, sat_end = $16,
			break_start = $17, break_end = $18,
			late_tolerance_minutes = $19, early_leave_tolerance_minutes = $20,
			deduct_break = $21, break_deduction_threshold_hours = $22,
			min_half_day_hours = $23, is_default = $24, is_active = $25,
			updated_at = NOW()
		WHERE id = $1
	`

	args := append([]interface{}{ws.ID}, workScheduleArgs(ws)...)
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update work schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrWorkScheduleNotFound
	}
	return nil
}

// Activate implements schedule.WorkScheduleRepository. Deactivating the
// previous schedule and activating the target happen in one transaction so
// the one-active invariant cannot be observed broken.
func (r *workScheduleRepository) Activate(ctx context.Context, id string) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		if _, err := q.Exec(txCtx, `UPDATE work_schedules SET is_active = FALSE, updated_at = NOW() WHERE is_active = TRUE`); err != nil {
			return fmt.Errorf("failed to deactivate work schedules: %w", err)
		}

		tag, err := q.Exec(txCtx, `UPDATE work_schedules SET is_active = TRUE, updated_at = NOW() WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to activate work schedule: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return schedule.ErrWorkScheduleNotFound
		}
		return nil
	})
}
