package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atlashr/timecore-backend-go/internal/domain/attendance"
	"github.com/atlashr/timecore-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, employee_id, date, check_in, check_out, status,
	worked_minutes, late_minutes, early_minutes,
	is_manual_entry, source, notes,
	is_anomaly, anomaly_type, anomaly_resolved,
	resolved_by, resolved_at, resolution_notes,
	created_at, updated_at
`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.CheckIn, &rec.CheckOut, &rec.Status,
		&rec.WorkedMinutes, &rec.LateMinutes, &rec.EarlyMinutes,
		&rec.IsManualEntry, &rec.Source, &rec.Notes,
		&rec.IsAnomaly, &rec.AnomalyType, &rec.AnomalyResolved,
		&rec.ResolvedBy, &rec.ResolvedAt, &rec.ResolutionNotes,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Create implements attendance.Repository.
func (r *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			id, employee_id, date, check_in, check_out, status,
			worked_minutes, late_minutes, early_minutes,
			is_manual_entry, source, notes,
			is_anomaly, anomaly_type
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.EmployeeID, rec.Date, rec.CheckIn, rec.CheckOut, rec.Status,
		rec.WorkedMinutes, rec.LateMinutes, rec.EarlyMinutes,
		rec.IsManualEntry, rec.Source, rec.Notes,
		rec.IsAnomaly, rec.AnomalyType,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Record{}, attendance.ErrDuplicateRecord
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	return rec, nil
}

// GetByID implements attendance.Repository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE id = $1`

	rec, err := scanRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return rec, nil
}

// GetByEmployeeAndDate implements attendance.Repository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE employee_id = $1 AND date = $2 LIMIT 1`

	rec, err := scanRecord(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return rec, nil
}

// Update implements attendance.Repository.
func (r *attendanceRepository) Update(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records SET
			check_in = $2, check_out = $3, status = $4,
			worked_minutes = $5, late_minutes = $6, early_minutes = $7,
			is_manual_entry = $8, source = $9, notes = $10,
			is_anomaly = $11, anomaly_type = $12, anomaly_resolved = $13,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		rec.ID, rec.CheckIn, rec.CheckOut, rec.Status,
		rec.WorkedMinutes, rec.LateMinutes, rec.EarlyMinutes,
		rec.IsManualEntry, rec.Source, rec.Notes,
		rec.IsAnomaly, rec.AnomalyType, rec.AnomalyResolved,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}
	return nil
}

// UpdateResolved implements attendance.Repository. The WHERE clause repeats
// the anomaly state the resolver read, so a concurrent edit makes the update
// match zero rows and the caller gets ErrConflict instead of clobbering.
func (r *attendanceRepository) UpdateResolved(ctx context.Context, rec attendance.Record, guard attendance.ResolveGuard) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records SET
			check_in = $2, check_out = $3, status = $4,
			worked_minutes = $5, late_minutes = $6, early_minutes = $7,
			is_anomaly = $8, anomaly_type = $9, anomaly_resolved = $10,
			resolved_by = $11, resolved_at = $12, resolution_notes = $13,
			updated_at = NOW()
		WHERE id = $1
		  AND is_anomaly = $14
		  AND anomaly_type IS NOT DISTINCT FROM $15
		  AND anomaly_resolved = FALSE
	`

	tag, err := q.Exec(ctx, query,
		rec.ID, rec.CheckIn, rec.CheckOut, rec.Status,
		rec.WorkedMinutes, rec.LateMinutes, rec.EarlyMinutes,
		rec.IsAnomaly, rec.AnomalyType, rec.AnomalyResolved,
		rec.ResolvedBy, rec.ResolvedAt, rec.ResolutionNotes,
		guard.IsAnomaly, guard.AnomalyType,
	)
	if err != nil {
		return fmt.Errorf("failed to resolve attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, getErr := r.GetByID(ctx, rec.ID); getErr != nil {
			return getErr
		}
		return attendance.ErrConflict
	}
	return nil
}

// List implements attendance.Repository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argPos := 1

	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", argPos))
		args = append(args, filter.EmployeeID)
		argPos++
	}
	if filter.From != "" {
		conditions = append(conditions, fmt.Sprintf("date >= $%d", argPos))
		args = append(args, filter.From)
		argPos++
	}
	if filter.To != "" {
		conditions = append(conditions, fmt.Sprintf("date <= $%d", argPos))
		args = append(args, filter.To)
		argPos++
	}
	if filter.OnlyAnomaly {
		conditions = append(conditions, "is_anomaly = TRUE")
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM attendance_records` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	query := `SELECT ` + attendanceColumns + ` FROM attendance_records` + where +
		` ORDER BY date DESC, employee_id`
	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1)
		args = append(args, filter.Limit, (page-1)*filter.Limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendance records: %w", err)
	}
	return records, total, nil
}
