package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atlashr/timecore-backend-go/internal/domain/overtime"
	"github.com/atlashr/timecore-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type overtimeRepository struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.Repository {
	return &overtimeRepository{db: db}
}

const overtimeColumns = `
	id, employee_id, date, start_time, end_time, estimated_hours,
	reason, priority, status,
	decided_by, decided_at, decision_comment,
	submitted_at, created_at, updated_at
`

func scanOvertimeRequest(row pgx.Row) (overtime.OvertimeRequest, error) {
	var req overtime.OvertimeRequest
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.Date, &req.StartTime, &req.EndTime, &req.EstimatedHours,
		&req.Reason, &req.Priority, &req.Status,
		&req.DecidedBy, &req.DecidedAt, &req.DecisionComment,
		&req.SubmittedAt, &req.CreatedAt, &req.UpdatedAt,
	)
	return req, err
}

// Create implements overtime.Repository.
func (r *overtimeRepository) Create(ctx context.Context, request overtime.OvertimeRequest) (overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtime_requests (
			id, employee_id, date, start_time, end_time, estimated_hours,
			reason, priority, status, submitted_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.Date, request.StartTime, request.EndTime, request.EstimatedHours,
		request.Reason, request.Priority, request.Status, request.SubmittedAt,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return overtime.OvertimeRequest{}, fmt.Errorf("failed to create overtime request: %w", err)
	}
	return request, nil
}

// GetByID implements overtime.Repository.
func (r *overtimeRepository) GetByID(ctx context.Context, id string) (overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + overtimeColumns + ` FROM overtime_requests WHERE id = $1`

	req, err := scanOvertimeRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.OvertimeRequest{}, overtime.ErrOvertimeRequestNotFound
		}
		return overtime.OvertimeRequest{}, fmt.Errorf("failed to get overtime request: %w", err)
	}
	return req, nil
}

// List implements overtime.Repository.
func (r *overtimeRepository) List(ctx context.Context, filter overtime.Filter) ([]overtime.OvertimeRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argPos := 1

	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", argPos))
		args = append(args, filter.EmployeeID)
		argPos++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, filter.Status)
		argPos++
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM overtime_requests` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count overtime requests: %w", err)
	}

	query := `SELECT ` + overtimeColumns + ` FROM overtime_requests` + where +
		` ORDER BY submitted_at DESC`
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
		return nil, 0, fmt.Errorf("failed to list overtime requests: %w", err)
	}
	defer rows.Close()

	var requests []overtime.OvertimeRequest
	for rows.Next() {
		req, err := scanOvertimeRequest(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan overtime request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate overtime requests: %w", err)
	}
	return requests, total, nil
}

// UpdateStatusGuarded implements overtime.Repository.
func (r *overtimeRepository) UpdateStatusGuarded(ctx context.Context, request overtime.OvertimeRequest, expected overtime.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE overtime_requests SET
			status = $2, decided_by = $3, decided_at = $4, decision_comment = $5,
			updated_at = NOW()
		WHERE id = $1 AND status = $6
	`

	tag, err := q.Exec(ctx, query,
		request.ID, request.Status,
		request.DecidedBy, request.DecidedAt, request.DecisionComment,
		expected,
	)
	if err != nil {
		return fmt.Errorf("failed to update overtime request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, getErr := r.GetByID(ctx, request.ID); getErr != nil {
			return getErr
		}
		return overtime.ErrConflict
	}
	return nil
}
