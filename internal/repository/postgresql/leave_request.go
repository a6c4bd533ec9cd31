package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atlashr/timecore-backend-go/internal/domain/leave"
	"github.com/atlashr/timecore-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.leave_type_id,
	lr.start_date, lr.end_date, lr.start_half_day, lr.end_half_day, lr.total_days,
	lr.reason, lr.status,
	lr.n1_approver_id, lr.n1_approved_at, lr.n1_comment,
	lr.n2_approver_id, lr.n2_approved_at, lr.n2_comment,
	lr.hr_approver_id, lr.hr_approved_at, lr.hr_comment,
	lr.rejected_by, lr.rejected_at, lr.rejection_reason,
	lr.submitted_at, lr.created_at, lr.updated_at,
	lt.name AS leave_type_name
`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	var n1ID, n2ID, hrID *string
	var n1At, n2At, hrAt *time.Time
	var n1Comment, n2Comment, hrComment *string

	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.LeaveTypeID,
		&req.StartDate, &req.EndDate, &req.StartHalfDay, &req.EndHalfDay, &req.TotalDays,
		&req.Reason, &req.Status,
		&n1ID, &n1At, &n1Comment,
		&n2ID, &n2At, &n2Comment,
		&hrID, &hrAt, &hrComment,
		&req.RejectedBy, &req.RejectedAt, &req.RejectionReason,
		&req.SubmittedAt, &req.CreatedAt, &req.UpdatedAt,
		&req.LeaveTypeName,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	if n1ID != nil {
		req.N1 = &leave.StageApproval{ApproverID: *n1ID, ApprovedAt: *n1At, Comment: *n1Comment}
	}
	if n2ID != nil {
		req.N2 = &leave.StageApproval{ApproverID: *n2ID, ApprovedAt: *n2At, Comment: *n2Comment}
	}
	if hrID != nil {
		req.HR = &leave.StageApproval{ApproverID: *hrID, ApprovedAt: *hrAt, Comment: *hrComment}
	}
	return req, nil
}

func stageColumns(s *leave.StageApproval) (*string, *time.Time, *string) {
	if s == nil {
		return nil, nil, nil
	}
	return &s.ApproverID, &s.ApprovedAt, &s.Comment
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type_id,
			start_date, end_date, start_half_day, end_half_day, total_days,
			reason, status, submitted_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.LeaveTypeID,
		request.StartDate, request.EndDate, request.StartHalfDay, request.EndHalfDay, request.TotalDays,
		request.Reason, request.Status, request.SubmittedAt,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN leave_types lt ON lt.id = lr.leave_type_id
		WHERE lr.id = $1`

	req, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return req, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) List(ctx context.Context, filter leave.Filter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argPos := 1

	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("lr.employee_id = $%d", argPos))
		args = append(args, filter.EmployeeID)
		argPos++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("lr.status = $%d", argPos))
		args = append(args, filter.Status)
		argPos++
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM leave_requests lr` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	query := `SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN leave_types lt ON lt.id = lr.leave_type_id` + where +
		` ORDER BY lr.submitted_at DESC`
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
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate leave requests: %w", err)
	}
	return requests, total, nil
}

// CheckOverlapping implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) CheckOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1
			  AND status <> 'rejected'
			  AND start_date <= $3
			  AND end_date >= $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check overlapping leave: %w", err)
	}
	return exists, nil
}

// UpdateStatusGuarded implements leave.LeaveRequestRepository. The expected
// status in the WHERE clause is the compare-and-set: when two approvers race
// on the same stage only the first update matches a row, the second sees
// zero rows affected and gets ErrConflict.
func (r *leaveRequestRepository) UpdateStatusGuarded(ctx context.Context, request leave.LeaveRequest, expected leave.RequestStatus) error {
	q := GetQuerier(ctx, r.db)

	n1ID, n1At, n1Comment := stageColumns(request.N1)
	n2ID, n2At, n2Comment := stageColumns(request.N2)
	hrID, hrAt, hrComment := stageColumns(request.HR)

	query := `
		UPDATE leave_requests SET
			status = $2,
			n1_approver_id = $3, n1_approved_at = $4, n1_comment = $5,
			n2_approver_id = $6, n2_approved_at = $7, n2_comment = $8,
			hr_approver_id = $9, hr_approved_at = $10, hr_comment = $11,
			rejected_by = $12, rejected_at = $13, rejection_reason = $14,
			updated_at = NOW()
		WHERE id = $1 AND status = $15
	`

	tag, err := q.Exec(ctx, query,
		request.ID, request.Status,
		n1ID, n1At, n1Comment,
		n2ID, n2At, n2Comment,
		hrID, hrAt, hrComment,
		request.RejectedBy, request.RejectedAt, request.RejectionReason,
		expected,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, getErr := r.GetByID(ctx, request.ID); getErr != nil {
			return getErr
		}
		return leave.ErrConflict
	}
	return nil
}
