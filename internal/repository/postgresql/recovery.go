package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/atlashr/timecore-backend-go/internal/domain/recovery"
	"github.com/atlashr/timecore-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// RecoveryRepository implements both recovery repository interfaces. Declare
// and Update lock the period row FOR UPDATE so the remaining-hours check and
// the declaration write are one atomic step.
type RecoveryRepository struct {
	db *database.DB
}

func NewRecoveryRepository(db *database.DB) *RecoveryRepository {
	return &RecoveryRepository{db: db}
}

var (
	_ recovery.PeriodRepository      = (*RecoveryRepository)(nil)
	_ recovery.DeclarationRepository = (*RecoveryRepository)(nil)
)

// Create implements recovery.PeriodRepository.
func (r *RecoveryRepository) Create(ctx context.Context, period *recovery.Period) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO recovery_periods (
			id, name, start_date, end_date, total_hours_to_recover,
			department, segment, centre
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		period.Name, period.StartDate, period.EndDate, period.TotalHoursToRecover,
		period.Scope.Department, period.Scope.Segment, period.Scope.Centre,
	).Scan(&period.ID, &period.CreatedAt, &period.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create recovery period: %w", err)
	}
	return nil
}

const periodColumns = `
	id, name, start_date, end_date, total_hours_to_recover,
	department, segment, centre, created_at, updated_at
`

func scanPeriod(row pgx.Row) (*recovery.Period, error) {
	var p recovery.Period
	err := row.Scan(
		&p.ID, &p.Name, &p.StartDate, &p.EndDate, &p.TotalHoursToRecover,
		&p.Scope.Department, &p.Scope.Segment, &p.Scope.Centre,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByID implements recovery.PeriodRepository.
func (r *RecoveryRepository) GetByID(ctx context.Context, id string) (*recovery.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM recovery_periods WHERE id = $1`

	p, err := scanPeriod(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, recovery.ErrPeriodNotFound
		}
		return nil, fmt.Errorf("failed to get recovery period: %w", err)
	}
	return p, nil
}

// List implements recovery.PeriodRepository.
func (r *RecoveryRepository) List(ctx context.Context) ([]recovery.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM recovery_periods ORDER BY start_date`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list recovery periods: %w", err)
	}
	defer rows.Close()

	var periods []recovery.Period
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recovery period: %w", err)
		}
		periods = append(periods, *p)
	}
	return periods, rows.Err()
}

// Remaining implements recovery.PeriodRepository.
func (r *RecoveryRepository) Remaining(ctx context.Context, periodID string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)
	return remaining(ctx, q, periodID, "", false)
}

// remaining computes the period's debt minus every non-day-off declaration
// except excludeID. With lock set, the period row is locked FOR UPDATE to
// serialize concurrent declarations.
func remaining(ctx context.Context, q database.Querier, periodID, excludeID string, lock bool) (decimal.Decimal, error) {
	query := `SELECT total_hours_to_recover FROM recovery_periods WHERE id = $1`
	if lock {
		query += ` FOR UPDATE`
	}

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, periodID).Scan(&total); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, recovery.ErrPeriodNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to get recovery period debt: %w", err)
	}

	var used decimal.Decimal
	sumQuery := `
		SELECT COALESCE(SUM(hours_to_recover), 0)
		FROM recovery_declarations
		WHERE period_id = $1 AND is_day_off = FALSE AND id <> $2
	`
	if err := q.QueryRow(ctx, sumQuery, periodID, excludeID).Scan(&used); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum recovery declarations: %w", err)
	}
	return total.Sub(used), nil
}

// Declare implements recovery.DeclarationRepository.
func (r *RecoveryRepository) Declare(ctx context.Context, decl *recovery.Declaration) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		rem, err := remaining(txCtx, q, decl.PeriodID, "", true)
		if err != nil {
			return err
		}
		if !decl.IsDayOff && decl.HoursToRecover.GreaterThan(rem) {
			return &recovery.InsufficientHoursError{
				PeriodID:  decl.PeriodID,
				Remaining: rem,
				Requested: decl.HoursToRecover,
			}
		}

		query := `
			INSERT INTO recovery_declarations (
				id, period_id, date, is_day_off, hours_to_recover, notes
			) VALUES (
				uuidv7(), $1, $2, $3, $4, $5
			) RETURNING id, created_at, updated_at
		`
		err = q.QueryRow(txCtx, query,
			decl.PeriodID, decl.Date, decl.IsDayOff, decl.HoursToRecover, decl.Notes,
		).Scan(&decl.ID, &decl.CreatedAt, &decl.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to create recovery declaration: %w", err)
		}
		return nil
	})
}

// Update implements recovery.DeclarationRepository.
func (r *RecoveryRepository) Update(ctx context.Context, decl *recovery.Declaration) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		rem, err := remaining(txCtx, q, decl.PeriodID, decl.ID, true)
		if err != nil {
			return err
		}
		if !decl.IsDayOff && decl.HoursToRecover.GreaterThan(rem) {
			return &recovery.InsufficientHoursError{
				PeriodID:  decl.PeriodID,
				Remaining: rem,
				Requested: decl.HoursToRecover,
			}
		}

		query := `
			UPDATE recovery_declarations SET
				date = $2, hours_to_recover = $3, notes = $4, updated_at = NOW()
			WHERE id = $1
		`
		tag, err := q.Exec(txCtx, query, decl.ID, decl.Date, decl.HoursToRecover, decl.Notes)
		if err != nil {
			return fmt.Errorf("failed to update recovery declaration: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return recovery.ErrDeclarationNotFound
		}
		return nil
	})
}

const declarationColumns = `
	id, period_id, date, is_day_off, hours_to_recover, notes,
	created_at, updated_at
`

func scanDeclaration(row pgx.Row) (*recovery.Declaration, error) {
	var d recovery.Declaration
	err := row.Scan(
		&d.ID, &d.PeriodID, &d.Date, &d.IsDayOff, &d.HoursToRecover, &d.Notes,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetDeclarationByID implements recovery.DeclarationRepository.
func (r *RecoveryRepository) GetDeclarationByID(ctx context.Context, id string) (*recovery.Declaration, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + declarationColumns + ` FROM recovery_declarations WHERE id = $1`

	d, err := scanDeclaration(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, recovery.ErrDeclarationNotFound
		}
		return nil, fmt.Errorf("failed to get recovery declaration: %w", err)
	}
	return d, nil
}

// ListByPeriod implements recovery.DeclarationRepository.
func (r *RecoveryRepository) ListByPeriod(ctx context.Context, periodID string) ([]recovery.Declaration, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + declarationColumns + ` FROM recovery_declarations WHERE period_id = $1 ORDER BY date`

	rows, err := q.Query(ctx, query, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recovery declarations: %w", err)
	}
	defer rows.Close()

	var decls []recovery.Declaration
	for rows.Next() {
		d, err := scanDeclaration(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recovery declaration: %w", err)
		}
		decls = append(decls, *d)
	}
	return decls, rows.Err()
}

// ListByPeriodAndDate implements recovery.DeclarationRepository.
func (r *RecoveryRepository) ListByPeriodAndDate(ctx context.Context, periodID string, date string) ([]recovery.Declaration, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + declarationColumns + ` FROM recovery_declarations WHERE period_id = $1 AND date = $2`

	rows, err := q.Query(ctx, query, periodID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list recovery declarations: %w", err)
	}
	defer rows.Close()

	var decls []recovery.Declaration
	for rows.Next() {
		d, err := scanDeclaration(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recovery declaration: %w", err)
		}
		decls = append(decls, *d)
	}
	return decls, rows.Err()
}
