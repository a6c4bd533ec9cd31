package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/atlashr/timecore-backend-go/internal/domain/payroll"
	"github.com/atlashr/timecore-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type primeTypeRepository struct {
	db *database.DB
}

func NewPrimeTypeRepository(db *database.DB) payroll.PrimeTypeRepository {
	return &primeTypeRepository{db: db}
}

// Create implements payroll.PrimeTypeRepository.
func (r *primeTypeRepository) Create(ctx context.Context, pt *payroll.PrimeType) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO prime_types (
			id, code, label, category, exemption_ceiling, exemption_unit
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		pt.Code, pt.Label, pt.Category, pt.ExemptionCeiling, pt.ExemptionUnit,
	).Scan(&pt.ID, &pt.CreatedAt, &pt.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return payroll.ErrDuplicatePrimeCode
		}
		return fmt.Errorf("failed to create prime type: %w", err)
	}
	return nil
}

// GetByCode implements payroll.PrimeTypeRepository.
func (r *primeTypeRepository) GetByCode(ctx context.Context, code string) (*payroll.PrimeType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, label, category, exemption_ceiling, exemption_unit,
			   created_at, updated_at
		FROM prime_types
		WHERE code = $1
	`

	var pt payroll.PrimeType
	err := q.QueryRow(ctx, query, code).Scan(
		&pt.ID, &pt.Code, &pt.Label, &pt.Category, &pt.ExemptionCeiling, &pt.ExemptionUnit,
		&pt.CreatedAt, &pt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrPrimeTypeNotFound
		}
		return nil, fmt.Errorf("failed to get prime type: %w", err)
	}
	return &pt, nil
}

// List implements payroll.PrimeTypeRepository.
func (r *primeTypeRepository) List(ctx context.Context) ([]payroll.PrimeType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, label, category, exemption_ceiling, exemption_unit,
			   created_at, updated_at
		FROM prime_types
		ORDER BY code
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list prime types: %w", err)
	}
	defer rows.Close()

	var types []payroll.PrimeType
	for rows.Next() {
		var pt payroll.PrimeType
		if err := rows.Scan(
			&pt.ID, &pt.Code, &pt.Label, &pt.Category, &pt.ExemptionCeiling, &pt.ExemptionUnit,
			&pt.CreatedAt, &pt.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan prime type: %w", err)
		}
		types = append(types, pt)
	}
	return types, rows.Err()
}

type employeePrimeRepository struct {
	db *database.DB
}

func NewEmployeePrimeRepository(db *database.DB) payroll.EmployeePrimeRepository {
	return &employeePrimeRepository{db: db}
}

// Create implements payroll.EmployeePrimeRepository.
func (r *employeePrimeRepository) Create(ctx context.Context, ep *payroll.EmployeePrime) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_primes (
			id, employee_id, prime_type_code, amount, frequency, is_active
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		ep.EmployeeID, ep.PrimeTypeCode, ep.Amount, ep.Frequency, ep.IsActive,
	).Scan(&ep.ID, &ep.CreatedAt, &ep.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create employee prime: %w", err)
	}
	return nil
}

// GetByID implements payroll.EmployeePrimeRepository.
func (r *employeePrimeRepository) GetByID(ctx context.Context, id string) (*payroll.EmployeePrime, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, prime_type_code, amount, frequency, is_active,
			   created_at, updated_at
		FROM employee_primes
		WHERE id = $1
	`

	var ep payroll.EmployeePrime
	err := q.QueryRow(ctx, query, id).Scan(
		&ep.ID, &ep.EmployeeID, &ep.PrimeTypeCode, &ep.Amount, &ep.Frequency, &ep.IsActive,
		&ep.CreatedAt, &ep.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrEmployeePrimeNotFound
		}
		return nil, fmt.Errorf("failed to get employee prime: %w", err)
	}
	return &ep, nil
}

// ListByEmployee implements payroll.EmployeePrimeRepository.
func (r *employeePrimeRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.EmployeePrime, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, prime_type_code, amount, frequency, is_active,
			   created_at, updated_at
		FROM employee_primes
		WHERE employee_id = $1
		ORDER BY prime_type_code
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee primes: %w", err)
	}
	defer rows.Close()

	var primes []payroll.EmployeePrime
	for rows.Next() {
		var ep payroll.EmployeePrime
		if err := rows.Scan(
			&ep.ID, &ep.EmployeeID, &ep.PrimeTypeCode, &ep.Amount, &ep.Frequency, &ep.IsActive,
			&ep.CreatedAt, &ep.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee prime: %w", err)
		}
		primes = append(primes, ep)
	}
	return primes, rows.Err()
}

// SetActive implements payroll.EmployeePrimeRepository.
func (r *employeePrimeRepository) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE employee_primes SET is_active = $2, updated_at = NOW() WHERE id = $1`,
		id, active,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee prime: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrEmployeePrimeNotFound
	}
	return nil
}
