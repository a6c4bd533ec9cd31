package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/atlashr/timecore-backend-go/internal/domain/payroll"
)

type PrimeTypeRepository struct {
	mu    sync.RWMutex
	types map[string]payroll.PrimeType // keyed by code
}

func NewPrimeTypeRepository() *PrimeTypeRepository {
	return &PrimeTypeRepository{
		types: make(map[string]payroll.PrimeType),
	}
}

func (r *PrimeTypeRepository) Create(_ context.Context, pt *payroll.PrimeType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.types[pt.Code]; ok {
		return payroll.ErrDuplicatePrimeCode
	}
	if pt.ID == "" {
		pt.ID = newID()
	}
	now := time.Now()
	pt.CreatedAt, pt.UpdatedAt = now, now
	r.types[pt.Code] = *pt
	return nil
}

func (r *PrimeTypeRepository) GetByCode(_ context.Context, code string) (*payroll.PrimeType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pt, ok := r.types[code]
	if !ok {
		return nil, payroll.ErrPrimeTypeNotFound
	}
	return &pt, nil
}

func (r *PrimeTypeRepository) List(_ context.Context) ([]payroll.PrimeType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]payroll.PrimeType, 0, len(r.types))
	for _, pt := range r.types {
		result = append(result, pt)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Code < result[j].Code })
	return result, nil
}

type EmployeePrimeRepository struct {
	mu     sync.RWMutex
	primes map[string]payroll.EmployeePrime
}

func NewEmployeePrimeRepository() *EmployeePrimeRepository {
	return &EmployeePrimeRepository{
		primes: make(map[string]payroll.EmployeePrime),
	}
}

func (r *EmployeePrimeRepository) Create(_ context.Context, ep *payroll.EmployeePrime) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ep.ID == "" {
		ep.ID = newID()
	}
	now := time.Now()
	ep.CreatedAt, ep.UpdatedAt = now, now
	r.primes[ep.ID] = *ep
	return nil
}

func (r *EmployeePrimeRepository) GetByID(_ context.Context, id string) (*payroll.EmployeePrime, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ep, ok := r.primes[id]
	if !ok {
		return nil, payroll.ErrEmployeePrimeNotFound
	}
	return &ep, nil
}

func (r *EmployeePrimeRepository) ListByEmployee(_ context.Context, employeeID string) ([]payroll.EmployeePrime, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []payroll.EmployeePrime
	for _, ep := range r.primes {
		if ep.EmployeeID == employeeID {
			result = append(result, ep)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].PrimeTypeCode < result[j].PrimeTypeCode })
	return result, nil
}

func (r *EmployeePrimeRepository) SetActive(_ context.Context, id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ep, ok := r.primes[id]
	if !ok {
		return payroll.ErrEmployeePrimeNotFound
	}
	ep.IsActive = active
	r.primes[id] = ep
	return nil
}
