// Package memory provides in-memory repository implementations used by
// tests and local development. Mutations take the write lock for their
// whole read-validate-write sequence, so the guarded updates have the same
// exactly-one-winner behavior as the SQL implementations.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/atlashr/timecore-backend-go/internal/domain/attendance"
	"github.com/google/uuid"
)

// newID mirrors the uuidv7() default the SQL implementations rely on.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

type AttendanceRepository struct {
	mu      sync.RWMutex
	records map[string]attendance.Record
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{
		records: make(map[string]attendance.Record),
	}
}

func (r *AttendanceRepository) Create(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	date := rec.Date.Format("2006-01-02")
	for _, existing := range r.records {
		if existing.EmployeeID == rec.EmployeeID && existing.Date.Format("2006-01-02") == date {
			return attendance.Record{}, attendance.ErrDuplicateRecord
		}
	}

	if rec.ID == "" {
		rec.ID = newID()
	}
	now := time.Now()
	rec.CreatedAt, rec.UpdatedAt = now, now
	r.records[rec.ID] = rec
	return rec, nil
}

func (r *AttendanceRepository) GetByID(_ context.Context, id string) (attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[id]
	if !ok {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	return rec, nil
}

func (r *AttendanceRepository) GetByEmployeeAndDate(_ context.Context, employeeID, date string) (attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && rec.Date.Format("2006-01-02") == date {
			return rec, nil
		}
	}
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (r *AttendanceRepository) Update(_ context.Context, rec attendance.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[rec.ID]; !ok {
		return attendance.ErrRecordNotFound
	}
	r.records[rec.ID] = rec
	return nil
}

func (r *AttendanceRepository) UpdateResolved(_ context.Context, rec attendance.Record, guard attendance.ResolveGuard) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.records[rec.ID]
	if !ok {
		return attendance.ErrRecordNotFound
	}
	if stored.IsAnomaly != guard.IsAnomaly || !anomalyTypeEqual(stored.AnomalyType, guard.AnomalyType) || stored.AnomalyResolved {
		return attendance.ErrConflict
	}

	r.records[rec.ID] = rec
	return nil
}

func (r *AttendanceRepository) List(_ context.Context, filter attendance.Filter) ([]attendance.Record, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []attendance.Record
	for _, rec := range r.records {
		if filter.EmployeeID != "" && rec.EmployeeID != filter.EmployeeID {
			continue
		}
		date := rec.Date.Format("2006-01-02")
		if filter.From != "" && date < filter.From {
			continue
		}
		if filter.To != "" && date > filter.To {
			continue
		}
		if filter.OnlyAnomaly && !rec.IsAnomaly {
			continue
		}
		matched = append(matched, rec)
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].Date.Equal(matched[j].Date) {
			return matched[i].Date.After(matched[j].Date)
		}
		return matched[i].EmployeeID < matched[j].EmployeeID
	})

	total := int64(len(matched))
	return paginate(matched, filter.Page, filter.Limit), total, nil
}

func anomalyTypeEqual(a, b *attendance.AnomalyType) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func paginate[T any](items []T, page, limit int) []T {
	if limit <= 0 {
		return items
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return nil
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
