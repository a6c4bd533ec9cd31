package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/atlashr/timecore-backend-go/internal/domain/recovery"
	"github.com/shopspring/decimal"
)

// RecoveryStore holds periods and declarations behind one mutex so a
// declaration's remaining-hours check and its insert are a single atomic
// step. It implements both recovery repository interfaces.
type RecoveryStore struct {
	mu           sync.RWMutex
	periods      map[string]recovery.Period
	declarations map[string]recovery.Declaration
}

func NewRecoveryStore() *RecoveryStore {
	return &RecoveryStore{
		periods:      make(map[string]recovery.Period),
		declarations: make(map[string]recovery.Declaration),
	}
}

func (s *RecoveryStore) Create(_ context.Context, period *recovery.Period) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if period.ID == "" {
		period.ID = newID()
	}
	now := time.Now()
	period.CreatedAt, period.UpdatedAt = now, now
	s.periods[period.ID] = *period
	return nil
}

func (s *RecoveryStore) GetByID(_ context.Context, id string) (*recovery.Period, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	period, ok := s.periods[id]
	if !ok {
		return nil, recovery.ErrPeriodNotFound
	}
	return &period, nil
}

func (s *RecoveryStore) List(_ context.Context) ([]recovery.Period, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]recovery.Period, 0, len(s.periods))
	for _, p := range s.periods {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartDate.Before(result[j].StartDate)
	})
	return result, nil
}

func (s *RecoveryStore) Remaining(_ context.Context, periodID string) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.remainingLocked(periodID, "")
}

// remainingLocked computes the period's debt minus every non-day-off
// declaration except the one identified by excludeID.
func (s *RecoveryStore) remainingLocked(periodID, excludeID string) (decimal.Decimal, error) {
	period, ok := s.periods[periodID]
	if !ok {
		return decimal.Zero, recovery.ErrPeriodNotFound
	}

	remaining := period.TotalHoursToRecover
	for _, d := range s.declarations {
		if d.PeriodID != periodID || d.IsDayOff || d.ID == excludeID {
			continue
		}
		remaining = remaining.Sub(d.HoursToRecover)
	}
	return remaining, nil
}

func (s *RecoveryStore) Declare(_ context.Context, decl *recovery.Declaration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining, err := s.remainingLocked(decl.PeriodID, "")
	if err != nil {
		return err
	}
	if !decl.IsDayOff && decl.HoursToRecover.GreaterThan(remaining) {
		return &recovery.InsufficientHoursError{
			PeriodID:  decl.PeriodID,
			Remaining: remaining,
			Requested: decl.HoursToRecover,
		}
	}

	if decl.ID == "" {
		decl.ID = newID()
	}
	now := time.Now()
	decl.CreatedAt, decl.UpdatedAt = now, now
	s.declarations[decl.ID] = *decl
	return nil
}

func (s *RecoveryStore) Update(_ context.Context, decl *recovery.Declaration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.declarations[decl.ID]; !ok {
		return recovery.ErrDeclarationNotFound
	}

	remaining, err := s.remainingLocked(decl.PeriodID, decl.ID)
	if err != nil {
		return err
	}
	if !decl.IsDayOff && decl.HoursToRecover.GreaterThan(remaining) {
		return &recovery.InsufficientHoursError{
			PeriodID:  decl.PeriodID,
			Remaining: remaining,
			Requested: decl.HoursToRecover,
		}
	}

	s.declarations[decl.ID] = *decl
	return nil
}

func (s *RecoveryStore) GetDeclarationByID(_ context.Context, id string) (*recovery.Declaration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	decl, ok := s.declarations[id]
	if !ok {
		return nil, recovery.ErrDeclarationNotFound
	}
	return &decl, nil
}

func (s *RecoveryStore) ListByPeriod(_ context.Context, periodID string) ([]recovery.Declaration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []recovery.Declaration
	for _, d := range s.declarations {
		if d.PeriodID == periodID {
			result = append(result, d)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result, nil
}

func (s *RecoveryStore) ListByPeriodAndDate(_ context.Context, periodID string, date string) ([]recovery.Declaration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []recovery.Declaration
	for _, d := range s.declarations {
		if d.PeriodID == periodID && d.Date.Format("2006-01-02") == date {
			result = append(result, d)
		}
	}
	return result, nil
}
