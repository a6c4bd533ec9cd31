package recovery

import (
	"context"
	"time"

	"github.com/atlashr/timecore-backend-go/internal/config"
	"github.com/atlashr/timecore-backend-go/internal/domain/recovery"
	"github.com/shopspring/decimal"
)

type RecoveryServiceImpl struct {
	periods      recovery.PeriodRepository
	declarations recovery.DeclarationRepository
	engine       config.EngineConfig
}

func NewRecoveryService(
	periods recovery.PeriodRepository,
	declarations recovery.DeclarationRepository,
	engine config.EngineConfig,
) recovery.Service {
	return &RecoveryServiceImpl{
		periods:      periods,
		declarations: declarations,
		engine:       engine,
	}
}

// CreatePeriod implements recovery.Service.
func (s *RecoveryServiceImpl) CreatePeriod(ctx context.Context, req *recovery.CreatePeriodRequest) (*recovery.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	total, _ := decimal.NewFromString(req.TotalHoursToRecover)

	period := &recovery.Period{
		Name:                req.Name,
		StartDate:           start,
		EndDate:             end,
		TotalHoursToRecover: total,
		Scope: recovery.Scope{
			Department: req.Department,
			Segment:    req.Segment,
			Centre:     req.Centre,
		},
	}

	if err := s.periods.Create(ctx, period); err != nil {
		return nil, err
	}
	return s.toPeriodResponse(ctx, period)
}

// GetPeriod implements recovery.Service.
func (s *RecoveryServiceImpl) GetPeriod(ctx context.Context, id string) (*recovery.PeriodResponse, error) {
	period, err := s.periods.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toPeriodResponse(ctx, period)
}

// ListPeriods implements recovery.Service.
func (s *RecoveryServiceImpl) ListPeriods(ctx context.Context) ([]recovery.PeriodResponse, error) {
	periods, err := s.periods.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]recovery.PeriodResponse, 0, len(periods))
	for i := range periods {
		resp, err := s.toPeriodResponse(ctx, &periods[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *resp)
	}
	return result, nil
}

// Declare implements recovery.Service. Day-off declarations carry zero
// hours and leave the period's debt untouched; the repository enforces the
// remaining-hours bound atomically for the rest.
func (s *RecoveryServiceImpl) Declare(ctx context.Context, req *recovery.DeclareRequest) (*recovery.DeclarationResponse, error) {
	req.MinNoteLen = s.engine.MinDeclarationNoteLen
	if err := req.Validate(); err != nil {
		return nil, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	decl := &recovery.Declaration{
		PeriodID: req.PeriodID,
		Date:     date,
		IsDayOff: req.IsDayOff,
		Notes:    req.Notes,
	}
	if req.IsDayOff {
		decl.HoursToRecover = decimal.Zero
	} else {
		hours, _ := decimal.NewFromString(req.Hours)
		if !hours.IsPositive() {
			return nil, recovery.ErrInvalidHours
		}
		decl.HoursToRecover = hours
	}

	if err := s.declarations.Declare(ctx, decl); err != nil {
		return nil, err
	}
	return s.toDeclarationResponse(ctx, decl)
}

// UpdateDeclaration implements recovery.Service.
func (s *RecoveryServiceImpl) UpdateDeclaration(ctx context.Context, req *recovery.UpdateDeclarationRequest) (*recovery.DeclarationResponse, error) {
	req.MinNoteLen = s.engine.MinDeclarationNoteLen
	if err := req.Validate(); err != nil {
		return nil, err
	}

	decl, err := s.declarations.GetDeclarationByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if decl.IsDayOff && req.Hours != nil {
		return nil, recovery.ErrDayOffDeclaration
	}

	if req.Date != nil {
		date, _ := time.Parse("2006-01-02", *req.Date)
		decl.Date = date
	}
	if req.Hours != nil {
		hours, _ := decimal.NewFromString(*req.Hours)
		if !hours.IsPositive() {
			return nil, recovery.ErrInvalidHours
		}
		decl.HoursToRecover = hours
	}
	if req.Notes != nil {
		decl.Notes = req.Notes
	}

	if err := s.declarations.Update(ctx, decl); err != nil {
		return nil, err
	}
	return s.toDeclarationResponse(ctx, decl)
}

// ListDeclarations implements recovery.Service.
func (s *RecoveryServiceImpl) ListDeclarations(ctx context.Context, periodID string) ([]recovery.DeclarationResponse, error) {
	decls, err := s.declarations.ListByPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}
	remaining, err := s.periods.Remaining(ctx, periodID)
	if err != nil {
		return nil, err
	}

	result := make([]recovery.DeclarationResponse, 0, len(decls))
	for i := range decls {
		result = append(result, declarationResponse(&decls[i], remaining))
	}
	return result, nil
}

func (s *RecoveryServiceImpl) toPeriodResponse(ctx context.Context, p *recovery.Period) (*recovery.PeriodResponse, error) {
	remaining, err := s.periods.Remaining(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return &recovery.PeriodResponse{
		ID:                  p.ID,
		Name:                p.Name,
		StartDate:           p.StartDate.Format("2006-01-02"),
		EndDate:             p.EndDate.Format("2006-01-02"),
		TotalHoursToRecover: p.TotalHoursToRecover.String(),
		HoursRemaining:      remaining.String(),
		Department:          p.Scope.Department,
		Segment:             p.Scope.Segment,
		Centre:              p.Scope.Centre,
		AppliesToAll:        p.Scope.AppliesToAll(),
	}, nil
}

func (s *RecoveryServiceImpl) toDeclarationResponse(ctx context.Context, d *recovery.Declaration) (*recovery.DeclarationResponse, error) {
	remaining, err := s.periods.Remaining(ctx, d.PeriodID)
	if err != nil {
		return nil, err
	}
	resp := declarationResponse(d, remaining)
	return &resp, nil
}

func declarationResponse(d *recovery.Declaration, remaining decimal.Decimal) recovery.DeclarationResponse {
	return recovery.DeclarationResponse{
		ID:                   d.ID,
		PeriodID:             d.PeriodID,
		Date:                 d.Date.Format("2006-01-02"),
		IsDayOff:             d.IsDayOff,
		HoursToRecover:       d.HoursToRecover.String(),
		Notes:                d.Notes,
		PeriodHoursRemaining: remaining.String(),
	}
}
