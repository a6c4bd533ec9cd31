package payroll

import (
	"context"

	"github.com/atlashr/timecore-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	payroll.PrimeTypeRepository
	payroll.EmployeePrimeRepository
}

func NewPayrollService(
	typeRepo payroll.PrimeTypeRepository,
	primeRepo payroll.EmployeePrimeRepository,
) payroll.Service {
	return &PayrollServiceImpl{
		PrimeTypeRepository:     typeRepo,
		EmployeePrimeRepository: primeRepo,
	}
}

// CreatePrimeType implements payroll.Service.
func (s *PayrollServiceImpl) CreatePrimeType(ctx context.Context, req *payroll.CreatePrimeTypeRequest) (*payroll.PrimeTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ceiling := decimal.Zero
	unit := payroll.ExemptionUnitMonth
	if payroll.PrimeCategory(req.Category) == payroll.PrimeCategoryExoneree {
		ceiling, _ = decimal.NewFromString(req.ExemptionCeiling)
		unit = payroll.ExemptionUnit(req.ExemptionUnit)
	}

	pt := &payroll.PrimeType{
		Code:             req.Code,
		Label:            req.Label,
		Category:         payroll.PrimeCategory(req.Category),
		ExemptionCeiling: ceiling,
		ExemptionUnit:    unit,
	}

	if err := s.PrimeTypeRepository.Create(ctx, pt); err != nil {
		return nil, err
	}
	resp := toPrimeTypeResponse(pt)
	return &resp, nil
}

// ListPrimeTypes implements payroll.Service.
func (s *PayrollServiceImpl) ListPrimeTypes(ctx context.Context) ([]payroll.PrimeTypeResponse, error) {
	types, err := s.PrimeTypeRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.PrimeTypeResponse, 0, len(types))
	for i := range types {
		result = append(result, toPrimeTypeResponse(&types[i]))
	}
	return result, nil
}

// AssignPrime implements payroll.Service.
func (s *PayrollServiceImpl) AssignPrime(ctx context.Context, req *payroll.AssignPrimeRequest) (*payroll.EmployeePrimeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The prime type must exist before it can be assigned.
	if _, err := s.PrimeTypeRepository.GetByCode(ctx, req.PrimeTypeCode); err != nil {
		return nil, err
	}

	amount, _ := decimal.NewFromString(req.Amount)
	ep := &payroll.EmployeePrime{
		EmployeeID:    req.EmployeeID,
		PrimeTypeCode: req.PrimeTypeCode,
		Amount:        amount,
		Frequency:     payroll.PrimeFrequency(req.Frequency),
		IsActive:      true,
	}

	if err := s.EmployeePrimeRepository.Create(ctx, ep); err != nil {
		return nil, err
	}
	resp := toEmployeePrimeResponse(ep)
	return &resp, nil
}

// ListEmployeePrimes implements payroll.Service.
func (s *PayrollServiceImpl) ListEmployeePrimes(ctx context.Context, employeeID string) ([]payroll.EmployeePrimeResponse, error) {
	primes, err := s.EmployeePrimeRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.EmployeePrimeResponse, 0, len(primes))
	for i := range primes {
		result = append(result, toEmployeePrimeResponse(&primes[i]))
	}
	return result, nil
}

// ExemptionStatement implements payroll.Service.
func (s *PayrollServiceImpl) ExemptionStatement(ctx context.Context, employeeID string, referenceSalary decimal.Decimal) (*payroll.StatementResponse, error) {
	primes, err := s.EmployeePrimeRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	types, err := s.PrimeTypeRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	catalog := make(map[string]payroll.PrimeType, len(types))
	for _, pt := range types {
		catalog[pt.Code] = pt
	}

	st := payroll.ComputeStatement(employeeID, primes, catalog, referenceSalary)

	resp := &payroll.StatementResponse{
		EmployeeID:   st.EmployeeID,
		Lines:        make([]payroll.ExemptionLineResponse, 0, len(st.Lines)),
		TotalExempt:  st.TotalExempt.String(),
		TotalTaxable: st.TotalTaxable.String(),
	}
	for _, line := range st.Lines {
		resp.Lines = append(resp.Lines, payroll.ExemptionLineResponse{
			PrimeTypeCode: line.PrimeTypeCode,
			Amount:        line.Amount.String(),
			Exempt:        line.Exempt.String(),
			Taxable:       line.Taxable.String(),
		})
	}
	return resp, nil
}

func toPrimeTypeResponse(pt *payroll.PrimeType) payroll.PrimeTypeResponse {
	return payroll.PrimeTypeResponse{
		ID:               pt.ID,
		Code:             pt.Code,
		Label:            pt.Label,
		Category:         string(pt.Category),
		ExemptionCeiling: pt.ExemptionCeiling.String(),
		ExemptionUnit:    string(pt.ExemptionUnit),
	}
}

func toEmployeePrimeResponse(ep *payroll.EmployeePrime) payroll.EmployeePrimeResponse {
	return payroll.EmployeePrimeResponse{
		ID:            ep.ID,
		EmployeeID:    ep.EmployeeID,
		PrimeTypeCode: ep.PrimeTypeCode,
		Amount:        ep.Amount.String(),
		Frequency:     string(ep.Frequency),
		IsActive:      ep.IsActive,
	}
}
