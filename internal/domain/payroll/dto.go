package payroll

import (
	"github.com/atlashr/timecore-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePrimeTypeRequest struct {
	Code             string `json:"code"`
	Label            string `json:"label"`
	Category         string `json:"category"`
	ExemptionCeiling string `json:"exemption_ceiling"`
	ExemptionUnit    string `json:"exemption_unit"`
}

func (r *CreatePrimeTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	}
	if validator.IsEmpty(r.Label) {
		errs = append(errs, validator.ValidationError{
			Field:   "label",
			Message: "label is required",
		})
	}
	if !PrimeCategory(r.Category).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be imposable or exoneree",
		})
	}
	if PrimeCategory(r.Category) == PrimeCategoryExoneree {
		ceiling, err := decimal.NewFromString(r.ExemptionCeiling)
		if err != nil || ceiling.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "exemption_ceiling",
				Message: "exemption_ceiling must be a non-negative number",
			})
		}
		if !ExemptionUnit(r.ExemptionUnit).IsValid() {
			errs = append(errs, validator.ValidationError{
				Field:   "exemption_unit",
				Message: "exemption_unit must be month, day or percent",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignPrimeRequest struct {
	EmployeeID    string `json:"employee_id"`
	PrimeTypeCode string `json:"prime_type_code"`
	Amount        string `json:"amount"`
	Frequency     string `json:"frequency"`
}

func (r *AssignPrimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.PrimeTypeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "prime_type_code",
			Message: "prime_type_code is required",
		})
	}
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil || !amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be a positive number",
		})
	}
	if !PrimeFrequency(r.Frequency).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "frequency",
			Message: "frequency must be monthly, daily, yearly or one_time",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ExemptionLineResponse struct {
	PrimeTypeCode string `json:"prime_type_code"`
	Amount        string `json:"amount"`
	Exempt        string `json:"exempt"`
	Taxable       string `json:"taxable"`
}

type StatementResponse struct {
	EmployeeID   string                  `json:"employee_id"`
	Lines        []ExemptionLineResponse `json:"lines"`
	TotalExempt  string                  `json:"total_exempt"`
	TotalTaxable string                  `json:"total_taxable"`
}

type PrimeTypeResponse struct {
	ID               string `json:"id"`
	Code             string `json:"code"`
	Label            string `json:"label"`
	Category         string `json:"category"`
	ExemptionCeiling string `json:"exemption_ceiling"`
	ExemptionUnit    string `json:"exemption_unit"`
}

type EmployeePrimeResponse struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	PrimeTypeCode string `json:"prime_type_code"`
	Amount        string `json:"amount"`
	Frequency     string `json:"frequency"`
	IsActive      bool   `json:"is_active"`
}
