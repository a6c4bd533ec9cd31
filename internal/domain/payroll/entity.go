package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type PrimeCategory string

const (
	PrimeCategoryImposable PrimeCategory = "imposable"
	PrimeCategoryExoneree  PrimeCategory = "exoneree"
)

func (c PrimeCategory) IsValid() bool {
	return c == PrimeCategoryImposable || c == PrimeCategoryExoneree
}

// ExemptionUnit is the unit the ceiling is expressed in. Percent ceilings
// are resolved against a reference figure supplied by the caller, usually
// the base salary.
type ExemptionUnit string

const (
	ExemptionUnitMonth   ExemptionUnit = "month"
	ExemptionUnitDay     ExemptionUnit = "day"
	ExemptionUnitPercent ExemptionUnit = "percent"
)

func (u ExemptionUnit) IsValid() bool {
	switch u {
	case ExemptionUnitMonth, ExemptionUnitDay, ExemptionUnitPercent:
		return true
	}
	return false
}

type PrimeFrequency string

const (
	PrimeFrequencyMonthly PrimeFrequency = "monthly"
	PrimeFrequencyDaily   PrimeFrequency = "daily"
	PrimeFrequencyYearly  PrimeFrequency = "yearly"
	PrimeFrequencyOneTime PrimeFrequency = "one_time"
)

func (f PrimeFrequency) IsValid() bool {
	switch f {
	case PrimeFrequencyMonthly, PrimeFrequencyDaily, PrimeFrequencyYearly, PrimeFrequencyOneTime:
		return true
	}
	return false
}

// PrimeType is the catalog entry for a bonus or allowance component.
type PrimeType struct {
	ID               string
	Code             string
	Label            string
	Category         PrimeCategory
	ExemptionCeiling decimal.Decimal
	ExemptionUnit    ExemptionUnit

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmployeePrime assigns a prime type to an employee with a concrete amount.
type EmployeePrime struct {
	ID            string
	EmployeeID    string
	PrimeTypeCode string
	Amount        decimal.Decimal
	Frequency     PrimeFrequency
	IsActive      bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
