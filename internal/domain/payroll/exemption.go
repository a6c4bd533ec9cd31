package payroll

import "github.com/shopspring/decimal"

// Exemption splits one prime's amount into its exempt and taxable parts.
type Exemption struct {
	PrimeTypeCode string
	Amount        decimal.Decimal
	Exempt        decimal.Decimal
	Taxable       decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// CeilingFor resolves a prime type's ceiling to the same unit as the prime
// amount. Month and day ceilings are absolute figures; percent ceilings are
// a share of the reference salary.
func CeilingFor(pt PrimeType, referenceSalary decimal.Decimal) decimal.Decimal {
	if pt.ExemptionUnit == ExemptionUnitPercent {
		return pt.ExemptionCeiling.Mul(referenceSalary).Div(hundred)
	}
	return pt.ExemptionCeiling
}

// ComputeExemption splits a single prime amount. Imposable primes are fully
// taxable. Exoneree primes are exempt up to the resolved ceiling and the
// excess is taxable.
func ComputeExemption(pt PrimeType, amount, referenceSalary decimal.Decimal) Exemption {
	ex := Exemption{
		PrimeTypeCode: pt.Code,
		Amount:        amount,
		Exempt:        decimal.Zero,
		Taxable:       amount,
	}
	if pt.Category != PrimeCategoryExoneree {
		return ex
	}

	ceiling := CeilingFor(pt, referenceSalary)
	if ceiling.IsNegative() {
		ceiling = decimal.Zero
	}

	ex.Exempt = decimal.Min(amount, ceiling)
	ex.Taxable = amount.Sub(ex.Exempt)
	if ex.Taxable.IsNegative() {
		ex.Taxable = decimal.Zero
	}
	return ex
}

// Statement is the exemption breakdown for one employee's active primes.
type Statement struct {
	EmployeeID   string
	Lines        []Exemption
	TotalExempt  decimal.Decimal
	TotalTaxable decimal.Decimal
}

// ComputeStatement evaluates every active prime of one employee against the
// prime type catalog. Inactive primes and primes whose type code is unknown
// are skipped. Pure function, safe to call at any point in a payroll cycle.
func ComputeStatement(employeeID string, primes []EmployeePrime, types map[string]PrimeType, referenceSalary decimal.Decimal) Statement {
	st := Statement{
		EmployeeID:   employeeID,
		TotalExempt:  decimal.Zero,
		TotalTaxable: decimal.Zero,
	}
	for _, p := range primes {
		if !p.IsActive || p.EmployeeID != employeeID {
			continue
		}
		pt, ok := types[p.PrimeTypeCode]
		if !ok {
			continue
		}
		line := ComputeExemption(pt, p.Amount, referenceSalary)
		st.Lines = append(st.Lines, line)
		st.TotalExempt = st.TotalExempt.Add(line.Exempt)
		st.TotalTaxable = st.TotalTaxable.Add(line.Taxable)
	}
	return st
}
