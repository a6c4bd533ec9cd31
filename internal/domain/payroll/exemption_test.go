package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeExemption(t *testing.T) {
	tests := []struct {
		name        string
		pt          PrimeType
		amount      string
		refSalary   string
		wantExempt  string
		wantTaxable string
	}{
		{
			name: "exoneree above ceiling",
			pt: PrimeType{
				Code:             "transport",
				Category:         PrimeCategoryExoneree,
				ExemptionCeiling: dec("500"),
				ExemptionUnit:    ExemptionUnitMonth,
			},
			amount:      "700",
			refSalary:   "3000",
			wantExempt:  "500",
			wantTaxable: "200",
		},
		{
			name: "exoneree below ceiling",
			pt: PrimeType{
				Code:             "transport",
				Category:         PrimeCategoryExoneree,
				ExemptionCeiling: dec("500"),
				ExemptionUnit:    ExemptionUnitMonth,
			},
			amount:      "300",
			refSalary:   "3000",
			wantExempt:  "300",
			wantTaxable: "0",
		},
		{
			name: "exoneree exactly at ceiling",
			pt: PrimeType{
				Code:             "transport",
				Category:         PrimeCategoryExoneree,
				ExemptionCeiling: dec("500"),
				ExemptionUnit:    ExemptionUnitMonth,
			},
			amount:      "500",
			refSalary:   "3000",
			wantExempt:  "500",
			wantTaxable: "0",
		},
		{
			name: "imposable fully taxable",
			pt: PrimeType{
				Code:     "performance",
				Category: PrimeCategoryImposable,
			},
			amount:      "700",
			refSalary:   "3000",
			wantExempt:  "0",
			wantTaxable: "700",
		},
		{
			name: "percent ceiling against reference salary",
			pt: PrimeType{
				Code:             "representation",
				Category:         PrimeCategoryExoneree,
				ExemptionCeiling: dec("10"),
				ExemptionUnit:    ExemptionUnitPercent,
			},
			amount:      "400",
			refSalary:   "3000",
			wantExempt:  "300",
			wantTaxable: "100",
		},
		{
			name: "daily ceiling",
			pt: PrimeType{
				Code:             "meal",
				Category:         PrimeCategoryExoneree,
				ExemptionCeiling: dec("20"),
				ExemptionUnit:    ExemptionUnitDay,
			},
			amount:      "15",
			refSalary:   "3000",
			wantExempt:  "15",
			wantTaxable: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeExemption(tt.pt, dec(tt.amount), dec(tt.refSalary))
			if !got.Exempt.Equal(dec(tt.wantExempt)) {
				t.Errorf("exempt = %s, want %s", got.Exempt, tt.wantExempt)
			}
			if !got.Taxable.Equal(dec(tt.wantTaxable)) {
				t.Errorf("taxable = %s, want %s", got.Taxable, tt.wantTaxable)
			}
		})
	}
}

func TestComputeStatement(t *testing.T) {
	types := map[string]PrimeType{
		"transport": {
			Code:             "transport",
			Category:         PrimeCategoryExoneree,
			ExemptionCeiling: dec("500"),
			ExemptionUnit:    ExemptionUnitMonth,
		},
		"performance": {
			Code:     "performance",
			Category: PrimeCategoryImposable,
		},
	}

	primes := []EmployeePrime{
		{EmployeeID: "emp-1", PrimeTypeCode: "transport", Amount: dec("700"), IsActive: true},
		{EmployeeID: "emp-1", PrimeTypeCode: "performance", Amount: dec("1000"), IsActive: true},
		{EmployeeID: "emp-1", PrimeTypeCode: "transport", Amount: dec("999"), IsActive: false},
		{EmployeeID: "emp-2", PrimeTypeCode: "transport", Amount: dec("100"), IsActive: true},
		{EmployeeID: "emp-1", PrimeTypeCode: "unknown_code", Amount: dec("50"), IsActive: true},
	}

	st := ComputeStatement("emp-1", primes, types, dec("3000"))

	if len(st.Lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(st.Lines))
	}
	if !st.TotalExempt.Equal(dec("500")) {
		t.Errorf("total exempt = %s, want 500", st.TotalExempt)
	}
	if !st.TotalTaxable.Equal(dec("1200")) {
		t.Errorf("total taxable = %s, want 1200", st.TotalTaxable)
	}
}

func TestComputeStatementEmpty(t *testing.T) {
	st := ComputeStatement("emp-1", nil, nil, dec("3000"))
	if len(st.Lines) != 0 {
		t.Fatalf("lines = %d, want 0", len(st.Lines))
	}
	if !st.TotalExempt.IsZero() || !st.TotalTaxable.IsZero() {
		t.Errorf("totals = %s / %s, want zero", st.TotalExempt, st.TotalTaxable)
	}
}
