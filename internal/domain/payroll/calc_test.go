package payroll

import (
	"testing"

	"github.com/David-Smile/cloud-payroll-demo/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCalculate(t *testing.T) {
	cases := []struct {
		name       string
		baseSalary string
		bonuses    string
		deductions string
		taxRate    string
		wantGross  string
		wantTax    string
		wantNet    string
	}{
		{
			name:       "base with bonus and deduction",
			baseSalary: "5000", bonuses: "500", deductions: "200", taxRate: "20",
			wantGross: "5500", wantTax: "1100", wantNet: "4200",
		},
		{
			name:       "no bonus no deduction",
			baseSalary: "3000", bonuses: "0", deductions: "0", taxRate: "10",
			wantGross: "3000", wantTax: "300", wantNet: "2700",
		},
		{
			name:       "zero tax rate",
			baseSalary: "1000", bonuses: "250", deductions: "50", taxRate: "0",
			wantGross: "1250", wantTax: "0", wantNet: "1200",
		},
		{
			name:       "full tax rate",
			baseSalary: "1000", bonuses: "0", deductions: "0", taxRate: "100",
			wantGross: "1000", wantTax: "1000", wantNet: "0",
		},
		{
			name:       "fractional tax rate keeps precision",
			baseSalary: "3333", bonuses: "0", deductions: "0", taxRate: "12.5",
			wantGross: "3333", wantTax: "416.625", wantNet: "2916.375",
		},
		{
			name:       "zero salary",
			baseSalary: "0", bonuses: "0", deductions: "0", taxRate: "20",
			wantGross: "0", wantTax: "0", wantNet: "0",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := employee.Employee{
				BaseSalary: dec(c.baseSalary),
				Bonuses:    dec(c.bonuses),
				Deductions: dec(c.deductions),
				TaxRate:    dec(c.taxRate),
			}
			got := Calculate(e)
			assert.True(t, got.GrossSalary.Equal(dec(c.wantGross)), "gross = %s, want %s", got.GrossSalary, c.wantGross)
			assert.True(t, got.TaxAmount.Equal(dec(c.wantTax)), "tax = %s, want %s", got.TaxAmount, c.wantTax)
			assert.True(t, got.NetSalary.Equal(dec(c.wantNet)), "net = %s, want %s", got.NetSalary, c.wantNet)
		})
	}
}

func TestCalculateNegativeNetIsNotClamped(t *testing.T) {
	e := employee.Employee{
		BaseSalary: dec("1000"),
		Bonuses:    dec("0"),
		Deductions: dec("1500"),
		TaxRate:    dec("10"),
	}
	got := Calculate(e)
	assert.True(t, got.NetSalary.Equal(dec("-600")), "net = %s, want -600", got.NetSalary)
	assert.True(t, got.NetNegative())
}

func TestCalculateIsPure(t *testing.T) {
	e := employee.Employee{
		BaseSalary: dec("5000"),
		Bonuses:    dec("500"),
		Deductions: dec("200"),
		TaxRate:    dec("20"),
	}
	first := Calculate(e)
	second := Calculate(e)
	assert.True(t, first.GrossSalary.Equal(second.GrossSalary))
	assert.True(t, first.TaxAmount.Equal(second.TaxAmount))
	assert.True(t, first.NetSalary.Equal(second.NetSalary))
	// Input untouched
	assert.True(t, e.BaseSalary.Equal(dec("5000")))
}
