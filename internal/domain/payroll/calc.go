package payroll

import (
	"github.com/David-Smile/cloud-payroll-demo/internal/domain/employee"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Calculation holds the monetary result of running payroll for one employee.
type Calculation struct {
	GrossSalary decimal.Decimal
	TaxAmount   decimal.Decimal
	NetSalary   decimal.Decimal
}

// Calculate computes an employee's payroll for a period:
//
//	gross = baseSalary + bonuses
//	tax   = gross * taxRate / 100
//	net   = gross - tax - deductions
//
// Pure: no rounding beyond decimal arithmetic, no clamping. A negative net
// salary is a valid result signalling misconfigured deductions; callers
// decide whether to flag it (see Calculation.NetNegative).
func Calculate(e employee.Employee) Calculation {
	gross := e.BaseSalary.Add(e.Bonuses)
	tax := gross.Mul(e.TaxRate).Div(hundred)
	net := gross.Sub(tax).Sub(e.Deductions)

	return Calculation{
		GrossSalary: gross,
		TaxAmount:   tax,
		NetSalary:   net,
	}
}

// NetNegative reports whether deductions pushed the net salary below zero.
func (c Calculation) NetNegative() bool {
	return c.NetSalary.IsNegative()
}
