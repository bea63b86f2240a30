package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateModel is returned when the structural parameters admit no unique equilibrium.
var ErrDegenerateModel = errors.New("degenerate model")

// StructuralParams are the fixed behavioural constants of the closed-economy model.
//
// Consumption:  C = c0 + c1*(Y - T)
// Investment:   I = b1*Y - b2*i
// Money demand: M/P = k*Y - h*i
type StructuralParams struct {
	AutonomousBase                 float64 // c0
	MPC                            float64 // c1
	InvestmentIncomeSensitivity    float64 // b1
	InvestmentInterestSensitivity  float64 // b2
	MoneyDemandIncomeSensitivity   float64 // k
	MoneyDemandInterestSensitivity float64 // h
}

// DefaultStructuralParams returns the textbook calibration.
func DefaultStructuralParams() StructuralParams {
	return StructuralParams{
		AutonomousBase:                 100,
		MPC:                            0.6,
		InvestmentIncomeSensitivity:    0.2,
		InvestmentInterestSensitivity:  10,
		MoneyDemandIncomeSensitivity:   0.4,
		MoneyDemandInterestSensitivity: 20,
	}
}

// NewStructuralParams validates p and returns it unchanged on success.
func NewStructuralParams(p StructuralParams) (StructuralParams, error) {
	if err := p.Validate(); err != nil {
		return StructuralParams{}, err
	}
	return p, nil
}

// Validate rejects parameter sets that make the closed-form solve divide by zero.
func (p StructuralParams) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"c0", p.AutonomousBase},
		{"c1", p.MPC},
		{"b1", p.InvestmentIncomeSensitivity},
		{"b2", p.InvestmentInterestSensitivity},
		{"k", p.MoneyDemandIncomeSensitivity},
		{"h", p.MoneyDemandInterestSensitivity},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be finite", ErrDegenerateModel, f.name)
		}
	}
	if p.InvestmentInterestSensitivity == 0 {
		return fmt.Errorf("%w: b2 (interest sensitivity of investment) must be non-zero", ErrDegenerateModel)
	}
	if p.MoneyDemandInterestSensitivity == 0 {
		return fmt.Errorf("%w: h (interest sensitivity of money demand) must be non-zero", ErrDegenerateModel)
	}
	if a := p.Alpha(); a == 0 || math.IsNaN(a) || math.IsInf(a, 0) {
		return fmt.Errorf("%w: IS and LM slopes coincide (alpha = k/h + (1-c1-b1)/b2 = 0)", ErrDegenerateModel)
	}
	return nil
}

// ISSlopeMagnitude is B = (1-c1-b1)/b2, the negative of the IS slope.
func (p StructuralParams) ISSlopeMagnitude() float64 {
	return (1 - p.MPC - p.InvestmentIncomeSensitivity) / p.InvestmentInterestSensitivity
}

// LMSlope is k/h.
func (p StructuralParams) LMSlope() float64 {
	return p.MoneyDemandIncomeSensitivity / p.MoneyDemandInterestSensitivity
}

// Alpha is k/h + B, the denominator of the equilibrium income.
func (p StructuralParams) Alpha() float64 {
	return p.LMSlope() + p.ISSlopeMagnitude()
}
