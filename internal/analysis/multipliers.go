package analysis

import (
	"islm-sim/internal/model"
	"islm-sim/internal/solver"
)

// Effect is the marginal response of the equilibrium to one policy input.
type Effect struct {
	DYStar float64
	DIStar float64
}

// Sensitivities holds the partial derivatives of (Y*, i*) at a given policy point.
//
// With A = c0 + G - c1*T and R = M/(P*h):
//
//	Y* = (A/b2 + R) / alpha
//	i* = (k/h)*Y* - R
//
// so each effect on i* is (k/h)*dY* minus the direct effect on R.
type Sensitivities struct {
	GovernmentSpending Effect // fiscal multiplier
	Taxes              Effect
	MoneySupply        Effect
	PriceLevel         Effect
}

// Multipliers evaluates the closed-form comparative statics at in.
func Multipliers(in model.PolicyInputs, params model.StructuralParams) (Sensitivities, error) {
	if _, err := solver.Solve(in, params); err != nil {
		return Sensitivities{}, err
	}
	b2 := params.InvestmentInterestSensitivity
	h := params.MoneyDemandInterestSensitivity
	alpha := params.Alpha()
	lm := params.LMSlope()

	dRdM := 1 / (in.PriceLevel * h)
	dRdP := -in.MoneySupply / (in.PriceLevel * in.PriceLevel * h)

	dYdG := (1 / b2) / alpha
	dYdT := (-params.MPC / b2) / alpha
	dYdM := dRdM / alpha
	dYdP := dRdP / alpha

	return Sensitivities{
		GovernmentSpending: Effect{DYStar: dYdG, DIStar: lm * dYdG},
		Taxes:              Effect{DYStar: dYdT, DIStar: lm * dYdT},
		MoneySupply:        Effect{DYStar: dYdM, DIStar: lm*dYdM - dRdM},
		PriceLevel:         Effect{DYStar: dYdP, DIStar: lm*dYdP - dRdP},
	}, nil
}
