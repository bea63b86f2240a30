// Package solver holds the closed-form IS-LM solve and the curve sampler.
package solver

import (
	"fmt"
	"math"

	"islm-sim/internal/model"
)

// Solution is the result of one solve: both lines and their intersection.
type Solution struct {
	// Autonomous is c0 + G - c1*T, demand that does not depend on income or the rate.
	Autonomous  float64
	IS          model.Line
	LM          model.Line
	Equilibrium model.Equilibrium
}

// Solve derives the IS and LM lines for the given policy and returns their intersection.
//
// The equilibrium is returned as computed, even when it implies negative income or a
// negative interest rate. Only non-finite inputs, a non-positive price level and
// degenerate parameters are rejected.
func Solve(in model.PolicyInputs, params model.StructuralParams) (Solution, error) {
	if err := params.Validate(); err != nil {
		return Solution{}, err
	}
	if err := checkFinite(in); err != nil {
		return Solution{}, err
	}
	if in.PriceLevel <= 0 {
		return Solution{}, fmt.Errorf("%w: price level must be > 0, got %g", model.ErrInvalidInputs, in.PriceLevel)
	}

	c0, c1 := params.AutonomousBase, params.MPC
	b2 := params.InvestmentInterestSensitivity
	h := params.MoneyDemandInterestSensitivity

	autonomous := c0 + in.GovernmentSpending - c1*in.Taxes
	B := params.ISSlopeMagnitude()
	lmSlope := params.LMSlope()
	alpha := lmSlope + B

	realBalances := in.MoneySupply / (in.PriceLevel * h)
	yStar := (autonomous/b2 + realBalances) / alpha
	iStar := lmSlope*yStar - realBalances

	if math.IsNaN(yStar) || math.IsInf(yStar, 0) || math.IsNaN(iStar) || math.IsInf(iStar, 0) {
		return Solution{}, fmt.Errorf("%w: equilibrium is not finite", model.ErrDegenerateModel)
	}

	return Solution{
		Autonomous: autonomous,
		IS: model.Line{
			Intercept: autonomous / b2,
			Slope:     -B,
		},
		LM: model.Line{
			Intercept: -(1 / h) * in.RealMoneySupply(),
			Slope:     lmSlope,
		},
		Equilibrium: model.Equilibrium{YStar: yStar, IStar: iStar},
	}, nil
}

func checkFinite(in model.PolicyInputs) error {
	for _, c := range model.PolicyControls {
		v, _ := in.Value(c.Key)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be a finite number", model.ErrInvalidInputs, c.Label)
		}
	}
	return nil
}
