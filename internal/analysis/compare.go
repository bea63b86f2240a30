// Package analysis compares policy scenarios against a baseline.
package analysis

import (
	"islm-sim/internal/model"
	"islm-sim/internal/scenario"
)

// NamedInputs is one labelled policy scenario.
type NamedInputs struct {
	Name   string
	Inputs model.PolicyInputs
}

// Direction of a shift relative to the baseline.
type Direction string

const (
	Up        Direction = "UP"
	Down      Direction = "DOWN"
	Unchanged Direction = "UNCHANGED"
)

func DirectionOf(delta float64) Direction {
	switch {
	case delta > 0:
		return Up
	case delta < 0:
		return Down
	default:
		return Unchanged
	}
}

// Comparison is one variation measured against the baseline.
// Result is nil and Err is set when the variation could not be solved.
type Comparison struct {
	Name   string
	Inputs model.PolicyInputs
	Result *scenario.Result
	Err    error

	DeltaYStar float64
	DeltaIStar float64
	OutputDir  Direction
	RateDir    Direction
}

// Compare runs the baseline and every variation through engine.
func Compare(engine *scenario.Engine, base model.PolicyInputs, variations []NamedInputs) (*scenario.Result, []Comparison, error) {
	baseRes, err := engine.Run(base)
	if err != nil {
		return nil, nil, err
	}
	baseEq := baseRes.Solution.Equilibrium

	out := make([]Comparison, 0, len(variations))
	for _, v := range variations {
		res, err := engine.Run(v.Inputs)
		if err != nil {
			out = append(out, Comparison{Name: v.Name, Inputs: v.Inputs, Err: err})
			continue
		}
		eq := res.Solution.Equilibrium
		dY := eq.YStar - baseEq.YStar
		dI := eq.IStar - baseEq.IStar
		out = append(out, Comparison{
			Name:       v.Name,
			Inputs:     v.Inputs,
			Result:     res,
			DeltaYStar: dY,
			DeltaIStar: dI,
			OutputDir:  DirectionOf(dY),
			RateDir:    DirectionOf(dI),
		})
	}
	return baseRes, out, nil
}
