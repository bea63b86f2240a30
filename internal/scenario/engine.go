// Package scenario runs one recomputation cycle: solve, sample, and decide what the
// presentation layer should show.
package scenario

import (
	"fmt"
	"math"

	"islm-sim/internal/model"
	"islm-sim/internal/solver"
)

// DefaultYAxisFloor is the minimum upper bound of the interest-rate axis.
const DefaultYAxisFloor = 15.0

type Engine struct {
	Params     model.StructuralParams
	Domain     model.Domain
	YAxisFloor float64
}

// New returns an engine with validated parameters and domain.
func New(params model.StructuralParams, domain model.Domain, yAxisFloor float64) (*Engine, error) {
	if _, err := model.NewStructuralParams(params); err != nil {
		return nil, err
	}
	if err := domain.Validate(); err != nil {
		return nil, fmt.Errorf("invalid domain: %w", err)
	}
	if yAxisFloor <= 0 {
		yAxisFloor = DefaultYAxisFloor
	}
	return &Engine{Params: params, Domain: domain, YAxisFloor: yAxisFloor}, nil
}

// Default returns an engine over the textbook parameters and the dashboard domain.
func Default() *Engine {
	return &Engine{
		Params:     model.DefaultStructuralParams(),
		Domain:     model.DefaultDomain(),
		YAxisFloor: DefaultYAxisFloor,
	}
}

// WithParams returns a copy of e using params.
func (e *Engine) WithParams(params model.StructuralParams) (*Engine, error) {
	return New(params, e.Domain, e.YAxisFloor)
}

// Run executes one solve-and-sample cycle for the given policy.
func (e *Engine) Run(in model.PolicyInputs) (*Result, error) {
	if e == nil {
		return nil, fmt.Errorf("engine is nil")
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	sol, err := solver.Solve(in, e.Params)
	if err != nil {
		return nil, err
	}

	is := solver.SampleLine(sol.IS, e.Domain)
	lm := solver.SampleLine(sol.LM, e.Domain)

	window := Window{
		YMin: e.Domain.Min,
		YMax: e.Domain.Max,
		IMin: 0,
		IMax: math.Max(maxI(is), e.YAxisFloor),
	}

	res := &Result{
		Inputs:          in,
		Params:          e.Params,
		Solution:        sol,
		IS:              is,
		LM:              lm,
		Window:          window,
		MarkEquilibrium: e.Domain.Contains(sol.Equilibrium.YStar),
		Metrics:         NewMetrics(sol.Equilibrium),
	}
	res.Warnings = warningsFor(sol.Equilibrium, e.Domain, window)
	return res, nil
}

func maxI(pts []model.Point) float64 {
	m := math.Inf(-1)
	for _, p := range pts {
		if p.I > m {
			m = p.I
		}
	}
	return m
}

func warningsFor(eq model.Equilibrium, d model.Domain, w Window) []Warning {
	var out []Warning
	if !d.Contains(eq.YStar) {
		out = append(out, Warning{
			Code:    WarnOutsideDomain,
			Message: fmt.Sprintf("equilibrium income Y*=%.2f lies outside the plotted range (%g, %g); the point is not marked", eq.YStar, d.Min, d.Max),
		})
	}
	if eq.YStar < 0 {
		out = append(out, Warning{
			Code:    WarnNegativeIncome,
			Message: fmt.Sprintf("equilibrium income Y*=%.2f is negative", eq.YStar),
		})
	}
	if eq.IStar < 0 {
		out = append(out, Warning{
			Code:    WarnNegativeRate,
			Message: fmt.Sprintf("equilibrium interest rate i*=%.2f is negative", eq.IStar),
		})
	}
	if eq.IStar > w.IMax {
		out = append(out, Warning{
			Code:    WarnOutsideWindow,
			Message: fmt.Sprintf("equilibrium interest rate i*=%.2f is above the displayed axis bound %.2f", eq.IStar, w.IMax),
		})
	}
	return out
}
