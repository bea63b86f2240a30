package scenario

import (
	"islm-sim/internal/model"
	"islm-sim/internal/solver"
)

// WarningCode values are stable; they are part of the API and CLI output.
type WarningCode string

const (
	WarnOutsideDomain  WarningCode = "EQUILIBRIUM_OUTSIDE_DOMAIN"
	WarnNegativeIncome WarningCode = "NEGATIVE_INCOME"
	WarnNegativeRate   WarningCode = "NEGATIVE_INTEREST_RATE"
	WarnOutsideWindow  WarningCode = "EQUILIBRIUM_OUTSIDE_WINDOW"
)

type Warning struct {
	Code    WarningCode
	Message string
}

// Window is the visible chart area.
type Window struct {
	YMin, YMax float64
	IMin, IMax float64
}

// Result is everything one render pass needs. It is never reused across recomputations.
type Result struct {
	Inputs   model.PolicyInputs
	Params   model.StructuralParams
	Solution solver.Solution

	IS []model.Point
	LM []model.Point

	Window Window
	// MarkEquilibrium is false when Y* falls outside the sampled domain.
	MarkEquilibrium bool
	Warnings        []Warning
	Metrics         Metrics
}

// HasWarning reports whether the result carries a warning with the given code.
func (r *Result) HasWarning(code WarningCode) bool {
	for _, w := range r.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}
