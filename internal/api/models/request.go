package models

import "islm-sim/internal/model"

// PolicyRequest carries the four policy sliders. Nil fields keep their base value.
type PolicyRequest struct {
	G *float64 `json:"g,omitempty" form:"g"` // government spending
	T *float64 `json:"t,omitempty" form:"t"` // taxes
	M *float64 `json:"m,omitempty" form:"m"` // nominal money supply
	P *float64 `json:"p,omitempty" form:"p"` // price level
}

// Apply overlays the set fields onto base.
func (r PolicyRequest) Apply(base model.PolicyInputs) model.PolicyInputs {
	out := base
	if r.G != nil {
		out.GovernmentSpending = *r.G
	}
	if r.T != nil {
		out.Taxes = *r.T
	}
	if r.M != nil {
		out.MoneySupply = *r.M
	}
	if r.P != nil {
		out.PriceLevel = *r.P
	}
	return out
}

// ParamsOverride replaces individual structural parameters for one request.
type ParamsOverride struct {
	C0 *float64 `json:"c0,omitempty"`
	C1 *float64 `json:"c1,omitempty"`
	B1 *float64 `json:"b1,omitempty"`
	B2 *float64 `json:"b2,omitempty"`
	K  *float64 `json:"k,omitempty"`
	H  *float64 `json:"h,omitempty"`
}

func (o *ParamsOverride) Apply(base model.StructuralParams) model.StructuralParams {
	out := base
	if o == nil {
		return out
	}
	set := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	set(&out.AutonomousBase, o.C0)
	set(&out.MPC, o.C1)
	set(&out.InvestmentIncomeSensitivity, o.B1)
	set(&out.InvestmentInterestSensitivity, o.B2)
	set(&out.MoneyDemandIncomeSensitivity, o.K)
	set(&out.MoneyDemandInterestSensitivity, o.H)
	return out
}

// IsEmpty reports whether the override changes nothing.
func (o *ParamsOverride) IsEmpty() bool {
	return o == nil || (o.C0 == nil && o.C1 == nil && o.B1 == nil && o.B2 == nil && o.K == nil && o.H == nil)
}

// EquilibriumRequest is the body of POST /api/v1/equilibrium and the query of the GET form.
type EquilibriumRequest struct {
	PolicyRequest
	Params        *ParamsOverride `json:"params,omitempty" form:"-"`
	IncludeCurves bool            `json:"include_curves,omitempty" form:"include_curves"`
}

// ChartRequest is the query of GET /api/v1/chart.
type ChartRequest struct {
	PolicyRequest
	Format string  `form:"format"` // png (default), svg, pdf
	Width  float64 `form:"width"`
	Height float64 `form:"height"`
}

// CompareRequest compares named policy variations against a base.
type CompareRequest struct {
	Base       PolicyRequest   `json:"base"`
	Params     *ParamsOverride `json:"params,omitempty"`
	Variations []Variation     `json:"variations" binding:"required,min=1,dive"`
}

// Variation fields left unset inherit the base inputs.
type Variation struct {
	Name   string        `json:"name" binding:"required"`
	Inputs PolicyRequest `json:"inputs"`
}
