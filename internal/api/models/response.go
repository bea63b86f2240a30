package models

// EquilibriumResponse is the result of one recomputation.
type EquilibriumResponse struct {
	Inputs      PolicyValues    `json:"inputs"`
	Params      ParamsValues    `json:"params"`
	Autonomous  float64         `json:"autonomous"`
	IS          LineInfo        `json:"is"`
	LM          LineInfo        `json:"lm"`
	Equilibrium EquilibriumInfo `json:"equilibrium"`
	Metrics     MetricsInfo     `json:"metrics"`
	Window      WindowInfo      `json:"window"`
	Warnings    []WarningInfo   `json:"warnings"`
	Curves      *CurvesInfo     `json:"curves,omitempty"`
}

type PolicyValues struct {
	G float64 `json:"g"`
	T float64 `json:"t"`
	M float64 `json:"m"`
	P float64 `json:"p"`
	// RealMoneySupply is M/P.
	RealMoneySupply float64 `json:"real_money_supply"`
}

type ParamsValues struct {
	C0 float64 `json:"c0"`
	C1 float64 `json:"c1"`
	B1 float64 `json:"b1"`
	B2 float64 `json:"b2"`
	K  float64 `json:"k"`
	H  float64 `json:"h"`
}

// LineInfo describes i(Y) = intercept + slope*Y.
type LineInfo struct {
	Intercept float64 `json:"intercept"`
	Slope     float64 `json:"slope"`
}

type EquilibriumInfo struct {
	YStar float64 `json:"y_star"`
	IStar float64 `json:"i_star"`
	// Marked is false when the point lies outside the plotted domain.
	Marked bool `json:"marked"`
}

// MetricsInfo holds the display strings, two decimals each.
type MetricsInfo struct {
	Output       string `json:"output"`
	InterestRate string `json:"interest_rate"`
}

type WindowInfo struct {
	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`
	IMin float64 `json:"i_min"`
	IMax float64 `json:"i_max"`
}

type WarningInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CurvesInfo holds the sampled curves as parallel arrays over Y.
type CurvesInfo struct {
	Y  []float64 `json:"y"`
	IS []float64 `json:"is"`
	LM []float64 `json:"lm"`
}

// CompareResponse lists variations ranked by equilibrium income.
type CompareResponse struct {
	Base       EquilibriumInfo    `json:"base"`
	Comparison []ComparisonResult `json:"comparison"`
}

type ComparisonResult struct {
	Rank        int              `json:"rank,omitempty"`
	Name        string           `json:"name"`
	Inputs      PolicyValues     `json:"inputs"`
	Equilibrium *EquilibriumInfo `json:"equilibrium,omitempty"`
	DeltaYStar  float64          `json:"delta_y_star"`
	DeltaIStar  float64          `json:"delta_i_star"`
	OutputShift string           `json:"output_shift,omitempty"` // "UP", "DOWN", "UNCHANGED"
	RateShift   string           `json:"rate_shift,omitempty"`
	Error       *ErrorDetail     `json:"error,omitempty"`
}

// MultipliersResponse holds dY*/dx and di*/dx for each policy input.
type MultipliersResponse struct {
	Inputs  PolicyValues          `json:"inputs"`
	Effects map[string]EffectInfo `json:"effects"`
}

type EffectInfo struct {
	DYStar float64 `json:"d_y_star"`
	DIStar float64 `json:"d_i_star"`
}

// ControlInfo describes one input slider.
type ControlInfo struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default float64 `json:"default"`
}

// ParametersResponse is returned by GET /api/v1/parameters.
type ParametersResponse struct {
	Controls []ControlInfo `json:"controls"`
	Params   ParamsValues  `json:"params"`
	Domain   DomainInfo    `json:"domain"`
}

type DomainInfo struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Points int     `json:"points"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
