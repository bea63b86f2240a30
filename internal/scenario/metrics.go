package scenario

import (
	"math"

	"github.com/shopspring/decimal"

	"islm-sim/internal/model"
)

// Metrics are the equilibrium values as displayed next to the chart.
type Metrics struct {
	Output       string // Y*, two decimals
	InterestRate string // i*, two decimals with a percent sign
}

func NewMetrics(eq model.Equilibrium) Metrics {
	return Metrics{
		Output:       FormatFixed(eq.YStar),
		InterestRate: FormatFixed(eq.IStar) + "%",
	}
}

// exactExp is below any float64 exponent, so NewFromFloatWithExponent keeps every binary digit.
const exactExp = -1100

// FormatFixed renders x with two decimals the way printf's %.2f does: the exact
// binary value is rounded half to even, and a negative value that rounds to zero
// keeps its sign ("-0.00").
func FormatFixed(x float64) string {
	d := decimal.NewFromFloatWithExponent(x, exactExp).RoundBank(2)
	s := d.StringFixed(2)
	if d.IsZero() && math.Signbit(x) {
		return "-" + s
	}
	return s
}
