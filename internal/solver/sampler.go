package solver

import "islm-sim/internal/model"

// Curve maps income Y to an interest rate.
type Curve func(y float64) float64

// Sample evaluates curve at d.Points evenly spaced incomes over [d.Min, d.Max].
// Both endpoints are included; the last point is exactly d.Max.
func Sample(curve Curve, d model.Domain) []model.Point {
	n := d.Points
	if n <= 0 || curve == nil {
		return nil
	}
	out := make([]model.Point, n)
	if n == 1 {
		out[0] = model.Point{Y: d.Min, I: curve(d.Min)}
		return out
	}
	step := (d.Max - d.Min) / float64(n-1)
	for k := 0; k < n; k++ {
		y := d.Min + float64(k)*step
		if k == n-1 {
			y = d.Max
		}
		out[k] = model.Point{Y: y, I: curve(y)}
	}
	return out
}

// SampleLine is Sample over a model.Line.
func SampleLine(l model.Line, d model.Domain) []model.Point {
	return Sample(l.At, d)
}
