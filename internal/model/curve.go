package model

import (
	"errors"
	"math"
)

// Line is a linear relation i(Y) = Intercept + Slope*Y.
type Line struct {
	Intercept float64
	Slope     float64
}

// At evaluates the line at income y.
func (l Line) At(y float64) float64 {
	return l.Intercept + l.Slope*y
}

// Point is one (Y, i) pair on a curve.
type Point struct {
	Y float64
	I float64
}

// Domain is the income range a curve is sampled over, endpoints inclusive.
type Domain struct {
	Min    float64
	Max    float64
	Points int
}

// DefaultDomain is the plotted income range of the dashboard.
func DefaultDomain() Domain {
	return Domain{Min: 0, Max: 800, Points: 500}
}

func (d Domain) Validate() error {
	if math.IsNaN(d.Min) || math.IsNaN(d.Max) || math.IsInf(d.Min, 0) || math.IsInf(d.Max, 0) {
		return errors.New("domain bounds must be finite")
	}
	if d.Max <= d.Min {
		return errors.New("domain max must be greater than min")
	}
	if d.Points < 2 {
		return errors.New("domain must have at least 2 points")
	}
	return nil
}

// Contains reports whether y lies strictly inside the domain.
func (d Domain) Contains(y float64) bool {
	return y > d.Min && y < d.Max
}
