package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInputs is returned when a policy input is outside its declared range.
var ErrInvalidInputs = errors.New("invalid policy inputs")

// PolicyInputs are the fiscal and monetary policy levers of the model.
// Units are abstract model units; PriceLevel is an index.
type PolicyInputs struct {
	GovernmentSpending float64 // G
	Taxes              float64 // T
	MoneySupply        float64 // M, nominal
	PriceLevel         float64 // P
}

// Control describes one bounded input control (a slider on the dashboard).
type Control struct {
	Key     string
	Label   string
	Min     float64
	Max     float64
	Step    float64
	Default float64
}

// Keys of the policy controls. Keep these stable; they are used as query and form keys.
const (
	KeyGovernmentSpending = "g"
	KeyTaxes              = "t"
	KeyMoneySupply        = "m"
	KeyPriceLevel         = "p"
)

// PolicyControls lists the controls in display order: fiscal first, then monetary.
var PolicyControls = []Control{
	{Key: KeyGovernmentSpending, Label: "Government Spending (G)", Min: 10, Max: 100, Step: 1, Default: 50},
	{Key: KeyTaxes, Label: "Taxes (T)", Min: 10, Max: 100, Step: 1, Default: 40},
	{Key: KeyMoneySupply, Label: "Nominal Money Supply (M)", Min: 500, Max: 2000, Step: 1, Default: 1000},
	{Key: KeyPriceLevel, Label: "Price Level (P)", Min: 1.0, Max: 5.0, Step: 0.01, Default: 2.0},
}

// ControlFor returns the control registered under key.
func ControlFor(key string) (Control, bool) {
	for _, c := range PolicyControls {
		if c.Key == key {
			return c, true
		}
	}
	return Control{}, false
}

// DefaultPolicyInputs returns the slider defaults.
func DefaultPolicyInputs() PolicyInputs {
	return PolicyInputs{
		GovernmentSpending: 50,
		Taxes:              40,
		MoneySupply:        1000,
		PriceLevel:         2.0,
	}
}

// Value returns the input bound to a control key.
func (p PolicyInputs) Value(key string) (float64, bool) {
	switch key {
	case KeyGovernmentSpending:
		return p.GovernmentSpending, true
	case KeyTaxes:
		return p.Taxes, true
	case KeyMoneySupply:
		return p.MoneySupply, true
	case KeyPriceLevel:
		return p.PriceLevel, true
	}
	return 0, false
}

// Validate checks every input against its control range.
func (p PolicyInputs) Validate() error {
	for _, c := range PolicyControls {
		v, _ := p.Value(c.Key)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be a finite number", ErrInvalidInputs, c.Label)
		}
		if v < c.Min || v > c.Max {
			return fmt.Errorf("%w: %s must be within [%g, %g], got %g", ErrInvalidInputs, c.Label, c.Min, c.Max, v)
		}
	}
	return nil
}

// RealMoneySupply is M/P, the supply used by the LM relation.
func (p PolicyInputs) RealMoneySupply() float64 {
	return p.MoneySupply / p.PriceLevel
}
