package data

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"islm-sim/internal/analysis"
	"islm-sim/internal/model"
)

// ScenarioFile is a baseline plus named policy variations.
//
// Example:
//
//	{
//	  "base": {"g": 50, "t": 40, "m": 1000, "p": 2.0},
//	  "variations": [
//	    {"name": "fiscal expansion", "inputs": {"g": 80}}
//	  ]
//	}
//
// Fields missing from the base take the slider defaults; fields missing from a
// variation take the base value.
type ScenarioFile struct {
	Base       model.PolicyInputs
	Variations []analysis.NamedInputs
}

func LoadScenarios(path string) (*ScenarioFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sf, err := ParseScenarios(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sf, nil
}

func ParseScenarios(raw []byte) (*ScenarioFile, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errors.New("scenario file is not valid JSON")
	}
	doc := gjson.ParseBytes(raw)

	base, err := overlayInputs(model.DefaultPolicyInputs(), doc.Get("base"))
	if err != nil {
		return nil, fmt.Errorf("base: %w", err)
	}
	out := &ScenarioFile{Base: base}

	var perr error
	doc.Get("variations").ForEach(func(idx, v gjson.Result) bool {
		name := v.Get("name").String()
		if name == "" {
			name = fmt.Sprintf("variation %d", idx.Int()+1)
		}
		in, err := overlayInputs(base, v.Get("inputs"))
		if err != nil {
			perr = fmt.Errorf("%s: %w", name, err)
			return false
		}
		out.Variations = append(out.Variations, analysis.NamedInputs{Name: name, Inputs: in})
		return true
	})
	if perr != nil {
		return nil, perr
	}
	return out, nil
}

// overlayInputs replaces fields of base with the numbers present in obj.
// Keys are the control keys (g, t, m, p).
func overlayInputs(base model.PolicyInputs, obj gjson.Result) (model.PolicyInputs, error) {
	if !obj.Exists() {
		return base, nil
	}
	if !obj.IsObject() {
		return base, errors.New("inputs must be an object")
	}
	out := base
	targets := map[string]*float64{
		model.KeyGovernmentSpending: &out.GovernmentSpending,
		model.KeyTaxes:              &out.Taxes,
		model.KeyMoneySupply:        &out.MoneySupply,
		model.KeyPriceLevel:         &out.PriceLevel,
	}
	for _, c := range model.PolicyControls {
		v := obj.Get(c.Key)
		if !v.Exists() {
			continue
		}
		if v.Type != gjson.Number {
			return base, fmt.Errorf("%s must be a number", c.Key)
		}
		*targets[c.Key] = v.Float()
	}
	return out, nil
}
