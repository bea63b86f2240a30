package analysis

import (
	"math"
	"testing"

	"islm-sim/internal/model"
	"islm-sim/internal/scenario"
	"islm-sim/internal/solver"
)

func TestMultipliers_MatchFiniteDifferences(t *testing.T) {
	params := model.DefaultStructuralParams()
	in := model.PolicyInputs{GovernmentSpending: 60, Taxes: 35, MoneySupply: 1200, PriceLevel: 2.5}
	s, err := Multipliers(in, params)
	if err != nil {
		t.Fatal(err)
	}

	const eps = 1e-4
	diff := func(mutate func(*model.PolicyInputs, float64)) Effect {
		up, down := in, in
		mutate(&up, eps)
		mutate(&down, -eps)
		a, err := solver.Solve(up, params)
		if err != nil {
			t.Fatal(err)
		}
		b, err := solver.Solve(down, params)
		if err != nil {
			t.Fatal(err)
		}
		return Effect{
			DYStar: (a.Equilibrium.YStar - b.Equilibrium.YStar) / (2 * eps),
			DIStar: (a.Equilibrium.IStar - b.Equilibrium.IStar) / (2 * eps),
		}
	}

	cases := []struct {
		name   string
		got    Effect
		mutate func(*model.PolicyInputs, float64)
	}{
		{"G", s.GovernmentSpending, func(p *model.PolicyInputs, d float64) { p.GovernmentSpending += d }},
		{"T", s.Taxes, func(p *model.PolicyInputs, d float64) { p.Taxes += d }},
		{"M", s.MoneySupply, func(p *model.PolicyInputs, d float64) { p.MoneySupply += d }},
		{"P", s.PriceLevel, func(p *model.PolicyInputs, d float64) { p.PriceLevel += d }},
	}
	for _, tc := range cases {
		want := diff(tc.mutate)
		if math.Abs(tc.got.DYStar-want.DYStar) > 1e-4*math.Max(1, math.Abs(want.DYStar)) {
			t.Errorf("%s: dY* = %v, finite difference %v", tc.name, tc.got.DYStar, want.DYStar)
		}
		if math.Abs(tc.got.DIStar-want.DIStar) > 1e-4*math.Max(1, math.Abs(want.DIStar)) {
			t.Errorf("%s: di* = %v, finite difference %v", tc.name, tc.got.DIStar, want.DIStar)
		}
	}
}

func TestMultipliers_Signs(t *testing.T) {
	s, err := Multipliers(model.DefaultPolicyInputs(), model.DefaultStructuralParams())
	if err != nil {
		t.Fatal(err)
	}
	// Fiscal multiplier under defaults: (1/10)/0.04 = 2.5.
	if math.Abs(s.GovernmentSpending.DYStar-2.5) > 1e-9 {
		t.Errorf("fiscal multiplier = %v, want 2.5", s.GovernmentSpending.DYStar)
	}
	if s.GovernmentSpending.DIStar <= 0 {
		t.Error("fiscal expansion should raise the rate")
	}
	if s.Taxes.DYStar >= 0 {
		t.Error("tax increase should lower output")
	}
	if s.MoneySupply.DYStar <= 0 || s.MoneySupply.DIStar >= 0 {
		t.Errorf("monetary expansion should raise Y* and lower i*, got %+v", s.MoneySupply)
	}
	if s.PriceLevel.DYStar >= 0 || s.PriceLevel.DIStar <= 0 {
		t.Errorf("higher prices should lower Y* and raise i*, got %+v", s.PriceLevel)
	}
}

func TestCompare(t *testing.T) {
	base := model.PolicyInputs{GovernmentSpending: 50, Taxes: 40, MoneySupply: 1000, PriceLevel: 2.0}
	loose := base
	loose.MoneySupply = 2000
	same := base
	bad := base
	bad.PriceLevel = 9

	baseRes, cs, err := Compare(scenario.Default(), base, []NamedInputs{
		{Name: "monetary expansion", Inputs: loose},
		{Name: "no change", Inputs: same},
		{Name: "out of range", Inputs: bad},
	})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(baseRes.Solution.Equilibrium.YStar-940) > 1e-9 {
		t.Errorf("base Y* = %v", baseRes.Solution.Equilibrium.YStar)
	}
	if len(cs) != 3 {
		t.Fatalf("comparisons = %d, want 3", len(cs))
	}
	if cs[0].OutputDir != Up || cs[0].RateDir != Down {
		t.Errorf("monetary expansion directions = %s/%s, want UP/DOWN", cs[0].OutputDir, cs[0].RateDir)
	}
	if cs[1].OutputDir != Unchanged || cs[1].DeltaYStar != 0 {
		t.Errorf("no change = %+v", cs[1])
	}
	if cs[2].Err == nil || cs[2].Result != nil {
		t.Errorf("out of range variation should fail, got %+v", cs[2])
	}

	ranked := RankByOutput(cs)
	if ranked[0].Name != "monetary expansion" {
		t.Errorf("top ranked = %q", ranked[0].Name)
	}
	if ranked[2].Name != "out of range" {
		t.Errorf("failed comparison should rank last, got %q", ranked[2].Name)
	}
	if cs[0].Name != "monetary expansion" || cs[2].Name != "out of range" {
		t.Error("RankByOutput must not reorder its input")
	}
}

func TestCompare_BaseInvalid(t *testing.T) {
	bad := model.DefaultPolicyInputs()
	bad.GovernmentSpending = 0
	if _, _, err := Compare(scenario.Default(), bad, nil); err == nil {
		t.Error("expected error for invalid base")
	}
}
