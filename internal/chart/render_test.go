package chart

import (
	"bytes"
	"strings"
	"testing"

	"islm-sim/internal/model"
	"islm-sim/internal/scenario"
)

func run(t *testing.T, in model.PolicyInputs) *scenario.Result {
	t.Helper()
	res, err := scenario.Default().Run(in)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestBuild_WindowAndLabels(t *testing.T) {
	res := run(t, model.DefaultPolicyInputs())
	p, err := Build(res)
	if err != nil {
		t.Fatal(err)
	}
	if p.X.Label.Text != XLabel || p.Y.Label.Text != YLabel {
		t.Errorf("axis labels = %q / %q", p.X.Label.Text, p.Y.Label.Text)
	}
	if p.X.Min != 0 || p.X.Max != 800 {
		t.Errorf("x range = [%v, %v], want [0, 800]", p.X.Min, p.X.Max)
	}
	if p.Y.Min != 0 || p.Y.Max != res.Window.IMax {
		t.Errorf("y range = [%v, %v], want [0, %v]", p.Y.Min, p.Y.Max, res.Window.IMax)
	}
}

func TestRender_PNG(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, run(t, model.DefaultPolicyInputs()), Options{}); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestRender_SVGMarksEquilibriumOnlyInsideDomain(t *testing.T) {
	inside := model.PolicyInputs{GovernmentSpending: 50, Taxes: 40, MoneySupply: 500, PriceLevel: 5}
	var buf bytes.Buffer
	if err := Render(&buf, run(t, inside), Options{Format: SVG}); err != nil {
		t.Fatal(err)
	}
	svg := buf.String()
	if !strings.Contains(svg, "<svg") {
		t.Fatal("output is not an SVG")
	}
	if !strings.Contains(svg, "Equilibrium (Y=440.0, i=3.8)") {
		t.Error("expected equilibrium annotation in SVG")
	}

	buf.Reset()
	if err := Render(&buf, run(t, model.DefaultPolicyInputs()), Options{Format: SVG}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "Equilibrium (Y=") {
		t.Error("equilibrium outside the domain should not be annotated")
	}
}

func TestRender_NoAnnotationBelowAxis(t *testing.T) {
	// autonomous/b2 = 5, M/(P h) = 6.25: Y* = 281.25, i* = -0.625
	in := model.PolicyInputs{GovernmentSpending: 10, Taxes: 100, MoneySupply: 500, PriceLevel: 4}
	res := run(t, in)
	if !res.MarkEquilibrium {
		t.Fatalf("Y*=%v should be inside the domain", res.Solution.Equilibrium.YStar)
	}
	if !res.HasWarning(scenario.WarnNegativeRate) {
		t.Fatalf("expected negative rate warning, got %+v", res.Warnings)
	}

	var buf bytes.Buffer
	if err := Render(&buf, res, Options{Format: SVG}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "Equilibrium (Y=") {
		t.Error("annotation drawn for an equilibrium below the y axis")
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": PNG, "PNG": PNG, "svg": SVG, " pdf ": PDF} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("gif"); err == nil {
		t.Error("expected error for gif")
	}
	if SVG.ContentType() != "image/svg+xml" || PNG.ContentType() != "image/png" {
		t.Error("unexpected content types")
	}
}

func TestBuild_NilResult(t *testing.T) {
	if _, err := Build(nil); err == nil {
		t.Error("expected error")
	}
}
