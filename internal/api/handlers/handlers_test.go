package handlers

import (
	"bytes"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"islm-sim/internal/chart"
	"islm-sim/internal/scenario"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := scenario.Default()
	eq := NewEquilibriumHandler(engine)
	ch := NewChartHandler(engine, chart.DefaultOptions())
	ph := NewParametersHandler(engine)

	r := gin.New()
	r.GET("/equilibrium", eq.Solve)
	r.POST("/equilibrium", eq.Solve)
	r.POST("/compare", eq.Compare)
	r.GET("/multipliers", eq.Multipliers)
	r.GET("/chart", ch.Render)
	r.GET("/parameters", ph.ListParameters)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestSolve_GetDefaultsIsScenario1(t *testing.T) {
	w := do(newRouter(), http.MethodGet, "/equilibrium", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	approx(t, "autonomous", gjson.Get(body, "autonomous").Float(), 126)
	approx(t, "y_star", gjson.Get(body, "equilibrium.y_star").Float(), 940)
	approx(t, "i_star", gjson.Get(body, "equilibrium.i_star").Float(), -6.2)
	approx(t, "real_money_supply", gjson.Get(body, "inputs.real_money_supply").Float(), 500)
	if gjson.Get(body, "equilibrium.marked").Bool() {
		t.Error("Y*=940 should not be marked")
	}
	if got := gjson.Get(body, "metrics.output").String(); got != "940.00" {
		t.Errorf("metrics.output = %q", got)
	}
	if got := gjson.Get(body, "metrics.interest_rate").String(); got != "-6.20%" {
		t.Errorf("metrics.interest_rate = %q", got)
	}
	codes := gjson.Get(body, "warnings.#.code").Array()
	if len(codes) != 2 || codes[0].String() != "EQUILIBRIUM_OUTSIDE_DOMAIN" || codes[1].String() != "NEGATIVE_INTEREST_RATE" {
		t.Errorf("warnings = %v", codes)
	}
	if gjson.Get(body, "curves").Exists() {
		t.Error("curves should be omitted unless requested")
	}
}

func TestSolve_GetQueryInputs(t *testing.T) {
	w := do(newRouter(), http.MethodGet, "/equilibrium?m=500&p=5&include_curves=true", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	approx(t, "y_star", gjson.Get(body, "equilibrium.y_star").Float(), 440)
	approx(t, "i_star", gjson.Get(body, "equilibrium.i_star").Float(), 3.8)
	if !gjson.Get(body, "equilibrium.marked").Bool() {
		t.Error("Y*=440 should be marked")
	}
	if n := gjson.Get(body, "warnings.#").Int(); n != 0 {
		t.Errorf("warnings = %d, want 0", n)
	}
	if n := gjson.Get(body, "curves.y.#").Int(); n != 500 {
		t.Errorf("curves.y has %d points", n)
	}
	approx(t, "curves.is[0]", gjson.Get(body, "curves.is.0").Float(), 12.6)
	approx(t, "curves.y[499]", gjson.Get(body, "curves.y.499").Float(), 800)
}

func TestSolve_PostWithParamsOverride(t *testing.T) {
	w := do(newRouter(), http.MethodPost, "/equilibrium", `{"g": 50, "t": 40, "m": 1000, "p": 2, "params": {"h": 40}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	// k/h = 0.01, alpha = 0.03, M/(P h) = 12.5: Y* = (12.6 + 12.5)/0.03
	approx(t, "y_star", gjson.Get(body, "equilibrium.y_star").Float(), 25.1/0.03)
	approx(t, "params.h", gjson.Get(body, "params.h").Float(), 40)
	approx(t, "lm.slope", gjson.Get(body, "lm.slope").Float(), 0.01)
}

func TestSolve_Errors(t *testing.T) {
	r := newRouter()
	cases := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		code   string
	}{
		{"out of range", http.MethodGet, "/equilibrium?g=500", "", http.StatusBadRequest, "INVALID_INPUTS"},
		{"not a number", http.MethodGet, "/equilibrium?g=abc", "", http.StatusBadRequest, "INVALID_REQUEST"},
		{"bad json", http.MethodPost, "/equilibrium", `{"g": `, http.StatusBadRequest, "INVALID_REQUEST"},
		{"degenerate", http.MethodPost, "/equilibrium", `{"params": {"h": 0}}`, http.StatusUnprocessableEntity, "DEGENERATE_MODEL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(r, tc.method, tc.path, tc.body)
			if w.Code != tc.status {
				t.Fatalf("status = %d, want %d: %s", w.Code, tc.status, w.Body.String())
			}
			if got := gjson.Get(w.Body.String(), "error.code").String(); got != tc.code {
				t.Errorf("error.code = %q, want %q", got, tc.code)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	body := `{
		"base": {"g": 50, "t": 40, "m": 1000, "p": 2},
		"variations": [
			{"name": "tax hike", "inputs": {"t": 80}},
			{"name": "monetary expansion", "inputs": {"m": 2000}},
			{"name": "deflation beyond range", "inputs": {"p": 0.5}}
		]
	}`
	w := do(newRouter(), http.MethodPost, "/compare", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	out := w.Body.String()
	approx(t, "base.y_star", gjson.Get(out, "base.y_star").Float(), 940)

	names := gjson.Get(out, "comparison.#.name").Array()
	if len(names) != 3 {
		t.Fatalf("comparison = %v", names)
	}
	if names[0].String() != "monetary expansion" || names[1].String() != "tax hike" || names[2].String() != "deflation beyond range" {
		t.Errorf("ranking = %v", names)
	}
	first := gjson.Get(out, "comparison.0")
	if first.Get("rank").Int() != 1 || first.Get("output_shift").String() != "UP" || first.Get("rate_shift").String() != "DOWN" {
		t.Errorf("first = %s", first.Raw)
	}
	if s := gjson.Get(out, "comparison.1.output_shift").String(); s != "DOWN" {
		t.Errorf("tax hike output_shift = %q", s)
	}
	failed := gjson.Get(out, "comparison.2")
	if failed.Get("error.code").String() != "INVALID_INPUTS" || failed.Get("rank").Exists() {
		t.Errorf("failed = %s", failed.Raw)
	}
	approx(t, "inherited m", gjson.Get(out, "comparison.1.inputs.m").Float(), 1000)
}

func TestCompare_RequiresVariations(t *testing.T) {
	w := do(newRouter(), http.MethodPost, "/compare", `{"base": {}}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d", w.Code)
	}
	w = do(newRouter(), http.MethodPost, "/compare", `{"variations": [{"inputs": {"g": 60}}]}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("unnamed variation status = %d", w.Code)
	}
}

func TestMultipliers(t *testing.T) {
	w := do(newRouter(), http.MethodGet, "/multipliers", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	approx(t, "dY*/dG", gjson.Get(body, "effects.g.d_y_star").Float(), 2.5)
	approx(t, "dY*/dT", gjson.Get(body, "effects.t.d_y_star").Float(), -1.5)
	if gjson.Get(body, "effects.m.d_i_star").Float() >= 0 {
		t.Error("monetary expansion should lower i*")
	}

	w = do(newRouter(), http.MethodGet, "/multipliers?p=9", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("out of range status = %d", w.Code)
	}
}

func TestChart(t *testing.T) {
	r := newRouter()
	w := do(r, http.MethodGet, "/chart", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type = %q", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")) {
		t.Error("body is not a PNG")
	}

	w = do(r, http.MethodGet, "/chart?format=svg&m=500&p=5&width=400&height=300", "")
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "image/svg+xml" {
		t.Fatalf("svg = %d %q", w.Code, w.Header().Get("Content-Type"))
	}
	if !strings.Contains(w.Body.String(), "Equilibrium (Y=440.0, i=3.8)") {
		t.Error("svg missing equilibrium annotation")
	}

	for _, path := range []string{"/chart?format=gif", "/chart?width=-1", "/chart?height=100000", "/chart?t=0"} {
		if w := do(r, http.MethodGet, path, ""); w.Code != http.StatusBadRequest {
			t.Errorf("GET %s = %d, want 400", path, w.Code)
		}
	}
}

func TestListParameters(t *testing.T) {
	w := do(newRouter(), http.MethodGet, "/parameters", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	keys := gjson.Get(body, "controls.#.key").Array()
	if len(keys) != 4 || keys[0].String() != "g" || keys[3].String() != "p" {
		t.Errorf("control keys = %v", keys)
	}
	approx(t, "p.default", gjson.Get(body, `controls.#(key=="p").default`).Float(), 2)
	approx(t, "m.max", gjson.Get(body, `controls.#(key=="m").max`).Float(), 2000)
	approx(t, "params.c1", gjson.Get(body, "params.c1").Float(), 0.6)
	if n := gjson.Get(body, "domain.points").Int(); n != 500 {
		t.Errorf("domain.points = %d", n)
	}
}
