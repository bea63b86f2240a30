package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"islm-sim/internal/analysis"
	"islm-sim/internal/chart"
	"islm-sim/internal/config"
	"islm-sim/internal/data"
	"islm-sim/internal/logger"
	"islm-sim/internal/model"
	"islm-sim/internal/scenario"
)

func main() {
	if len(os.Args) < 2 {
		usage(os.Stdout)
		os.Exit(2)
	}
	if err := run(os.Args[1], os.Args[2:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd string, args []string, out io.Writer) error {
	switch cmd {
	case "solve":
		return cmdSolve(args, out)
	case "curves":
		return cmdCurves(args, out)
	case "chart":
		return cmdChart(args, out)
	case "compare":
		return cmdCompare(args, out)
	default:
		usage(out)
		return fmt.Errorf("unknown command: %q", cmd)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage:")
	fmt.Fprintln(w, "  cli solve   [--config examples/config.yaml] [--g 50 --t 40 --m 1000 --p 2]")
	fmt.Fprintln(w, "  cli curves  [policy flags] --out results/curves.csv")
	fmt.Fprintln(w, "  cli chart   [policy flags] --out results/islm.png [--format png|svg|pdf]")
	fmt.Fprintln(w, "  cli compare --scenarios examples/scenarios.json")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "notes:")
	fmt.Fprintln(w, "  - policy flags default to the dashboard slider defaults")
	fmt.Fprintln(w, "  - the chart omits the equilibrium marker when Y* is outside the plotted range")
}

// commonFlags registers --config and the four policy flags on fs.
type commonFlags struct {
	cfgPath *string
	g, t, m *float64
	p       *float64
}

func registerCommon(fs *flag.FlagSet) commonFlags {
	d := model.DefaultPolicyInputs()
	return commonFlags{
		cfgPath: fs.String("config", "", "Path to YAML config (optional)"),
		g:       fs.Float64("g", d.GovernmentSpending, "Government spending G [10,100]"),
		t:       fs.Float64("t", d.Taxes, "Taxes T [10,100]"),
		m:       fs.Float64("m", d.MoneySupply, "Nominal money supply M [500,2000]"),
		p:       fs.Float64("p", d.PriceLevel, "Price level P [1,5]"),
	}
}

func (f commonFlags) inputs() model.PolicyInputs {
	return model.PolicyInputs{
		GovernmentSpending: *f.g,
		Taxes:              *f.t,
		MoneySupply:        *f.m,
		PriceLevel:         *f.p,
	}
}

func (f commonFlags) load() (*config.Config, *scenario.Engine, error) {
	cfg, err := config.Load(*f.cfgPath)
	if err != nil {
		return nil, nil, err
	}
	logger.Init(cfg.Server.Env, cfg.Server.LogLevel)
	engine, err := cfg.Engine()
	if err != nil {
		return nil, nil, err
	}
	return cfg, engine, nil
}

func cmdSolve(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	cf := registerCommon(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	_, engine, err := cf.load()
	if err != nil {
		return err
	}
	res, err := engine.Run(cf.inputs())
	if err != nil {
		return err
	}
	printResult(out, res)
	return nil
}

func printResult(w io.Writer, res *scenario.Result) {
	sol := res.Solution
	in := res.Inputs
	fmt.Fprintf(w, "inputs:      G=%g T=%g M=%g P=%g (M/P=%g)\n", in.GovernmentSpending, in.Taxes, in.MoneySupply, in.PriceLevel, in.RealMoneySupply())
	fmt.Fprintf(w, "autonomous:  %s\n", scenario.FormatFixed(sol.Autonomous))
	fmt.Fprintf(w, "IS:          i = %.4f %+.4f*Y\n", sol.IS.Intercept, sol.IS.Slope)
	fmt.Fprintf(w, "LM:          i = %.4f %+.4f*Y\n", sol.LM.Intercept, sol.LM.Slope)
	fmt.Fprintf(w, "Y*:          %s\n", res.Metrics.Output)
	fmt.Fprintf(w, "i*:          %s\n", res.Metrics.InterestRate)
	for _, warn := range res.Warnings {
		fmt.Fprintf(w, "warning:     [%s] %s\n", warn.Code, warn.Message)
	}
}

func cmdCurves(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("curves", flag.ContinueOnError)
	cf := registerCommon(fs)
	outPath := fs.String("out", "results/curves.csv", "Output CSV path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	_, engine, err := cf.load()
	if err != nil {
		return err
	}
	res, err := engine.Run(cf.inputs())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		return err
	}
	if err := scenario.WriteCurvesCSV(*outPath, res); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %d rows to %s\n", len(res.IS), *outPath)
	fmt.Fprintf(out, "Y*=%s i*=%s\n", res.Metrics.Output, res.Metrics.InterestRate)
	return nil
}

func cmdChart(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("chart", flag.ContinueOnError)
	cf := registerCommon(fs)
	outPath := fs.String("out", "results/islm.png", "Output image path")
	format := fs.String("format", "", "Image format: png, svg or pdf (default from config, else file extension)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, engine, err := cf.load()
	if err != nil {
		return err
	}

	name := *format
	if name == "" {
		name = strings.TrimPrefix(filepath.Ext(*outPath), ".")
	}
	if name == "" {
		name = cfg.Chart.Format
	}
	f, err := chart.ParseFormat(name)
	if err != nil {
		return err
	}

	res, err := engine.Run(cf.inputs())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		return err
	}
	file, err := os.Create(*outPath)
	if err != nil {
		return err
	}
	opts := chart.Options{Width: cfg.Chart.Width, Height: cfg.Chart.Height, Format: f}
	if err := writeAndClose(file, func(w io.Writer) error {
		return chart.Render(w, res, opts)
	}); err != nil {
		return fmt.Errorf("write %s: %w", *outPath, err)
	}
	fmt.Fprintf(out, "Wrote %s chart to %s\n", f, *outPath)
	printResult(out, res)
	return nil
}

// writeAndClose runs write against wc and always closes it. The write error wins;
// otherwise a failed close is reported.
func writeAndClose(wc io.WriteCloser, write func(io.Writer) error) error {
	err := write(wc)
	if cerr := wc.Close(); err == nil {
		err = cerr
	}
	return err
}

func cmdCompare(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("compare", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	scenariosPath := fs.String("scenarios", "examples/scenarios.json", "Scenario JSON file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	logger.Init(cfg.Server.Env, cfg.Server.LogLevel)
	engine, err := cfg.Engine()
	if err != nil {
		return err
	}

	sf, err := data.LoadScenarios(*scenariosPath)
	if err != nil {
		return err
	}
	baseRes, comparisons, err := analysis.Compare(engine, sf.Base, sf.Variations)
	if err != nil {
		return fmt.Errorf("base scenario: %w", err)
	}

	fmt.Fprintf(out, "base: Y*=%s i*=%s\n", baseRes.Metrics.Output, baseRes.Metrics.InterestRate)
	fmt.Fprintf(out, "%-4s %-24s %-10s %-10s %-10s %-10s %-9s %-9s\n", "rank", "scenario", "Y*", "i*", "dY*", "di*", "output", "rate")
	for i, cmp := range analysis.RankByOutput(comparisons) {
		if cmp.Err != nil {
			fmt.Fprintf(out, "%-4s %-24s error: %v\n", "-", cmp.Name, cmp.Err)
			continue
		}
		fmt.Fprintf(out, "%-4d %-24s %-10s %-10s %-10s %-10s %-9s %-9s\n",
			i+1,
			cmp.Name,
			cmp.Result.Metrics.Output,
			cmp.Result.Metrics.InterestRate,
			scenario.FormatFixed(cmp.DeltaYStar),
			scenario.FormatFixed(cmp.DeltaIStar),
			cmp.OutputDir,
			cmp.RateDir,
		)
	}
	return nil
}
