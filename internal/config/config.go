package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"islm-sim/internal/model"
	"islm-sim/internal/scenario"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Server ServerConfig `yaml:"server"`
	// Optional: load structural parameters from a separate YAML (e.g. examples/params/*.yaml).
	// If both ParamsFile and Params are provided, fields present in Params override ParamsFile.
	ParamsFile string       `yaml:"params_file"`
	Params     ParamsConfig `yaml:"params"`
	Domain     DomainConfig `yaml:"domain"`
	Chart      ChartConfig  `yaml:"chart"`
}

type ServerConfig struct {
	Port           string   `yaml:"port"`
	Env            string   `yaml:"env"`
	LogLevel       string   `yaml:"log_level"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// ParamsConfig holds structural parameters as read from YAML.
// A nil field was absent and falls back to the layer below (params file, then textbook default);
// an explicit 0 is kept.
type ParamsConfig struct {
	Name                           string   `yaml:"name"`
	AutonomousBase                 *float64 `yaml:"c0"`
	MPC                            *float64 `yaml:"c1"`
	InvestmentIncomeSensitivity    *float64 `yaml:"b1"`
	InvestmentInterestSensitivity  *float64 `yaml:"b2"`
	MoneyDemandIncomeSensitivity   *float64 `yaml:"k"`
	MoneyDemandInterestSensitivity *float64 `yaml:"h"`
}

type DomainConfig struct {
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
	Points int     `yaml:"points"`
}

type ChartConfig struct {
	YAxisFloor float64 `yaml:"y_axis_floor"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Format     string  `yaml:"format"`
}

// Default returns the textbook configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads path, applies defaults and environment overrides, then validates.
// An empty path yields Default() with environment overrides.
func Load(path string) (*Config, error) {
	var c *Config
	if path == "" {
		c = &Config{}
	} else {
		loaded, err := LoadUnchecked(path)
		if err != nil {
			return nil, err
		}
		c = loaded
	}
	c.applyEnv()
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if c.ParamsFile != "" {
		paramsPath := c.ParamsFile
		if !filepath.IsAbs(paramsPath) {
			// Prefer paths relative to the config file, falling back to cwd.
			cand := filepath.Join(filepath.Dir(path), paramsPath)
			if _, err := os.Stat(cand); err == nil {
				paramsPath = cand
			}
		}
		loaded, err := LoadParamsFile(paramsPath)
		if err != nil {
			return nil, err
		}
		c.Params = MergeParams(loaded, c.Params)
	}
	return &c, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("API_PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("API_ENV"); v != "" {
		c.Server.Env = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Server.LogLevel = v
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		c.Server.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("CHART_Y_AXIS_FLOOR"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Chart.YAxisFloor = f
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "INFO"
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"*"}
	}
	c.Params = MergeParams(FromModelParams(model.DefaultStructuralParams()), c.Params)
	d := model.DefaultDomain()
	if c.Domain.Max == 0 && c.Domain.Min == 0 {
		c.Domain.Min, c.Domain.Max = d.Min, d.Max
	}
	if c.Domain.Points == 0 {
		c.Domain.Points = d.Points
	}
	if c.Chart.YAxisFloor == 0 {
		c.Chart.YAxisFloor = scenario.DefaultYAxisFloor
	}
	if c.Chart.Format == "" {
		c.Chart.Format = "png"
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if _, err := model.NewStructuralParams(c.Params.ToModelParams()); err != nil {
		return fmt.Errorf("params config invalid: %w", err)
	}
	if err := c.Domain.ToModelDomain().Validate(); err != nil {
		return fmt.Errorf("domain config invalid: %w", err)
	}
	if c.Chart.YAxisFloor < 0 {
		return errors.New("chart.y_axis_floor must be >= 0")
	}
	if c.Chart.Width < 0 || c.Chart.Height < 0 {
		return errors.New("chart.width and chart.height must be >= 0")
	}
	return nil
}

// Engine builds the scenario engine described by c.
func (c *Config) Engine() (*scenario.Engine, error) {
	return scenario.New(c.Params.ToModelParams(), c.Domain.ToModelDomain(), c.Chart.YAxisFloor)
}

// IsProduction reports whether the server runs in release mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Env, "production")
}

// ToModelParams resolves p; absent fields take the textbook defaults.
func (p ParamsConfig) ToModelParams() model.StructuralParams {
	d := model.DefaultStructuralParams()
	return model.StructuralParams{
		AutonomousBase:                 valueOr(p.AutonomousBase, d.AutonomousBase),
		MPC:                            valueOr(p.MPC, d.MPC),
		InvestmentIncomeSensitivity:    valueOr(p.InvestmentIncomeSensitivity, d.InvestmentIncomeSensitivity),
		InvestmentInterestSensitivity:  valueOr(p.InvestmentInterestSensitivity, d.InvestmentInterestSensitivity),
		MoneyDemandIncomeSensitivity:   valueOr(p.MoneyDemandIncomeSensitivity, d.MoneyDemandIncomeSensitivity),
		MoneyDemandInterestSensitivity: valueOr(p.MoneyDemandInterestSensitivity, d.MoneyDemandInterestSensitivity),
	}
}

func FromModelParams(p model.StructuralParams) ParamsConfig {
	return ParamsConfig{
		AutonomousBase:                 ptr(p.AutonomousBase),
		MPC:                            ptr(p.MPC),
		InvestmentIncomeSensitivity:    ptr(p.InvestmentIncomeSensitivity),
		InvestmentInterestSensitivity:  ptr(p.InvestmentInterestSensitivity),
		MoneyDemandIncomeSensitivity:   ptr(p.MoneyDemandIncomeSensitivity),
		MoneyDemandInterestSensitivity: ptr(p.MoneyDemandInterestSensitivity),
	}
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func ptr(v float64) *float64 { return &v }

func (d DomainConfig) ToModelDomain() model.Domain {
	return model.Domain{Min: d.Min, Max: d.Max, Points: d.Points}
}

type paramsFileWrapper struct {
	Params ParamsConfig `yaml:"params"`
}

// LoadParamsFile reads a YAML file with a top-level "params" block.
func LoadParamsFile(path string) (ParamsConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ParamsConfig{}, err
	}
	var w paramsFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ParamsConfig{}, fmt.Errorf("parse params file %s: %w", path, err)
	}
	return w.Params, nil
}

// MergeParams overlays the fields present in override onto base.
func MergeParams(base, override ParamsConfig) ParamsConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	set := func(dst **float64, v *float64) {
		if v != nil {
			*dst = v
		}
	}
	set(&out.AutonomousBase, override.AutonomousBase)
	set(&out.MPC, override.MPC)
	set(&out.InvestmentIncomeSensitivity, override.InvestmentIncomeSensitivity)
	set(&out.InvestmentInterestSensitivity, override.InvestmentInterestSensitivity)
	set(&out.MoneyDemandIncomeSensitivity, override.MoneyDemandIncomeSensitivity)
	set(&out.MoneyDemandInterestSensitivity, override.MoneyDemandInterestSensitivity)
	return out
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
