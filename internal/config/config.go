package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"platform-projections/internal/model"
	"platform-projections/internal/params"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk run configuration shape (YAML).
type Config struct {
	// Name labels the run in persisted output. Optional.
	Name string `yaml:"name"`

	// ParametersFile loads observations from a .csv or .json file.
	// Inline Parameters are appended after the file's rows, so the
	// duplicate policy decides which value wins when both define the
	// same (input, month): "first" keeps the file's value, "max" the
	// larger of the two.
	ParametersFile string              `yaml:"parameters_file"`
	Parameters     []ObservationConfig `yaml:"parameters"`

	HorizonMonths   int      `yaml:"horizon_months"`
	DuplicatePolicy string   `yaml:"duplicate_policy"`
	Scenarios       []string `yaml:"scenarios"`

	// CustomMultiplier backs the Custom scenario when it is listed.
	CustomMultiplier float64 `yaml:"custom_multiplier"`

	Output OutputConfig `yaml:"output"`
}

type ObservationConfig struct {
	Input string  `yaml:"input"`
	Month int     `yaml:"month"`
	Value float64 `yaml:"value"`
}

// OutputConfig selects result sinks. Empty fields disable a sink.
type OutputConfig struct {
	CSV    string `yaml:"csv"`
	SQLite string `yaml:"sqlite"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads the config without defaults or validation.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// Prefer interpreting a relative parameters_file against the config
	// file directory, but fall back to the provided path (relative to
	// cwd) if nothing exists there.
	if c.ParametersFile != "" && !filepath.IsAbs(c.ParametersFile) {
		cand := filepath.Join(filepath.Dir(path), c.ParametersFile)
		if _, err := os.Stat(cand); err == nil {
			c.ParametersFile = cand
		}
	}
	return &c, nil
}

// ApplyDefaults fills unset fields: 60-month horizon, max duplicate
// policy, the five fixed scenarios.
func (c *Config) ApplyDefaults() {
	if c.HorizonMonths == 0 {
		c.HorizonMonths = 60
	}
	if c.DuplicatePolicy == "" {
		c.DuplicatePolicy = string(model.DuplicateMax)
	}
	if len(c.Scenarios) == 0 {
		c.Scenarios = append([]string(nil), model.ScenarioNames...)
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.HorizonMonths < 1 {
		return fmt.Errorf("horizon_months must be >= 1, got %d", c.HorizonMonths)
	}
	if err := c.Policy().Validate(); err != nil {
		return err
	}
	if c.ParametersFile == "" && len(c.Parameters) == 0 {
		return errors.New("parameters_file or parameters is required")
	}
	for i, o := range c.Parameters {
		if err := o.ToObservation().Validate(); err != nil {
			return fmt.Errorf("parameters[%d]: %w", i, err)
		}
	}
	if c.CustomMultiplier < 0 {
		return errors.New("custom_multiplier must be >= 0")
	}
	return nil
}

func (c *Config) Policy() model.DuplicatePolicy {
	return model.DuplicatePolicy(c.DuplicatePolicy)
}

func (o ObservationConfig) ToObservation() model.Observation {
	return model.Observation{Input: o.Input, Month: o.Month, Value: o.Value}
}

// ResolveScenarios maps the configured names through the catalog.
func (c *Config) ResolveScenarios() []model.Scenario {
	out := make([]model.Scenario, 0, len(c.Scenarios))
	for _, name := range c.Scenarios {
		out = append(out, model.ResolveScenario(name, c.CustomMultiplier))
	}
	return out
}

// Observations merges the parameters file (when set) with the inline
// parameters, file rows first.
func (c *Config) Observations() ([]model.Observation, error) {
	var obs []model.Observation
	if c.ParametersFile != "" {
		fileObs, err := params.FileSource{Path: c.ParametersFile}.Observations()
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", c.ParametersFile, err)
		}
		obs = append(obs, fileObs...)
	}
	for _, o := range c.Parameters {
		obs = append(obs, o.ToObservation())
	}
	return obs, nil
}
