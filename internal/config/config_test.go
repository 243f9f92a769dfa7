package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"platform-projections/internal/model"
	"platform-projections/internal/params"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "run.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
name: smoke
parameters:
  - {input: Accounts, month: 1, value: 1000}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HorizonMonths != 60 {
		t.Errorf("HorizonMonths = %d, want 60", cfg.HorizonMonths)
	}
	if cfg.Policy() != model.DuplicateMax {
		t.Errorf("Policy() = %s, want max", cfg.Policy())
	}
	if len(cfg.Scenarios) != 5 || cfg.Scenarios[0] != model.ScenarioBase {
		t.Errorf("Scenarios = %v, want the five fixed names", cfg.Scenarios)
	}
}

func TestLoad_ExplicitFields(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
name: explicit
horizon_months: 24
duplicate_policy: first
scenarios: [Base, Custom]
custom_multiplier: 1.4
parameters:
  - {input: Accounts, month: 1, value: 1000}
output:
  csv: out/projection.csv
  sqlite: out/projection.db
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HorizonMonths != 24 {
		t.Errorf("HorizonMonths = %d, want 24", cfg.HorizonMonths)
	}
	if cfg.Policy() != model.DuplicateFirst {
		t.Errorf("Policy() = %s, want first", cfg.Policy())
	}
	if cfg.Output.CSV != "out/projection.csv" || cfg.Output.SQLite != "out/projection.db" {
		t.Errorf("Output = %+v", cfg.Output)
	}

	scenarios := cfg.ResolveScenarios()
	if len(scenarios) != 2 {
		t.Fatalf("len(ResolveScenarios()) = %d, want 2", len(scenarios))
	}
	if scenarios[1].Name != model.ScenarioCustom || scenarios[1].Multiplier != 1.4 {
		t.Errorf("Custom scenario = %+v, want multiplier 1.4", scenarios[1])
	}
}

func TestLoad_ParametersFileRelativeToConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "params.csv"),
		[]byte("input,month,value\nAccounts,1,1000\n"), 0o600); err != nil {
		t.Fatalf("write params: %v", err)
	}
	path := writeConfig(t, dir, `
parameters_file: params.csv
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !filepath.IsAbs(cfg.ParametersFile) {
		t.Errorf("ParametersFile = %q, want resolved against config dir", cfg.ParametersFile)
	}

	obs, err := cfg.Observations()
	if err != nil {
		t.Fatalf("Observations() error = %v", err)
	}
	if len(obs) != 1 || obs[0].Input != "Accounts" {
		t.Errorf("Observations() = %+v, want the file's Accounts row", obs)
	}
}

func TestObservations_FileRowsComeFirst(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "params.csv"),
		[]byte("input,month,value\nAccounts,1,1000\n"), 0o600); err != nil {
		t.Fatalf("write params: %v", err)
	}
	path := writeConfig(t, dir, `
duplicate_policy: first
parameters_file: params.csv
parameters:
  - {input: Accounts, month: 1, value: 2000}
  - {input: ActiveShare, month: 1, value: 0.5}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	obs, err := cfg.Observations()
	if err != nil {
		t.Fatalf("Observations() error = %v", err)
	}
	if len(obs) != 3 {
		t.Fatalf("len(Observations()) = %d, want 3", len(obs))
	}

	// Under "first" the file's value survives the merge; under "max" the
	// larger inline override would win instead.
	st, err := params.Load(params.StaticSource(obs), cfg.Policy())
	if err != nil {
		t.Fatalf("params.Load() error = %v", err)
	}
	if got, _ := st.Value("Accounts", 1); got != 1000 {
		t.Errorf("merged Accounts month 1 = %v, want the file's 1000", got)
	}

	st, err = params.Load(params.StaticSource(obs), model.DuplicateMax)
	if err != nil {
		t.Fatalf("params.Load() error = %v", err)
	}
	if got, _ := st.Value("Accounts", 1); got != 2000 {
		t.Errorf("merged Accounts month 1 under max = %v, want 2000", got)
	}
}

func TestLoad_ValidationFailures(t *testing.T) {
	for name, content := range map[string]string{
		"no parameters": `
horizon_months: 12
`,
		"bad policy": `
duplicate_policy: keep
parameters:
  - {input: Accounts, month: 1, value: 1000}
`,
		"bad month": `
parameters:
  - {input: Accounts, month: 0, value: 1000}
`,
		"negative custom multiplier": `
custom_multiplier: -1
parameters:
  - {input: Accounts, month: 1, value: 1000}
`,
		"negative horizon": `
horizon_months: -5
parameters:
  - {input: Accounts, month: 1, value: 1000}
`,
	} {
		path := writeConfig(t, t.TempDir(), content)
		if _, err := Load(path); err == nil {
			t.Errorf("Load() with %s: error = nil, want validation error", name)
		}
	}
}

func TestLoad_BadObservationNamesIndex(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
parameters:
  - {input: Accounts, month: 1, value: 1000}
  - {input: "", month: 1, value: 5}
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() error = nil, want validation error")
	}
	if !strings.Contains(err.Error(), "parameters[1]") {
		t.Errorf("Load() error = %q, want it to index parameters[1]", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Load() error = nil, want open error")
	}
}
