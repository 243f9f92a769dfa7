package projection

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"platform-projections/internal/interp"
	"platform-projections/internal/model"
	"platform-projections/internal/params"
)

func testValues(t *testing.T) interp.Valuer {
	t.Helper()
	obs := []model.Observation{
		{Input: model.InputAccounts, Month: 1, Value: 1000},
		{Input: model.InputAccounts, Month: 6, Value: 20000},
		{Input: model.InputAccounts, Month: 12, Value: 60000},
		{Input: model.InputAccounts, Month: 24, Value: 120000},
		{Input: model.InputAccounts, Month: 36, Value: 200000},
		{Input: model.InputActiveShare, Month: 1, Value: 0.5},
		{Input: model.InputCheckingShare, Month: 1, Value: 0.6},
		{Input: model.InputSavingShare, Month: 1, Value: 0.4},
		{Input: "ACHinPerActive", Month: 1, Value: 2},
		{Input: "ACHinRate", Month: 1, Value: 100},
		{Input: "ACHoutPerActive", Month: 1, Value: 1.5},
		{Input: "ACHoutShare", Month: 1, Value: 0.3},
		{Input: "DebitCardPerActive", Month: 1, Value: 10},
		{Input: "DebitCardShare", Month: 1, Value: 0.25},
		{Input: model.InputSavingsTransferRate, Month: 1, Value: 0.2},
		{Input: model.InputCheckingUsageRate, Month: 1, Value: 0.85},
		{Input: model.InputSavingsUsageRate, Month: 1, Value: 0.95},
	}
	st, err := params.Load(params.StaticSource(obs), model.DuplicateMax)
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return interp.New(st)
}

func testScenarios(names ...string) []model.Scenario {
	out := make([]model.Scenario, len(names))
	for i, n := range names {
		out[i] = model.ResolveScenario(n, 0)
	}
	return out
}

func TestRun_TableShape(t *testing.T) {
	e := New(testValues(t))

	table, err := e.Run(12, testScenarios(model.ScenarioBase, model.ScenarioHigh25))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(table.Rows) != 24 {
		t.Errorf("len(Rows) = %d, want 24", len(table.Rows))
	}
	if table.Horizon != 12 {
		t.Errorf("Horizon = %d, want 12", table.Horizon)
	}

	row, ok := table.Row(12, model.ScenarioHigh25)
	if !ok {
		t.Fatal("Row(12, High_25) not found")
	}
	if row.Month != 12 || row.Scenario != model.ScenarioHigh25 {
		t.Errorf("Row(12, High_25) = month %d scenario %s", row.Month, row.Scenario)
	}
	if _, ok := table.Row(13, model.ScenarioBase); ok {
		t.Error("Row(13, Base) found, want absent")
	}

	base := table.ScenarioRows(model.ScenarioBase)
	if len(base) != 12 {
		t.Fatalf("len(ScenarioRows(Base)) = %d, want 12", len(base))
	}
	for i, r := range base {
		if r.Month != i+1 {
			t.Errorf("ScenarioRows(Base)[%d].Month = %d, want %d", i, r.Month, i+1)
		}
	}
}

func TestRun_BalancesFollowRecurrence(t *testing.T) {
	e := New(testValues(t))

	table, err := e.Run(4, testScenarios(model.ScenarioBase))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	rows := table.ScenarioRows(model.ScenarioBase)

	// Usage rates are flat in the fixture: 0.85 checking, 0.95 savings.
	mc := func(m int) float64 { return rows[m-1].MonthlyChecking }
	b1 := mc(1)
	b2 := b1*0.85 + mc(2)
	b3 := (b2-mc(1))*0.85 + mc(3)
	b4 := (b3-mc(1))*0.85 + mc(4)

	for i, want := range []float64{b1, b2, b3, b4} {
		if got := rows[i].CheckingBalance; !almostEqual(got, want) {
			t.Errorf("month %d CheckingBalance = %v, want %v", i+1, got, want)
		}
	}

	ms := func(m int) float64 { return rows[m-1].MonthlySavings }
	s2 := ms(1)*0.95 + ms(2)
	if got := rows[1].SavingsBalance; !almostEqual(got, s2) {
		t.Errorf("month 2 SavingsBalance = %v, want %v", got, s2)
	}
}

func TestRun_ScenariosAreIndependent(t *testing.T) {
	e := New(testValues(t))

	together, err := e.Run(6, testScenarios(model.ScenarioBase, model.ScenarioHigh25, model.ScenarioLow10))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	alone, err := e.Run(6, testScenarios(model.ScenarioHigh25))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	for m := 1; m <= 6; m++ {
		a, _ := together.Row(m, model.ScenarioHigh25)
		b, _ := alone.Row(m, model.ScenarioHigh25)
		if a.TotalRevenue != b.TotalRevenue {
			t.Errorf("month %d TotalRevenue = %v alongside others, %v alone", m, a.TotalRevenue, b.TotalRevenue)
		}
		if a.CheckingBalance != b.CheckingBalance {
			t.Errorf("month %d CheckingBalance = %v alongside others, %v alone", m, a.CheckingBalance, b.CheckingBalance)
		}
	}
}

func TestRun_Validation(t *testing.T) {
	e := New(testValues(t))

	if _, err := e.Run(0, testScenarios(model.ScenarioBase)); err == nil {
		t.Error("Run(0, ...) error = nil, want horizon error")
	}
	if _, err := e.Run(12, nil); err == nil {
		t.Error("Run(12, nil) error = nil, want no scenarios error")
	}
	if _, err := New(nil).Run(12, testScenarios(model.ScenarioBase)); err == nil {
		t.Error("Run with nil values error = nil, want error")
	}
}

func TestWriteTableCSV(t *testing.T) {
	e := New(testValues(t))
	table, err := e.Run(3, testScenarios(model.ScenarioBase, model.ScenarioHigh10))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "projection.csv")
	if err := (FileSink{Path: path}).Write(table); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(records) != 1+3*2 {
		t.Fatalf("len(records) = %d, want 7", len(records))
	}

	header := records[0]
	if header[0] != "month" || header[1] != "scenario" {
		t.Errorf("header starts %v, want month, scenario", header[:2])
	}
	if header[len(header)-1] != "savings_balance" {
		t.Errorf("last header column = %q, want savings_balance", header[len(header)-1])
	}
	for i, rec := range records[1:] {
		if len(rec) != len(header) {
			t.Errorf("record %d has %d fields, want %d", i+1, len(rec), len(header))
		}
	}
	if records[1][0] != "1" || records[1][1] != model.ScenarioBase {
		t.Errorf("first record starts %v, want month 1 scenario Base", records[1][:2])
	}
}
