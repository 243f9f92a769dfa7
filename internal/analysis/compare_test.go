package analysis

import (
	"math"
	"testing"

	"platform-projections/internal/interp"
	"platform-projections/internal/model"
	"platform-projections/internal/params"
	"platform-projections/internal/projection"
)

func testTable(t *testing.T, horizon int, names ...string) *projection.Table {
	t.Helper()
	obs := []model.Observation{
		{Input: model.InputAccounts, Month: 1, Value: 1000},
		{Input: model.InputAccounts, Month: 6, Value: 20000},
		{Input: model.InputAccounts, Month: 12, Value: 60000},
		{Input: model.InputActiveShare, Month: 1, Value: 0.5},
		{Input: "ACHinPerActive", Month: 1, Value: 2},
		{Input: "ACHinRate", Month: 1, Value: 100},
		{Input: "ACHoutShare", Month: 1, Value: 0.4},
		{Input: model.InputSavingsTransferRate, Month: 1, Value: 0.2},
		{Input: model.InputCheckingUsageRate, Month: 1, Value: 0.85},
		{Input: model.InputSavingsUsageRate, Month: 1, Value: 0.95},
	}
	st, err := params.Load(params.StaticSource(obs), model.DuplicateMax)
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	scenarios := make([]model.Scenario, len(names))
	for i, n := range names {
		scenarios[i] = model.ResolveScenario(n, 0)
	}
	table, err := projection.New(interp.New(st)).Run(horizon, scenarios)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return table
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func TestCompareScenarios_VariancesAgainstBase(t *testing.T) {
	table := testTable(t, 12, model.ScenarioBase, model.ScenarioHigh25, model.ScenarioLow10)

	deltas := CompareScenarios(table, 12)
	if len(deltas) != 3 {
		t.Fatalf("len(deltas) = %d, want 3", len(deltas))
	}

	byName := map[string]ScenarioDelta{}
	for _, d := range deltas {
		byName[d.Scenario] = d
	}

	base := byName[model.ScenarioBase]
	if base.AccountsVsBase != 0 || base.RevenueVsBase != 0 {
		t.Errorf("Base variances = %v, %v; want 0, 0", base.AccountsVsBase, base.RevenueVsBase)
	}
	if !almostEqual(base.TotalAccounts, 60000) {
		t.Errorf("Base TotalAccounts = %v, want 60000", base.TotalAccounts)
	}

	// Revenue is linear in the multiplier, so both variances equal the
	// multiplier offset.
	high := byName[model.ScenarioHigh25]
	if !almostEqual(high.AccountsVsBase, 0.25) {
		t.Errorf("High_25 AccountsVsBase = %v, want 0.25", high.AccountsVsBase)
	}
	if !almostEqual(high.RevenueVsBase, 0.25) {
		t.Errorf("High_25 RevenueVsBase = %v, want 0.25", high.RevenueVsBase)
	}

	low := byName[model.ScenarioLow10]
	if !almostEqual(low.AccountsVsBase, -0.10) {
		t.Errorf("Low_10 AccountsVsBase = %v, want -0.10", low.AccountsVsBase)
	}
}

func TestCompareScenarios_NoBaseRow(t *testing.T) {
	table := testTable(t, 6, model.ScenarioHigh25)

	deltas := CompareScenarios(table, 6)
	if len(deltas) != 1 {
		t.Fatalf("len(deltas) = %d, want 1", len(deltas))
	}
	if deltas[0].AccountsVsBase != 0 || deltas[0].RevenueVsBase != 0 {
		t.Errorf("variances without Base = %v, %v; want 0, 0",
			deltas[0].AccountsVsBase, deltas[0].RevenueVsBase)
	}
}

func TestCompareScenarios_MonthOutsideHorizon(t *testing.T) {
	table := testTable(t, 6, model.ScenarioBase)

	if deltas := CompareScenarios(table, 7); len(deltas) != 0 {
		t.Errorf("len(deltas) at month 7 = %d, want 0", len(deltas))
	}
}

func TestSummarize_Cumulative(t *testing.T) {
	table := testTable(t, 6, model.ScenarioBase, model.ScenarioHigh25)

	sums := Summarize(table)
	if len(sums) != 2 {
		t.Fatalf("len(sums) = %d, want 2", len(sums))
	}

	base := sums[0]
	if base.Scenario != model.ScenarioBase || base.Months != 6 {
		t.Fatalf("sums[0] = %s over %d months, want Base over 6", base.Scenario, base.Months)
	}

	rows := table.ScenarioRows(model.ScenarioBase)
	var revenue, inflows, outflows float64
	for _, r := range rows {
		revenue += r.TotalRevenue
		inflows += r.TotalInflows
		outflows += r.TotalOutflows
	}
	if !almostEqual(base.CumulativeRevenue, revenue) {
		t.Errorf("CumulativeRevenue = %v, want %v", base.CumulativeRevenue, revenue)
	}
	if !almostEqual(base.CumulativeInflows, inflows) {
		t.Errorf("CumulativeInflows = %v, want %v", base.CumulativeInflows, inflows)
	}
	if !almostEqual(base.CumulativeOutflows, outflows) {
		t.Errorf("CumulativeOutflows = %v, want %v", base.CumulativeOutflows, outflows)
	}

	last := rows[len(rows)-1]
	if base.EndingAccounts != last.TotalAccounts {
		t.Errorf("EndingAccounts = %v, want %v", base.EndingAccounts, last.TotalAccounts)
	}
	if base.FinalCheckingBalance != last.CheckingBalance {
		t.Errorf("FinalCheckingBalance = %v, want %v", base.FinalCheckingBalance, last.CheckingBalance)
	}
}

func TestSummarize_PeakBalances(t *testing.T) {
	table := testTable(t, 12, model.ScenarioBase)

	sums := Summarize(table)
	if len(sums) != 1 {
		t.Fatalf("len(sums) = %d, want 1", len(sums))
	}

	var peak float64
	for i, r := range table.ScenarioRows(model.ScenarioBase) {
		if i == 0 || r.CheckingBalance > peak {
			peak = r.CheckingBalance
		}
	}
	if sums[0].PeakCheckingBalance != peak {
		t.Errorf("PeakCheckingBalance = %v, want %v", sums[0].PeakCheckingBalance, peak)
	}
}
