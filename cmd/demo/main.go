package main

import (
	"flag"
	"fmt"
	"os"

	"platform-projections/internal/analysis"
	"platform-projections/internal/interp"
	"platform-projections/internal/model"
	"platform-projections/internal/params"
	"platform-projections/internal/projection"
	"platform-projections/internal/report"
)

// Demo:
// - Build a parameter store from built-in sample observations
// - Project a couple of scenarios over a short horizon
// - Print the Base months and the per-scenario summaries
func main() {
	n := flag.Int("n", 12, "Number of months to project")
	outCSV := flag.String("out", "", "Optional path to write the table CSV (e.g. results/projection.csv)")
	flag.Parse()

	st, err := params.Load(params.StaticSource(sampleObservations()), model.DuplicateMax)
	if err != nil {
		panic(err)
	}

	scenarios := []model.Scenario{
		model.ResolveScenario(model.ScenarioBase, 0),
		model.ResolveScenario(model.ScenarioHigh25, 0),
	}

	engine := projection.New(interp.NewCached(interp.New(st)))
	table, err := engine.Run(*n, scenarios)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Projected %d months x %d scenarios (%d rows)\n\n", *n, len(scenarios), len(table.Rows))

	for _, r := range table.ScenarioRows(model.ScenarioBase) {
		fmt.Printf(
			"m=%-3d accounts=%9.0f active=%9.0f in=%13.2f out=%13.2f net=%12.2f chk=%13.2f sav=%13.2f\n",
			r.Month,
			r.TotalAccounts,
			r.ActiveAccounts,
			r.TotalInflows,
			r.TotalOutflows,
			r.NetRemaining,
			r.CheckingBalance,
			r.SavingsBalance,
		)
	}

	fmt.Println("")
	report.Summaries(os.Stdout, analysis.Summarize(table))

	if *outCSV != "" {
		if err := projection.WriteTableCSV(*outCSV, table); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}
}

// sampleObservations is a small but complete parameter set: anchor levels
// for accounts and activity shares, per-channel volumes and pricing, and
// the balance carryover rates.
func sampleObservations() []model.Observation {
	return []model.Observation{
		{Input: model.InputAccounts, Month: 1, Value: 1000},
		{Input: model.InputAccounts, Month: 6, Value: 20000},
		{Input: model.InputAccounts, Month: 12, Value: 60000},
		{Input: model.InputAccounts, Month: 24, Value: 120000},
		{Input: model.InputAccounts, Month: 36, Value: 200000},

		{Input: model.InputActiveShare, Month: 1, Value: 0.40},
		{Input: model.InputActiveShare, Month: 12, Value: 0.50},
		{Input: model.InputActiveShare, Month: 36, Value: 0.60},
		{Input: model.InputCheckingShare, Month: 1, Value: 0.70},
		{Input: model.InputSavingShare, Month: 1, Value: 0.30},

		{Input: model.ChannelACHIn.PerActiveInput(), Month: 1, Value: 2.0},
		{Input: model.ChannelACHIn.PerActiveInput(), Month: 12, Value: 2.5},
		{Input: model.ChannelACHIn.PerActiveInput(), Month: 36, Value: 3.0},
		{Input: model.ChannelACHIn.RateInput(), Month: 1, Value: 450},
		{Input: model.ChannelRTPIn.PerActiveInput(), Month: 1, Value: 0.5},
		{Input: model.ChannelRTPIn.PerActiveInput(), Month: 12, Value: 1.0},
		{Input: model.ChannelRTPIn.PerActiveInput(), Month: 36, Value: 1.5},
		{Input: model.ChannelRTPIn.RateInput(), Month: 1, Value: 120},
		{Input: model.ChannelWireIn.PerActiveInput(), Month: 1, Value: 0.05},
		{Input: model.ChannelWireIn.PerActiveInput(), Month: 36, Value: 0.10},
		{Input: model.ChannelWireIn.RateInput(), Month: 1, Value: 2500},

		{Input: model.ChannelACHOut.PerActiveInput(), Month: 1, Value: 1.5},
		{Input: model.ChannelACHOut.PerActiveInput(), Month: 36, Value: 2.0},
		{Input: model.ChannelACHOut.ShareInput(), Month: 1, Value: 0.30},
		{Input: model.ChannelRTPOut.PerActiveInput(), Month: 1, Value: 0.4},
		{Input: model.ChannelRTPOut.PerActiveInput(), Month: 36, Value: 0.8},
		{Input: model.ChannelRTPOut.ShareInput(), Month: 1, Value: 0.10},
		{Input: model.ChannelWireOut.PerActiveInput(), Month: 1, Value: 0.02},
		{Input: model.ChannelWireOut.PerActiveInput(), Month: 36, Value: 0.05},
		{Input: model.ChannelWireOut.ShareInput(), Month: 1, Value: 0.05},
		{Input: model.ChannelDebitCard.PerActiveInput(), Month: 1, Value: 8.0},
		{Input: model.ChannelDebitCard.PerActiveInput(), Month: 12, Value: 10.0},
		{Input: model.ChannelDebitCard.PerActiveInput(), Month: 36, Value: 12.0},
		{Input: model.ChannelDebitCard.ShareInput(), Month: 1, Value: 0.25},

		{Input: model.InputSavingsTransferRate, Month: 1, Value: 0.20},
		{Input: model.InputCheckingUsageRate, Month: 1, Value: 0.85},
		{Input: model.InputSavingsUsageRate, Month: 1, Value: 0.95},
		{Input: model.InputGrowthRate, Month: model.GrowthRateMonth, Value: 0.012},
	}
}
