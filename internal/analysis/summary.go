package analysis

import "platform-projections/internal/projection"

// ScenarioSummary condenses one scenario's full horizon into headline
// figures.
type ScenarioSummary struct {
	Scenario   string
	Multiplier float64
	Months     int

	EndingAccounts       float64
	EndingActiveAccounts float64

	CumulativeRevenue  float64
	CumulativeInflows  float64
	CumulativeOutflows float64

	FinalCheckingBalance float64
	FinalSavingsBalance  float64
	PeakCheckingBalance  float64
	PeakSavingsBalance   float64
}

// Summarize builds one summary per scenario, in table order.
func Summarize(t *projection.Table) []ScenarioSummary {
	out := make([]ScenarioSummary, 0, len(t.Scenarios))
	for _, s := range t.Scenarios {
		rows := t.ScenarioRows(s.Name)
		if len(rows) == 0 {
			continue
		}
		sum := ScenarioSummary{
			Scenario:            s.Name,
			Multiplier:          s.Multiplier,
			Months:              len(rows),
			PeakCheckingBalance: rows[0].CheckingBalance,
			PeakSavingsBalance:  rows[0].SavingsBalance,
		}
		for _, r := range rows {
			sum.CumulativeRevenue += r.TotalRevenue
			sum.CumulativeInflows += r.TotalInflows
			sum.CumulativeOutflows += r.TotalOutflows
			if r.CheckingBalance > sum.PeakCheckingBalance {
				sum.PeakCheckingBalance = r.CheckingBalance
			}
			if r.SavingsBalance > sum.PeakSavingsBalance {
				sum.PeakSavingsBalance = r.SavingsBalance
			}
		}
		last := rows[len(rows)-1]
		sum.EndingAccounts = last.TotalAccounts
		sum.EndingActiveAccounts = last.ActiveAccounts
		sum.FinalCheckingBalance = last.CheckingBalance
		sum.FinalSavingsBalance = last.SavingsBalance
		out = append(out, sum)
	}
	return out
}
