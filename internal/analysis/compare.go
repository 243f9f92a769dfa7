package analysis

import (
	"platform-projections/internal/model"
	"platform-projections/internal/projection"
)

// ScenarioDelta is one scenario's key metrics at a single month, with
// variances against the Base scenario at the same month. Variances are
// fractions (0.10 = ten percent above Base), 0 when the table holds no
// Base row.
type ScenarioDelta struct {
	Scenario   string
	Multiplier float64

	TotalAccounts     float64
	ActiveAccounts    float64
	TotalRevenue      float64
	RevenuePerAccount float64

	AccountsVsBase float64
	RevenueVsBase  float64
}

// CompareScenarios lines up every scenario in the table at one month, in
// the table's scenario order.
func CompareScenarios(t *projection.Table, month int) []ScenarioDelta {
	base, haveBase := t.Row(month, model.ScenarioBase)

	out := make([]ScenarioDelta, 0, len(t.Scenarios))
	for _, s := range t.Scenarios {
		r, ok := t.Row(month, s.Name)
		if !ok {
			continue
		}
		d := ScenarioDelta{
			Scenario:          s.Name,
			Multiplier:        s.Multiplier,
			TotalAccounts:     r.TotalAccounts,
			ActiveAccounts:    r.ActiveAccounts,
			TotalRevenue:      r.TotalRevenue,
			RevenuePerAccount: r.RevenuePerAccount,
		}
		if haveBase {
			d.AccountsVsBase = varianceFrom(base.TotalAccounts, r.TotalAccounts)
			d.RevenueVsBase = varianceFrom(base.TotalRevenue, r.TotalRevenue)
		}
		out = append(out, d)
	}
	return out
}

// varianceFrom returns (value-base)/base, 0 when base is not positive.
func varianceFrom(base, value float64) float64 {
	if base <= 0 {
		return 0
	}
	return (value - base) / base
}
