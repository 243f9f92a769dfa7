package cascade

import (
	"platform-projections/internal/interp"
	"platform-projections/internal/model"
)

// Evaluator computes one CascadeRow per (month, scenario), walking the
// metric graph in topological order: accounts, activity splits, inflow
// channels, inflow total, outflow channels, outflow total, net flows,
// revenue. Each node is computed exactly once per row.
type Evaluator struct {
	resolver *Resolver
}

func New(values interp.Valuer) *Evaluator {
	return &Evaluator{resolver: NewResolver(values)}
}

func (ev *Evaluator) Evaluate(month int, s model.Scenario) model.CascadeRow {
	res := ev.resolver

	row := model.CascadeRow{Month: month, Scenario: s.Name}

	row.TotalAccounts = res.Accounts(month, s)
	row.ActiveAccounts = row.TotalAccounts * res.Base(model.InputActiveShare, month)
	row.CheckingAccounts = row.ActiveAccounts * res.Base(model.InputCheckingShare, month)
	row.SavingAccounts = row.ActiveAccounts * res.Base(model.InputSavingShare, month)

	row.Inflows = make([]model.ChannelFlow, 0, len(model.InflowChannels))
	for _, c := range model.InflowChannels {
		qty := row.ActiveAccounts * res.Base(c.PerActiveInput(), month)
		amt := qty * res.Base(c.RateInput(), month)
		row.Inflows = append(row.Inflows, model.ChannelFlow{
			Channel:  c,
			Quantity: qty,
			Amount:   amt,
		})
		row.TotalInflows += amt
	}

	// Outflow amounts are shares of total inflows, not quantity times a
	// rate. The implied per-transaction rate is solved afterwards as a
	// diagnostic.
	row.Outflows = make([]model.ChannelFlow, 0, len(model.OutflowChannels))
	for _, c := range model.OutflowChannels {
		qty := row.ActiveAccounts * res.Base(c.PerActiveInput(), month)
		amt := row.TotalInflows * res.Base(c.ShareInput(), month)
		row.Outflows = append(row.Outflows, model.ChannelFlow{
			Channel:    c,
			Quantity:   qty,
			Amount:     amt,
			SolvedRate: safeDiv(amt, qty),
		})
		row.TotalOutflows += amt
	}

	row.NetRemaining = row.TotalInflows - row.TotalOutflows
	row.SavingsTransfer = row.NetRemaining * res.Base(model.InputSavingsTransferRate, month)
	row.MonthlyChecking = row.NetRemaining - row.SavingsTransfer
	row.MonthlySavings = row.SavingsTransfer

	for _, f := range row.Inflows {
		row.TotalRevenue += f.Amount
	}
	for _, f := range row.Outflows {
		row.TotalRevenue += f.Amount
	}
	row.RevenuePerAccount = safeDiv(row.TotalRevenue, row.TotalAccounts)
	row.RevenuePerActiveAccount = safeDiv(row.TotalRevenue, row.ActiveAccounts)

	return row
}

// safeDiv is the division convention for every ratio in the cascade: a
// non-positive denominator yields 0, never an error or an Inf.
func safeDiv(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}
