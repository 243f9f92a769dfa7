// Package report renders plain-text tables for CLI output. Currency
// columns round to cents through decimal so large revenue figures print
// exactly instead of drifting into scientific notation.
package report

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"platform-projections/internal/analysis"
	"platform-projections/internal/model"
	"platform-projections/internal/projection"
)

// KeyMetrics prints one scenario's headline figures at the anchor months
// within the table horizon.
func KeyMetrics(w io.Writer, t *projection.Table, scenario string) {
	fmt.Fprintf(w, "scenario %s\n", scenario)
	fmt.Fprintf(w, "%-6s %-16s %-16s %-16s %-14s\n",
		"month", "accounts", "active", "revenue", "rev/account")
	for _, m := range model.AnchorMonths {
		if m > t.Horizon {
			break
		}
		r, ok := t.Row(m, scenario)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%-6d %-16s %-16s %-16s %-14s\n",
			m,
			count(r.TotalAccounts),
			count(r.ActiveAccounts),
			cents(r.TotalRevenue),
			cents(r.RevenuePerAccount),
		)
	}
}

// Summaries prints one line per scenario over the full horizon.
func Summaries(w io.Writer, sums []analysis.ScenarioSummary) {
	fmt.Fprintf(w, "%-10s %-6s %-16s %-18s %-18s %-18s\n",
		"scenario", "mult", "end_accounts", "cum_revenue", "final_checking", "final_savings")
	for _, s := range sums {
		fmt.Fprintf(w, "%-10s %-6.2f %-16s %-18s %-18s %-18s\n",
			s.Scenario,
			s.Multiplier,
			count(s.EndingAccounts),
			cents(s.CumulativeRevenue),
			cents(s.FinalCheckingBalance),
			cents(s.FinalSavingsBalance),
		)
	}
}

// Comparison prints every scenario's deltas against Base at one month.
func Comparison(w io.Writer, month int, deltas []analysis.ScenarioDelta) {
	fmt.Fprintf(w, "month %d\n", month)
	fmt.Fprintf(w, "%-10s %-6s %-16s %-16s %-12s %-12s\n",
		"scenario", "mult", "accounts", "revenue", "acct_vs_base", "rev_vs_base")
	for _, d := range deltas {
		fmt.Fprintf(w, "%-10s %-6.2f %-16s %-16s %-12s %-12s\n",
			d.Scenario,
			d.Multiplier,
			count(d.TotalAccounts),
			cents(d.TotalRevenue),
			pct(d.AccountsVsBase),
			pct(d.RevenueVsBase),
		)
	}
}

// Series prints interpolated values of one input, months ascending.
// values[i] is the value at months[i].
func Series(w io.Writer, input string, months []int, values []float64) {
	fmt.Fprintf(w, "%-6s %s\n", "month", input)
	for i, m := range months {
		fmt.Fprintf(w, "%-6d %s\n", m, decimal.NewFromFloat(values[i]).StringFixed(4))
	}
}

// cents formats a dollar amount with exactly two decimals.
func cents(x float64) string {
	return "$" + decimal.NewFromFloat(x).StringFixed(2)
}

// count formats a fractional count with one decimal.
func count(x float64) string {
	return decimal.NewFromFloat(x).StringFixed(1)
}

// pct formats a fraction as a signed percentage.
func pct(x float64) string {
	return decimal.NewFromFloat(x*100).StringFixed(1) + "%"
}
