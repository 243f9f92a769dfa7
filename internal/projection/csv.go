package projection

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"platform-projections/internal/model"
)

// FileSink writes the table to a CSV file at Path.
type FileSink struct {
	Path string
}

func (s FileSink) Write(t *Table) error { return WriteTableCSV(s.Path, t) }

// WriteTableCSV writes one record per (month, scenario) with flat
// columns, channel columns in catalog order.
func WriteTableCSV(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(csvHeader()); err != nil {
		return err
	}
	for _, r := range t.Rows {
		if err := w.Write(csvRecord(r)); err != nil {
			return err
		}
	}
	return w.Error()
}

func csvHeader() []string {
	header := []string{
		"month",
		"scenario",
		"total_accounts",
		"active_accounts",
		"checking_accounts",
		"saving_accounts",
	}
	for _, c := range model.InflowChannels {
		p := colPrefix(c)
		header = append(header, p+"_quantity", p+"_amount")
	}
	header = append(header, "total_inflows")
	for _, c := range model.OutflowChannels {
		p := colPrefix(c)
		header = append(header, p+"_quantity", p+"_amount", p+"_solved_rate")
	}
	return append(header,
		"total_outflows",
		"net_remaining",
		"savings_transfer",
		"monthly_checking",
		"monthly_savings",
		"total_revenue",
		"revenue_per_account",
		"revenue_per_active_account",
		"checking_balance",
		"savings_balance",
	)
}

// csvRecord relies on Inflows and Outflows being in catalog order, which
// is how the evaluator builds them.
func csvRecord(r model.BalanceRow) []string {
	rec := []string{
		strconv.Itoa(r.Month),
		r.Scenario,
		fmtFloat(r.TotalAccounts),
		fmtFloat(r.ActiveAccounts),
		fmtFloat(r.CheckingAccounts),
		fmtFloat(r.SavingAccounts),
	}
	for _, f := range r.Inflows {
		rec = append(rec, fmtFloat(f.Quantity), fmtFloat(f.Amount))
	}
	rec = append(rec, fmtFloat(r.TotalInflows))
	for _, f := range r.Outflows {
		rec = append(rec, fmtFloat(f.Quantity), fmtFloat(f.Amount), fmtFloat(f.SolvedRate))
	}
	return append(rec,
		fmtFloat(r.TotalOutflows),
		fmtFloat(r.NetRemaining),
		fmtFloat(r.SavingsTransfer),
		fmtFloat(r.MonthlyChecking),
		fmtFloat(r.MonthlySavings),
		fmtFloat(r.TotalRevenue),
		fmtFloat(r.RevenuePerAccount),
		fmtFloat(r.RevenuePerActiveAccount),
		fmtFloat(r.CheckingBalance),
		fmtFloat(r.SavingsBalance),
	)
}

func colPrefix(c model.Channel) string {
	return strings.ToLower(string(c))
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
