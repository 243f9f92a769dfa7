package model

// ChannelFlow is one channel's activity for one (month, scenario).
type ChannelFlow struct {
	Channel  Channel
	Quantity float64 // transactions this month
	Amount   float64 // dollars this month

	// SolvedRate is Amount/Quantity for outflow channels, 0 when Quantity
	// is 0. Diagnostic only; never fed back into the cascade.
	SolvedRate float64
}

// CascadeRow holds every derived metric for one (month, scenario).
// A row is a pure function of the parameter store, the month and the
// scenario multiplier; cascade rows never depend on each other.
type CascadeRow struct {
	Month    int
	Scenario string

	TotalAccounts    float64
	ActiveAccounts   float64
	CheckingAccounts float64
	SavingAccounts   float64

	Inflows  []ChannelFlow
	Outflows []ChannelFlow

	TotalInflows  float64
	TotalOutflows float64

	NetRemaining    float64
	SavingsTransfer float64
	MonthlyChecking float64
	MonthlySavings  float64

	TotalRevenue            float64
	RevenuePerAccount       float64
	RevenuePerActiveAccount float64
}

// BalanceRow extends a cascade row with the two running balances. Unlike
// cascade metrics, a balance depends on the previous month's balance
// within the same scenario.
type BalanceRow struct {
	CascadeRow

	CheckingBalance float64
	SavingsBalance  float64
}

// Flow returns the row's flow for one channel, searching inflows then
// outflows. The bool reports whether the channel was found.
func (r CascadeRow) Flow(c Channel) (ChannelFlow, bool) {
	for _, f := range r.Inflows {
		if f.Channel == c {
			return f, true
		}
	}
	for _, f := range r.Outflows {
		if f.Channel == c {
			return f, true
		}
	}
	return ChannelFlow{}, false
}
