package models

// ProjectionResponse represents the response from a projection run
type ProjectionResponse struct {
	Status        string            `json:"status"`
	HorizonMonths int               `json:"horizon_months"`
	Summaries     []ScenarioSummary `json:"summaries"`
	Rows          []ProjectionRow   `json:"rows,omitempty"`
}

// ScenarioSummary contains aggregated results for one scenario
type ScenarioSummary struct {
	Scenario   string  `json:"scenario"`
	Multiplier float64 `json:"multiplier"`
	Months     int     `json:"months"`

	EndingAccounts       float64 `json:"ending_accounts"`
	EndingActiveAccounts float64 `json:"ending_active_accounts"`

	CumulativeRevenue  float64 `json:"cumulative_revenue"`
	CumulativeInflows  float64 `json:"cumulative_inflows"`
	CumulativeOutflows float64 `json:"cumulative_outflows"`

	FinalCheckingBalance float64 `json:"final_checking_balance"`
	FinalSavingsBalance  float64 `json:"final_savings_balance"`
	PeakCheckingBalance  float64 `json:"peak_checking_balance"`
	PeakSavingsBalance   float64 `json:"peak_savings_balance"`
}

// ProjectionRow represents one (month, scenario) in the projection table
type ProjectionRow struct {
	Month    int    `json:"month"`
	Scenario string `json:"scenario"`

	TotalAccounts    float64 `json:"total_accounts"`
	ActiveAccounts   float64 `json:"active_accounts"`
	CheckingAccounts float64 `json:"checking_accounts"`
	SavingAccounts   float64 `json:"saving_accounts"`

	Inflows  []ChannelFlow `json:"inflows,omitempty"`
	Outflows []ChannelFlow `json:"outflows,omitempty"`

	TotalInflows  float64 `json:"total_inflows"`
	TotalOutflows float64 `json:"total_outflows"`

	NetRemaining    float64 `json:"net_remaining"`
	SavingsTransfer float64 `json:"savings_transfer"`
	MonthlyChecking float64 `json:"monthly_checking"`
	MonthlySavings  float64 `json:"monthly_savings"`

	TotalRevenue            float64 `json:"total_revenue"`
	RevenuePerAccount       float64 `json:"revenue_per_account"`
	RevenuePerActiveAccount float64 `json:"revenue_per_active_account"`

	CheckingBalance float64 `json:"checking_balance"`
	SavingsBalance  float64 `json:"savings_balance"`
}

// ChannelFlow is one channel's quantity and amount for a row
type ChannelFlow struct {
	Channel    string  `json:"channel"`
	Quantity   float64 `json:"quantity"`
	Amount     float64 `json:"amount"`
	SolvedRate float64 `json:"solved_rate,omitempty"`
}

// CompareResponse represents the response from a scenario comparison
type CompareResponse struct {
	Month      int             `json:"month"`
	Comparison []ScenarioDelta `json:"comparison"`
}

// ScenarioDelta contains one scenario's metrics and variance from Base
type ScenarioDelta struct {
	Scenario   string  `json:"scenario"`
	Multiplier float64 `json:"multiplier"`

	TotalAccounts     float64 `json:"total_accounts"`
	ActiveAccounts    float64 `json:"active_accounts"`
	TotalRevenue      float64 `json:"total_revenue"`
	RevenuePerAccount float64 `json:"revenue_per_account"`

	AccountsVsBase float64 `json:"accounts_vs_base"`
	RevenueVsBase  float64 `json:"revenue_vs_base"`
}

// InterpolateResponse represents interpolated values of one input
type InterpolateResponse struct {
	Input      string              `json:"input"`
	GrowthRate float64             `json:"growth_rate"` // rate applied beyond month 36
	Points     []InterpolatedPoint `json:"points"`
}

// InterpolatedPoint is one (month, value) sample
type InterpolatedPoint struct {
	Month int     `json:"month"`
	Value float64 `json:"value"`
}

// ScenarioInfo describes one catalog scenario
type ScenarioInfo struct {
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
	External   bool    `json:"external,omitempty"` // multiplier must be supplied by the caller
}

// InputInfo describes one known parameter input
type InputInfo struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
