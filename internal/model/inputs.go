package model

// Well-known parameter input names. Channel-derived names (ACHinPerActive,
// ACHoutShare, ...) come from the Channel methods instead.
const (
	InputAccounts      = "Accounts"
	InputActiveShare   = "ActiveShare"
	InputCheckingShare = "CheckingShare"
	InputSavingShare   = "SavingShare"

	InputSavingsTransferRate = "SavingsTransferRate"
	InputCheckingUsageRate   = "CheckingUsageRate"
	InputSavingsUsageRate    = "SavingsUsageRate"

	// InputGrowthRate holds the monthly growth rate applied beyond month 36.
	// Observed at GrowthRateMonth and read as a rate, not a level.
	InputGrowthRate = "GrowthRateM37Plus"
)

// GrowthRateMonth is the month slot where InputGrowthRate is observed.
const GrowthRateMonth = 37

// DefaultGrowthRate applies beyond month 36 when no growth observation exists.
const DefaultGrowthRate = 0.01

// DefaultHorizonMonths is the projection length when a run does not set one.
const DefaultHorizonMonths = 60

// AnchorMonths are the months where raw observations carry levels; every
// other month within the anchor range is interpolated between them.
var AnchorMonths = []int{1, 6, 12, 24, 36}

// KnownInputs lists every input name the cascade consults, in cascade
// order, for catalog endpoints and diagnostics.
func KnownInputs() []string {
	names := []string{
		InputAccounts,
		InputActiveShare,
		InputCheckingShare,
		InputSavingShare,
	}
	for _, c := range InflowChannels {
		names = append(names, c.PerActiveInput(), c.RateInput())
	}
	for _, c := range OutflowChannels {
		names = append(names, c.PerActiveInput(), c.ShareInput())
	}
	return append(names,
		InputSavingsTransferRate,
		InputCheckingUsageRate,
		InputSavingsUsageRate,
		InputGrowthRate,
	)
}
