package cascade

import (
	"platform-projections/internal/interp"
	"platform-projections/internal/model"
)

// Resolver applies the scenario multiplier. Only the Accounts input is
// ever scenario-scaled; every other input passes through at its base
// interpolated value no matter the scenario.
type Resolver struct {
	values interp.Valuer
}

func NewResolver(values interp.Valuer) *Resolver {
	return &Resolver{values: values}
}

// Accounts returns the scenario-adjusted account count for a month.
func (r *Resolver) Accounts(month int, s model.Scenario) float64 {
	return r.values.Value(model.InputAccounts, month) * s.Multiplier
}

// Base returns the scenario-invariant interpolated value of an input.
func (r *Resolver) Base(input string, month int) float64 {
	return r.values.Value(input, month)
}
