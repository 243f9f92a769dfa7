package interp

import (
	"math"

	"platform-projections/internal/model"
	"platform-projections/internal/params"
)

// Valuer is the lookup the cascade evaluates against. Engine and Cached
// both satisfy it.
type Valuer interface {
	Value(input string, month int) float64
}

// Engine reconstructs a full monthly series from sparse anchor
// observations. Derived metrics read raw inputs exclusively through
// Value; nothing downstream consults the store directly.
type Engine struct {
	store *params.Store
}

func New(store *params.Store) *Engine { return &Engine{store: store} }

// Value returns the input's value at a month.
//
// Anchors at months 1, 6, 12, 24 and 36 carry observed levels; a missing
// anchor inherits the nearest earlier anchor's resolved value, and a
// missing month-1 anchor resolves to 0. Between anchors the value is
// linear in the month on raw values. Past month 36 the month-36 level
// compounds monthly at the growth rate. Months below 1 and inputs with no
// observations at all yield 0.
func (e *Engine) Value(input string, month int) float64 {
	if month < 1 {
		return 0
	}
	if !e.store.Has(input) {
		return 0
	}

	a := e.anchors(input)
	switch {
	case month == 1:
		return a.m1
	case month <= 6:
		return a.m1 + (a.m6-a.m1)*float64(month-1)/5
	case month <= 12:
		return a.m6 + (a.m12-a.m6)*float64(month-6)/6
	case month <= 24:
		return a.m12 + (a.m24-a.m12)*float64(month-12)/12
	case month <= 36:
		return a.m24 + (a.m36-a.m24)*float64(month-24)/12
	default:
		return a.m36 * math.Pow(1+e.GrowthRate(), float64(month-36))
	}
}

type anchorSet struct {
	m1, m6, m12, m24, m36 float64
}

// anchors resolves the five anchor levels with forward fill.
func (e *Engine) anchors(input string) anchorSet {
	prev := 0.0
	resolved := [5]float64{}
	for i, m := range model.AnchorMonths {
		if v, ok := e.store.Value(input, m); ok {
			prev = v
		}
		resolved[i] = prev
	}
	return anchorSet{
		m1:  resolved[0],
		m6:  resolved[1],
		m12: resolved[2],
		m24: resolved[3],
		m36: resolved[4],
	}
}

// GrowthRate reads the beyond-horizon monthly growth rate. A raw store
// lookup at the month-37 slot, not an interpolation.
func (e *Engine) GrowthRate() float64 {
	if g, ok := e.store.Value(model.InputGrowthRate, model.GrowthRateMonth); ok {
		return g
	}
	return model.DefaultGrowthRate
}
