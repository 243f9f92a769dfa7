package params

import "platform-projections/internal/model"

// Source yields raw observations. Implementations read files, serve
// in-memory rows, or wrap request payloads; the store does not care
// where observations come from.
type Source interface {
	Observations() ([]model.Observation, error)
}

// StaticSource serves a fixed slice. Used for config-inline parameters,
// API request payloads, and tests.
type StaticSource []model.Observation

func (s StaticSource) Observations() ([]model.Observation, error) {
	return []model.Observation(s), nil
}
