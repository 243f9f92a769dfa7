package models

// ProjectionRequest represents the request body for running a projection
type ProjectionRequest struct {
	Parameters []Observation `json:"parameters" binding:"required"`

	HorizonMonths    int      `json:"horizon_months,omitempty"`    // default: 60
	Scenarios        []string `json:"scenarios,omitempty"`         // default: full catalog
	CustomMultiplier float64  `json:"custom_multiplier,omitempty"` // backs the Custom scenario
	DuplicatePolicy  string   `json:"duplicate_policy,omitempty"`  // "max", "first" or "error"; default "max"

	Options ProjectionOptions `json:"options,omitempty"`
}

// Observation is one raw parameter reading
type Observation struct {
	Input string  `json:"input" binding:"required"`
	Month int     `json:"month" binding:"required"`
	Value float64 `json:"value"`
}

// ProjectionOptions contains optional projection parameters
type ProjectionOptions struct {
	IncludeRows     bool `json:"include_rows,omitempty"`     // default: summaries only
	IncludeChannels bool `json:"include_channels,omitempty"` // per-channel detail on each row
}

// CompareRequest asks for scenario deltas at a single month
type CompareRequest struct {
	Parameters       []Observation `json:"parameters" binding:"required"`
	Month            int           `json:"month" binding:"required"`
	Scenarios        []string      `json:"scenarios,omitempty"`
	CustomMultiplier float64       `json:"custom_multiplier,omitempty"`
	DuplicatePolicy  string        `json:"duplicate_policy,omitempty"`
}

// InterpolateRequest asks for interpolated values of one input
type InterpolateRequest struct {
	Parameters      []Observation `json:"parameters" binding:"required"`
	Input           string        `json:"input" binding:"required"`
	Months          []int         `json:"months,omitempty"`         // explicit months; wins over horizon
	HorizonMonths   int           `json:"horizon_months,omitempty"` // default: 60
	DuplicatePolicy string        `json:"duplicate_policy,omitempty"`
}
