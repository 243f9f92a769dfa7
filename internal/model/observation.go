package model

import (
	"errors"
	"fmt"
)

// Observation is a single raw parameter reading: the value of one named
// input at one month. Observations are immutable once loaded.
//
// Months follow the anchor convention: real levels live at months
// 1, 6, 12, 24 and 36, and the month-37 slot carries the growth rate
// applied beyond month 36 (a rate, not a level).
type Observation struct {
	Input string  `json:"input"`
	Month int     `json:"month"`
	Value float64 `json:"value"`
}

func (o Observation) Validate() error {
	if o.Input == "" {
		return errors.New("input name must not be empty")
	}
	if o.Month < 1 {
		return fmt.Errorf("month must be >= 1, got %d", o.Month)
	}
	return nil
}

// DuplicatePolicy decides which value wins when a source yields several
// observations for the same (input, month).
// Keep these values stable; they appear in config files.
type DuplicatePolicy string

const (
	// DuplicateMax keeps the largest value. Matches the legacy reporting
	// pipeline; the default.
	DuplicateMax DuplicatePolicy = "max"
	// DuplicateFirst keeps the first value seen, in source order.
	DuplicateFirst DuplicatePolicy = "first"
	// DuplicateError rejects the load outright.
	DuplicateError DuplicatePolicy = "error"
)

func (p DuplicatePolicy) Validate() error {
	switch p {
	case DuplicateMax, DuplicateFirst, DuplicateError:
		return nil
	}
	return fmt.Errorf("unknown duplicate policy %q", p)
}
