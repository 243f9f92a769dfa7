package params

import (
	"fmt"
	"sort"

	"platform-projections/internal/model"
)

// Store is read-only access to loaded observations, keyed by input name
// and month. Build one with Load; a built store never mutates and is safe
// for concurrent readers.
type Store struct {
	values map[string]map[int]float64
}

// Load drains a source and resolves duplicate (input, month) pairs per
// the policy. With DuplicateError the first duplicate aborts the load.
func Load(src Source, policy model.DuplicatePolicy) (*Store, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	obs, err := src.Observations()
	if err != nil {
		return nil, fmt.Errorf("read observations: %w", err)
	}

	st := &Store{values: make(map[string]map[int]float64)}
	for i, o := range obs {
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("observation %d: %w", i, err)
		}
		byMonth, ok := st.values[o.Input]
		if !ok {
			byMonth = make(map[int]float64)
			st.values[o.Input] = byMonth
		}
		prev, dup := byMonth[o.Month]
		if !dup {
			byMonth[o.Month] = o.Value
			continue
		}
		switch policy {
		case model.DuplicateMax:
			if o.Value > prev {
				byMonth[o.Month] = o.Value
			}
		case model.DuplicateFirst:
			// keep prev
		case model.DuplicateError:
			return nil, fmt.Errorf("duplicate observation for %s month %d", o.Input, o.Month)
		}
	}
	return st, nil
}

// Value returns the raw observation for (input, month). ok is false when
// no observation exists; the caller decides the fallback.
func (s *Store) Value(input string, month int) (float64, bool) {
	byMonth, ok := s.values[input]
	if !ok {
		return 0, false
	}
	v, ok := byMonth[month]
	return v, ok
}

// Has reports whether any observation exists for the input, at any month.
func (s *Store) Has(input string) bool {
	_, ok := s.values[input]
	return ok
}

// Inputs returns the loaded input names, sorted.
func (s *Store) Inputs() []string {
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len counts distinct (input, month) pairs after duplicate resolution.
func (s *Store) Len() int {
	n := 0
	for _, byMonth := range s.values {
		n += len(byMonth)
	}
	return n
}
