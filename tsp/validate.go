// Package tsp - input validation for State construction.
//
// Deterministic, side-effect free; returns sentinels from types.go wrapped
// with the offending position.
package tsp

import (
	"fmt"
	"math"
)

// validateCities enforces non-empty, unique names and finite coordinates.
// An empty slice is valid here: emptiness is reported by the operations that
// need a city (Cost, the neighborhood).
//
// Complexity: O(n) time, O(n) extra space.
func validateCities(cities []City) error {
	seen := make(map[string]int, len(cities))

	var (
		i  int  // loop index
		c  City // current city
		at int  // position of the first occurrence
		ok bool // presence flag in seen
	)
	for i = 0; i < len(cities); i++ {
		c = cities[i]
		if c.Name == "" {
			return fmt.Errorf("city at position %d: %w", i, ErrEmptyCityName)
		}
		if !finite(c.X) || !finite(c.Y) {
			return fmt.Errorf("city %q at position %d: %w", c.Name, i, ErrNonFiniteCoordinate)
		}
		if at, ok = seen[c.Name]; ok {
			return fmt.Errorf("city %q at positions %d and %d: %w", c.Name, at, i, ErrDuplicateCityName)
		}
		seen[c.Name] = i
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
