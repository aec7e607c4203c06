// Package tsp - cost of a closed tour.
//
// Design:
//   - Legs are resolved through a name→coordinate lookup built per call.
//   - The total is the plain sum of the legs; no rounding, so any tour of two
//     or more distinct cities has a positive cost.
package tsp

import "gonum.org/v1/gonum/floats"

// Cost returns the total length of the closed cycle: the distance between
// every consecutive pair of cities plus the leg from the last city back to
// the first. A single city costs 0.
//
// The value is computed on first call and cached for the lifetime of s; it is
// safe to call from multiple goroutines.
//
// Errors: ErrInvalidState for an empty tour.
//
// Complexity: O(n) on first call, O(1) afterwards.
func (s *State) Cost() (float64, error) {
	s.costOnce.Do(func() {
		var legs []float64
		legs, s.costErr = s.Legs()
		if s.costErr != nil {
			return
		}
		s.cost = floats.Sum(legs)
	})
	return s.cost, s.costErr
}

// Legs returns the n leg lengths of the closed cycle; legs[i] is the distance
// from city i to city (i+1) mod n. Not cached.
//
// Errors: ErrInvalidState for an empty tour.
//
// Complexity: O(n).
func (s *State) Legs() ([]float64, error) {
	var n = len(s.path)
	if n == 0 {
		return nil, errEmptyTour("cost")
	}
	coords := s.lookup()
	legs := make([]float64, n)

	var (
		i        int
		from, to City
	)
	for i = 0; i < n; i++ {
		from = coords[s.path[i].Name]
		to = coords[s.path[(i+1)%n].Name]
		legs[i] = EuclideanDistance(from.Point(), to.Point())
	}
	return legs, nil
}
