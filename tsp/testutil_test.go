// Package tsp_test provides lightweight helpers shared across *_test.go files.
package tsp_test

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/katalvlaran/tourstate/tsp"
)

const (
	// seedDet is a deterministic seed (0 ⇒ package default seed).
	seedDet = int64(0)

	// seedAlt is a second seed for "different seed" comparisons.
	seedAlt = int64(42)
)

// Repeat runs fn n times to expose flakiness in stochastic paths.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int // loop iterator
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// rectangle is A(0,0) B(0,3) C(4,3) D(4,0); its perimeter is 14.
func rectangle() []tsp.City {
	return []tsp.City{
		{Name: "A", X: 0, Y: 0},
		{Name: "B", X: 0, Y: 3},
		{Name: "C", X: 4, Y: 3},
		{Name: "D", X: 4, Y: 0},
	}
}

// triangle is A(0,0) B(1,0) C(0,1).
func triangle() []tsp.City {
	return []tsp.City{
		{Name: "A", X: 0, Y: 0},
		{Name: "B", X: 1, Y: 0},
		{Name: "C", X: 0, Y: 1},
	}
}

// scatter returns n cities named c0..c{n-1} at seeded random positions.
func scatter(n int, seed int64) []tsp.City {
	r := rand.New(rand.NewSource(seed))
	out := make([]tsp.City, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = tsp.City{Name: fmt.Sprintf("c%d", i), X: r.Float64() * 1000, Y: r.Float64() * 1000}
	}
	return out
}

// rotate returns a copy of cities shifted left by k positions.
func rotate(cities []tsp.City, k int) []tsp.City {
	n := len(cities)
	out := make([]tsp.City, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = cities[(i+k)%n]
	}
	return out
}

// pathKey renders a state's visiting order as "A,B,C".
func pathKey(s *tsp.State) string {
	return strings.Join(s.Names(), ",")
}

// sortedNames returns the names of cities in lexical order.
func sortedNames(cities []tsp.City) []string {
	out := make([]string, len(cities))
	for i, c := range cities {
		out[i] = c.Name
	}
	slices.Sort(out)
	return out
}

// mustState builds a State or fails the test.
func mustState(t *testing.T, cities []tsp.City, opts ...tsp.Option) *tsp.State {
	t.Helper()
	s, err := tsp.New(cities, opts...)
	if err != nil {
		t.Fatalf("tsp.New: %v", err)
	}
	return s
}
