// Package tsp - the State type: construction, copies and read-only views.
//
// Design:
//   - A State owns its path; every accessor returns a fresh copy.
//   - Nothing mutates a State after New returns except the compute-once cost
//     cell (see cost.go).
package tsp

import (
	"strings"
	"sync"

	"github.com/paulmach/orb"
)

// State is one closed circuit over a set of uniquely named cities, visited in
// path order; the last city connects back to the first.
//
// The zero value is an empty tour: views return empty slices while Cost and
// the neighborhood operations report ErrInvalidState.
type State struct {
	path []City
	cfg  config

	costOnce sync.Once
	cost     float64
	costErr  error
}

// New builds a State from cities in the given order, or in a uniformly random
// order when WithShuffle(true) is passed. The input slice is copied.
//
// Errors: ErrEmptyCityName, ErrNonFiniteCoordinate, ErrDuplicateCityName.
//
// Complexity: O(n) time, O(n) space.
func New(cities []City, opts ...Option) (*State, error) {
	if err := validateCities(cities); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	path := make([]City, len(cities))
	copy(path, cities)
	if cfg.shuffle {
		shuffleInPlace(path, cfg.rng)
	}
	cfg.shuffle = false

	return &State{path: path, cfg: cfg}, nil
}

// derive wraps an already validated path that the caller hands over.
func (s *State) derive(path []City) *State {
	return &State{path: path, cfg: s.config()}
}

// config returns the state's configuration, filling in the default random
// source for the zero value.
func (s *State) config() config {
	if s.cfg.rng == nil {
		return newConfig(WithStrategy(s.cfg.strategy))
	}
	return s.cfg
}

// Copy returns a new State over the same cities, re-shuffled when shuffle is
// true. The cached cost is not carried over.
//
// Complexity: O(n).
func (s *State) Copy(shuffle bool) *State {
	path := s.Cities()
	out := s.derive(path)
	if shuffle {
		shuffleInPlace(path, out.cfg.rng)
	}
	return out
}

// Len returns the number of cities in the tour.
func (s *State) Len() int {
	return len(s.path)
}

// Strategy returns the neighborhood strategy of the state.
func (s *State) Strategy() Strategy {
	return s.cfg.strategy
}

// Cities returns a copy of the path.
func (s *State) Cities() []City {
	out := make([]City, len(s.path))
	copy(out, s.path)
	return out
}

// Names returns the city names in path order,
// e.g. [{"Atlanta", 585.6, 376.8}, ...] → ["Atlanta", ...].
func (s *State) Names() []string {
	out := make([]string, len(s.path))

	var i int
	for i = range s.path {
		out[i] = s.path[i].Name
	}
	return out
}

// Coordinates returns the city coordinates in path order, parallel to Names.
func (s *State) Coordinates() []orb.Point {
	out := make([]orb.Point, len(s.path))

	var i int
	for i = range s.path {
		out[i] = s.path[i].Point()
	}
	return out
}

// Anchor returns the last city of the path, which neighborhood moves keep in
// place. ok is false for an empty tour.
func (s *State) Anchor() (c City, ok bool) {
	if len(s.path) == 0 {
		return City{}, false
	}
	return s.path[len(s.path)-1], true
}

// Bound returns the bounding box of all cities. An empty tour yields the
// zero orb.Bound.
func (s *State) Bound() orb.Bound {
	if len(s.path) == 0 {
		return orb.Bound{}
	}
	return orb.MultiPoint(s.Coordinates()).Bound()
}

// String returns a compact form such as "[A B C | A]"; the bar marks the
// closing leg back to the first city.
func (s *State) String() string {
	if len(s.path) == 0 {
		return "[]"
	}

	var b strings.Builder
	b.WriteByte('[')
	for i, c := range s.path {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.Name)
	}
	b.WriteString(" | ")
	b.WriteString(s.path[0].Name)
	b.WriteByte(']')
	return b.String()
}

// lookup maps each name to its city. Built per call, never stored.
func (s *State) lookup() map[string]City {
	m := make(map[string]City, len(s.path))
	for _, c := range s.path {
		m[c.Name] = c
	}
	return m
}

// SameCycle reports whether s and other visit the same cities in the same
// cyclic order and direction, regardless of the starting city.
//
// Complexity: O(n) time.
func (s *State) SameCycle(other *State) bool {
	var n = len(s.path)
	if other == nil || len(other.path) != n {
		return false
	}
	if n == 0 {
		return true
	}

	// Find s's first city in other.
	var (
		j int
		p = -1
	)
	for j = 0; j < n; j++ {
		if other.path[j].Name == s.path[0].Name {
			p = j
			break
		}
	}
	if p == -1 {
		return false
	}

	var i int
	for i = 0; i < n; i++ {
		if s.path[i] != other.path[(p+i)%n] {
			return false
		}
	}
	return true
}
