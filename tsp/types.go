package tsp

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState is returned when an operation needs at least one city
	// but the tour is empty.
	ErrInvalidState = errors.New("tsp: invalid state")

	// ErrDuplicateCityName is returned when two cities share a name.
	// Name-keyed lookups would otherwise collapse them silently.
	ErrDuplicateCityName = errors.New("tsp: duplicate city name")

	// ErrEmptyCityName is returned for a city without a name.
	ErrEmptyCityName = errors.New("tsp: empty city name")

	// ErrNonFiniteCoordinate is returned when a coordinate is NaN or ±Inf.
	ErrNonFiniteCoordinate = errors.New("tsp: non-finite coordinate")

	// ErrNeighborhoodTooLarge is returned when (N-1)! overflows int.
	ErrNeighborhoodTooLarge = errors.New("tsp: neighborhood too large")

	// ErrUnknownStrategy is returned by ParseStrategy for unrecognized names.
	ErrUnknownStrategy = errors.New("tsp: unknown neighborhood strategy")
)

// errEmptyTour is the single place that shapes the "empty tour" failure.
func errEmptyTour(op string) error {
	return fmt.Errorf("%s: empty tour: %w", op, ErrInvalidState)
}

// Strategy selects how AllNeighborsSample produces the permutation space.
type Strategy int

const (
	// SampleRejection draws uniform random permutations and rejects repeats
	// until all (N-1)! have been seen. Generation order is random.
	SampleRejection Strategy = iota

	// Enumerate walks the permutation space with Heap's algorithm.
	// Generation order is deterministic.
	Enumerate
)

// String returns the canonical name used by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case SampleRejection:
		return "sample"
	case Enumerate:
		return "enumerate"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a canonical name ("sample", "enumerate") to a Strategy.
// An empty name selects the default, SampleRejection.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "sample":
		return SampleRejection, nil
	case "enumerate":
		return Enumerate, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
	}
}

// valid reports whether s is one of the declared strategies.
func (s Strategy) valid() bool {
	return s == SampleRejection || s == Enumerate
}
