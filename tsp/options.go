// Package tsp - functional options for State construction.
//
// Contract:
//   - Options are functional (type Option func(*config)), applied in order,
//     later ones override earlier ones.
//   - Option constructors panic on meaningless inputs (nil RNG, unknown
//     strategy). Operations on a State never panic on user input.
//   - Determinism is explicit: WithSeed or WithRand. Without either, the
//     default seed is used.
package tsp

import "math/rand"

// Option customizes New.
type Option func(*config)

// config aggregates construction knobs. shuffle is consumed by New only;
// derived states inherit rng and strategy.
type config struct {
	shuffle  bool
	rng      *lockedRand
	strategy Strategy
}

// newConfig applies opts over deterministic defaults.
//
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		shuffle:  false,
		rng:      nil,
		strategy: SampleRejection,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = seededRand(0)
	}
	return cfg
}

// WithShuffle randomizes the order of the input cities, and with it the
// starting city, at construction time.
func WithShuffle(shuffle bool) Option {
	return func(c *config) {
		c.shuffle = shuffle
	}
}

// WithSeed seeds the state's random source. seed==0 selects the package
// default seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = seededRand(seed)
	}
}

// WithRand installs an explicit generator. The State takes ownership of r:
// callers must not draw from it afterwards. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("tsp: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = newLockedRand(r)
	}
}

// WithStrategy selects the neighborhood strategy. Panics on an undeclared
// Strategy value.
func WithStrategy(s Strategy) Option {
	if !s.valid() {
		panic("tsp: WithStrategy(" + s.String() + ")")
	}
	return func(c *config) {
		c.strategy = s
	}
}
