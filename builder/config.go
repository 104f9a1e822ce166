// SPDX-License-Identifier: MIT
// Package: valvenet/builder
//
// config.go: internal configuration, deterministic defaults and the
// functional options that mutate it.
//
// Deterministic defaults:
//   • idFn      = PairIDFn             ("AA","AB",...,"ZZ")
//   • rng       = nil                  (no randomness unless seeded)
//   • rateFn    = ConstantRateFn(1)
//   • start     = idFn(0)
//   • oneWay    = false                (every tunnel gets its reverse)
//   • zeroStart = true                 (the start valve never carries value)

package builder

import "math/rand"

// BuilderOption customizes a build by mutating a builderConfig before any
// constructor runs.
type BuilderOption func(*builderConfig)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn      IDFn
	rng       *rand.Rand
	rateFn    RateFn
	start     string
	oneWay    bool
	zeroStart bool
}

const defaultConstRate = 1

// newBuilderConfig applies opts in order over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      PairIDFn,
		rateFn:    ConstantRateFn(defaultConstRate),
		zeroStart: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.start == "" {
		cfg.start = cfg.idFn(0)
	}

	return cfg
}

// WithIDScheme sets the valve ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors and rates.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new seeded *rand.Rand.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRateFn overrides the per-valve rate generator. Panics on nil.
func WithRateFn(fn RateFn) BuilderOption {
	if fn == nil {
		panic("builder: WithRateFn(nil)")
	}
	return func(c *builderConfig) {
		c.rateFn = fn
	}
}

// WithStart names the start valve. It must be produced by some constructor.
// Panics on "".
func WithStart(id string) BuilderOption {
	if id == "" {
		panic("builder: WithStart(\"\")")
	}
	return func(c *builderConfig) {
		c.start = id
	}
}

// WithOneWay emits tunnels only in constructor order, without the reverse.
func WithOneWay() BuilderOption {
	return func(c *builderConfig) {
		c.oneWay = true
	}
}

// WithValuableStart lets the rate generator apply to the start valve too.
func WithValuableStart() BuilderOption {
	return func(c *builderConfig) {
		c.zeroStart = false
	}
}
