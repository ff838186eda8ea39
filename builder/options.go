// SPDX-License-Identifier: MIT
// Package: randgraph/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     algorithms themselves MUST NOT panic.
//   • Determinism is explicit: seeding happens via WithSeed or WithRand.
//   • No hidden globals; everything flows through config.

package builder

import (
	"math/rand"
)

// Option customizes the behavior of a builder operation by mutating a
// config instance before any graph state is touched.
// Applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config aggregates all knobs used by builder operations.
// It is passed by VALUE internally (immutable to callers).
type config struct {
	// RNG for stochastic choices; nil means "not supplied" and stochastic
	// operations reject it with ErrNeedRandSource.
	rng *rand.Rand
	// directed selects a digraph in Random.
	directed bool
}

// newConfig applies options in order (later overrides earlier).
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG, letting several calls share one
// source. Panics on nil; prefer WithSeed for one-shot reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent nondeterminism later.
		panic("builder: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSeed creates a fresh *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithDirectedGraph makes Random construct a digraph instead of an
// undirected graph. AddRandomEdge ignores it (orientation comes from the
// graph itself).
func WithDirectedGraph() Option {
	return func(c *config) { c.directed = true }
}
