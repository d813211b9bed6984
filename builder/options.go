// SPDX-License-Identifier: MIT
// Package: arbor/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Options are functional (type Option[E] func(*config[E])).
//   - Option constructors panic on meaningless inputs (nil functions, nil RNG).
//     Constructors themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// Option customizes the builder configuration before construction begins.
type Option[E any] func(*config[E])

// WithPayload sets the payload generator: running index → payload.
// Panics on nil.
func WithPayload[E any](fn func(idx int) E) Option[E] {
	if fn == nil {
		panic("builder: WithPayload(nil)")
	}
	return func(c *config[E]) {
		c.payload = fn
	}
}

// WithLabels sets a LabelFn as the payload generator of a string tree.
// Panics on nil.
func WithLabels(fn LabelFn) Option[string] {
	if fn == nil {
		panic("builder: WithLabels(nil)")
	}
	return WithPayload[string](fn)
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand[E any](r *rand.Rand) Option[E] {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config[E]) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed[E any](seed int64) Option[E] {
	return func(c *config[E]) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
