// SPDX-License-Identifier: MIT
// Package: arbor/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - payload = index-derived value for int, int64 and string payloads
//     (0,1,2,... / "0","1","2",...), zero value for any other type
//   - rng     = nil (stochastic constructors require WithSeed or WithRand)

package builder

import (
	"math/rand"
	"strconv"
)

// config aggregates all knobs used by constructors. It is shared by pointer
// across the constructors of one BuildTree call so the payload index keeps
// counting.
type config[E any] struct {
	// payload maps a running node index to the node's payload.
	payload func(idx int) E
	// rng for stochastic choices; nil means no randomness.
	rng *rand.Rand
	// next payload index.
	seq int
}

// newConfig constructs a config with defaults and applies opts in order.
func newConfig[E any](opts ...Option[E]) *config[E] {
	cfg := &config[E]{payload: defaultPayload[E]()}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// nextPayload returns the payload for the next node and advances the index.
func (c *config[E]) nextPayload() E {
	e := c.payload(c.seq)
	c.seq++

	return e
}

// defaultPayload derives payloads from the index for the common scalar types.
func defaultPayload[E any]() func(int) E {
	return func(idx int) E {
		var e E
		switch p := any(&e).(type) {
		case *int:
			*p = idx
		case *int64:
			*p = int64(idx)
		case *string:
			*p = strconv.Itoa(idx)
		}
		return e
	}
}
