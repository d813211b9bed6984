// SPDX-License-Identifier: MIT
// Package: arbor/builder
//
// impl_random.go - implementation of RandomRecursive(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes); requires cfg.rng (else ErrNeedRandSource).
//   - Node 0 becomes a new root; node i (i ≥ 1) attaches under a node drawn
//     uniformly from nodes 0..i-1 (random recursive tree).
//   - Deterministic for a fixed seed and call order.
//
// Complexity: O(n) time, O(n) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/arbor/tree"
)

const (
	methodRandomRecursive = "RandomRecursive"
	minRandomNodes        = 1
)

// RandomRecursive returns a Constructor that appends a random recursive tree of n nodes.
func RandomRecursive[E any](n int) Constructor[E] {
	return func(t *tree.Tree[E], cfg *config[E]) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomRecursive, n, minRandomNodes, ErrTooFewNodes)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomRecursive, ErrNeedRandSource)
		}

		nodes := make([]*tree.Node[E], 0, n)
		nodes = append(nodes, t.AddRoot(cfg.nextPayload()))
		for i := 1; i < n; i++ {
			parent := nodes[cfg.rng.Intn(i)]
			nodes = append(nodes, parent.AddChild(cfg.nextPayload()))
		}

		return nil
	}
}
