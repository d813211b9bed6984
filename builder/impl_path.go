// SPDX-License-Identifier: MIT
// Package: arbor/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes).
//   - Appends one new root; every further node is the only child of the previous one.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/arbor/tree"
)

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path returns a Constructor that appends a chain of n nodes: depth n-1.
func Path[E any](n int) Constructor[E] {
	return func(t *tree.Tree[E], cfg *config[E]) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
		}

		cur := t.AddRoot(cfg.nextPayload())
		for i := 1; i < n; i++ {
			cur = cur.AddChild(cfg.nextPayload())
		}

		return nil
	}
}
