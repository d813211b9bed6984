// SPDX-License-Identifier: MIT
// Package: arbor/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes).
//   - Appends one hub root with n-1 leaf children in ascending index order.
//
// Complexity: O(n) time, O(n) extra space for the leaf slice.

package builder

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/katalvlaran/arbor/tree"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that appends a hub with n-1 leaves.
func Star[E any](n int) Constructor[E] {
	return func(t *tree.Tree[E], cfg *config[E]) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
		}

		hub := t.AddRoot(cfg.nextPayload())
		leaves := lo.Times(n-1, func(int) *tree.Node[E] {
			return tree.NewNode(cfg.nextPayload())
		})
		if _, err := hub.Children().AddAll(leaves...); err != nil {
			return fmt.Errorf("%s: %w: %w", methodStar, ErrConstructFailed, err)
		}

		return nil
	}
}
