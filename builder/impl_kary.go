// SPDX-License-Identifier: MIT
// Package: arbor/builder
//
// impl_kary.go - implementation of KAry(k, depth) constructor.
//
// Contract:
//   - k ≥ 1 and depth ≥ 0 (else ErrTooFewNodes).
//   - Appends one complete k-ary tree: every node above the last level has
//     exactly k children. depth 0 is a lone root.
//   - Payload indices are assigned level by level (breadth-first).
//   - The total node count Σ k^i must not exceed MaxKAryNodes (else ErrConstructFailed).
//
// Complexity: O(N) time and O(k^depth) extra space for the frontier, N = Σ k^i.

package builder

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/katalvlaran/arbor/tree"
)

const (
	methodKAry = "KAry"

	// MaxKAryNodes caps the size of a single KAry tree.
	MaxKAryNodes = 1 << 20
)

// KAry returns a Constructor that appends a complete k-ary tree of the given depth.
func KAry[E any](k, depth int) Constructor[E] {
	return func(t *tree.Tree[E], cfg *config[E]) error {
		if k < 1 {
			return fmt.Errorf("%s: k=%d < min=1: %w", methodKAry, k, ErrTooFewNodes)
		}
		if depth < 0 {
			return fmt.Errorf("%s: depth=%d < min=0: %w", methodKAry, depth, ErrTooFewNodes)
		}
		if total, ok := karySize(k, depth); !ok {
			return fmt.Errorf("%s: k=%d depth=%d exceeds %d nodes (%d): %w",
				methodKAry, k, depth, MaxKAryNodes, total, ErrConstructFailed)
		}

		level := []*tree.Node[E]{t.AddRoot(cfg.nextPayload())}
		for d := 0; d < depth; d++ {
			level = lo.FlatMap(level, func(p *tree.Node[E], _ int) []*tree.Node[E] {
				return lo.Times(k, func(int) *tree.Node[E] {
					return p.AddChild(cfg.nextPayload())
				})
			})
		}

		return nil
	}
}

// karySize returns Σ_{i=0..depth} k^i, stopping once MaxKAryNodes is exceeded.
func karySize(k, depth int) (int, bool) {
	total, width := 1, 1
	for d := 0; d < depth; d++ {
		width *= k
		total += width
		if total > MaxKAryNodes {
			return total, false
		}
	}

	return total, true
}
