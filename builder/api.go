// SPDX-License-Identifier: MIT
// Package: arbor/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildTree(bopts, cons...). Creates t, resolves cfg, runs cons in order.
//   - Every constructor appends one or more new roots; existing roots are never touched.
//   - Payload indices are shared by all constructors of one BuildTree call, so
//     composing Path(3) and Star(2) yields payloads 0..4 without repeats.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical trees.

package builder

import (
	"fmt"

	"github.com/katalvlaran/arbor/tree"
)

// Constructor applies a deterministic tree mutation using the resolved config.
// Constructors validate parameters before touching the tree and return
// sentinel errors; they never panic.
type Constructor[E any] func(t *tree.Tree[E], cfg *config[E]) error

// BuildTree creates a new tree, resolves the builder configuration from bopts,
// and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildTree: %w" and
// returned immediately together with a nil tree.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Wrapped constructor sentinels (ErrTooFewNodes, ErrNeedRandSource, ErrBadOutline).
func BuildTree[E any](bopts []Option[E], cons ...Constructor[E]) (*tree.Tree[E], error) {
	t := tree.New[E]()
	cfg := newConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildTree: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(t, cfg); err != nil {
			return nil, fmt.Errorf("BuildTree: %w", err)
		}
	}

	return t, nil
}
