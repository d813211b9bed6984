// SPDX-License-Identifier: MIT

// Package builder provides deterministic, functional-options style
// constructors for arbor trees: fixtures for tests, benchmarks and the
// arbor CLI.
//
// The package offers:
//
//   - One orchestrator: BuildTree(bopts, cons...) creates a tree and runs
//     every Constructor in order. Each constructor appends new roots.
//   - Topologies:
//     – Path(n):             a chain of n nodes.
//     – Star(n):             a hub root with n-1 leaves.
//     – KAry(k, depth):      a complete k-ary tree.
//     – RandomRecursive(n):  node i hangs under a uniformly drawn earlier node.
//     – Outline(lines):      a forest parsed from indented text (string trees).
//   - Options:
//     – WithPayload(fn):     running index → payload.
//     – WithLabels(fn):      a LabelFn for string trees (DecimalLabel,
//     ExcelColumnLabel, HexLabel, SymbolLabel, PrefixedLabel).
//     – WithSeed / WithRand: RNG for RandomRecursive.
//
// Guarantees:
//
//   - Determinism: equal inputs, options, seed and constructor order give
//     structurally identical trees.
//   - Option constructors panic on nil arguments; constructors never panic
//     and return sentinel errors (ErrTooFewNodes, ErrNeedRandSource,
//     ErrConstructFailed, ErrBadOutline) wrapped with context.
//
// Example:
//
//	t, err := builder.BuildTree(
//	    []builder.Option[int]{builder.WithSeed[int](7)},
//	    builder.KAry[int](2, 3),
//	    builder.RandomRecursive[int](10),
//	)
package builder
