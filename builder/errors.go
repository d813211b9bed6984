// SPDX-License-Identifier: MIT
// Package: arbor/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables (package-level) are exposed.
//   - Callers use errors.Is(err, ErrX) to branch on semantics.
//   - Constructors attach context with %w ("Path: n=0 < min=1: ...").

package builder

import "errors"

// ErrTooFewNodes indicates that a size parameter (n, k, depth) is smaller
// than the minimum the constructor accepts.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// an RNG (see WithSeed / WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction could not proceed
// (nil constructor, size overflow, rejected attachment).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadOutline indicates malformed outline text: mixed tab/space
// indentation or a dedent that matches no enclosing level.
var ErrBadOutline = errors.New("builder: malformed outline")
