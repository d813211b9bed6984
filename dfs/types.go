// SPDX-License-Identifier: MIT

// Package dfs defines types and options for depth-first traversal of a tree,
// including cancellation, pre-/post-order hooks, depth limiting and subtree
// filtering.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/arbor/tree"
)

var (
	// ErrNilNode is returned when DFS receives a nil start node.
	ErrNilNode = errors.New("dfs: start node is nil")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(start, opts...).
type Option[E any] func(*Options[E])

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(n) when hooks and filters are O(1).
type Options[E any] struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, runs when a node is first reached (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(n *tree.Node[E], depth int) error

	// OnExit, if non-nil, runs after the node's subtree is done (post-order).
	// Returning an error aborts traversal.
	OnExit func(n *tree.Node[E], depth int) error

	// MaxDepth, if non-negative, stops descending below that depth.
	// Default is -1 (no limit).
	MaxDepth int

	// Filter, if non-nil, is asked about every child before descending.
	// Returning false prunes the child and its subtree.
	Filter func(n *tree.Node[E]) bool

	// SkipStart, if true, does not visit the start node; its children are
	// visited at depth 0. A pseudo-root start is always skipped.
	SkipStart bool

	// Skipped counts children pruned by Filter.
	Skipped int
}

// DefaultOptions returns Options with a Background context, no hooks,
// no depth limit, no filter and the start node visited.
func DefaultOptions[E any]() Options[E] {
	return Options[E]{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for cancellation.
// A nil context has no effect.
func WithContext[E any](ctx context.Context) Option[E] {
	return func(o *Options[E]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit[E any](fn func(n *tree.Node[E], depth int) error) Option[E] {
	return func(o *Options[E]) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as the post-order hook.
func WithOnExit[E any](fn func(n *tree.Node[E], depth int) error) Option[E] {
	return func(o *Options[E]) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth. A limit of 0 visits only depth-0 nodes.
func WithMaxDepth[E any](limit int) Option[E] {
	return func(o *Options[E]) {
		o.MaxDepth = limit
	}
}

// WithFilter installs a child filter; fn(n) == false prunes n's subtree and
// counts it in Result.Skipped.
func WithFilter[E any](fn func(n *tree.Node[E]) bool) Option[E] {
	return func(o *Options[E]) {
		o.Filter = fn
	}
}

// WithSkipStart makes the start node invisible: only its descendants are
// visited and its children sit at depth 0.
func WithSkipStart[E any]() Option[E] {
	return func(o *Options[E]) {
		o.SkipStart = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result[E any] struct {
	// PreOrder lists nodes in discovery order.
	PreOrder []*tree.Node[E]

	// PostOrder lists nodes in finish order.
	PostOrder []*tree.Node[E]

	// Depth maps each visited node to its depth relative to the start.
	Depth map[*tree.Node[E]]int

	// Skipped reports how many children were pruned by Filter.
	Skipped int
}
