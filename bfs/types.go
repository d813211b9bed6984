// SPDX-License-Identifier: MIT

// Package bfs provides tunable options and error definitions
// for breadth-first (level-order) traversal of a tree.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/arbor/tree"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilNode is returned if a nil start node is passed.
	ErrNilNode = errors.New("bfs: start node is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a node the traversal never visited.
	ErrNotReached = errors.New("bfs: node not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[E any] func(*Options[E])

// Options holds parameters and callbacks to customize BFS execution.
type Options[E any] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a node is enqueued, before visiting.
	OnEnqueue func(n *tree.Node[E], depth int)

	// OnDequeue is called immediately before visiting a node.
	OnDequeue func(n *tree.Node[E], depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(n *tree.Node[E], depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// Filter can prune a child (and its subtree) by returning false.
	// Called for each parent→child link.
	Filter func(parent, child *tree.Node[E]) bool

	// SkipStart hides the start node; its children are enqueued at depth 0.
	// A pseudo-root start is always skipped.
	SkipStart bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering
//   - no-op hooks
func DefaultOptions[E any]() Options[E] {
	return Options[E]{
		Ctx:       context.Background(),
		OnEnqueue: func(*tree.Node[E], int) {},
		OnDequeue: func(*tree.Node[E], int) {},
		OnVisit:   func(*tree.Node[E], int) error { return nil },
		Filter:    func(_, _ *tree.Node[E]) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[E any](ctx context.Context) Option[E] {
	return func(o *Options[E]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[E any](fn func(n *tree.Node[E], depth int)) Option[E] {
	return func(o *Options[E]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[E any](fn func(n *tree.Node[E], depth int)) Option[E] {
	return func(o *Options[E]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[E any](fn func(n *tree.Node[E], depth int) error) Option[E] {
	return func(o *Options[E]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search below the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[E any](d int) Option[E] {
	return func(o *Options[E]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilter prunes children when fn returns false.
func WithFilter[E any](fn func(parent, child *tree.Node[E]) bool) Option[E] {
	return func(o *Options[E]) {
		if fn != nil {
			o.Filter = fn
		}
	}
}

// WithSkipStart hides the start node from the traversal.
func WithSkipStart[E any]() Option[E] {
	return func(o *Options[E]) {
		o.SkipStart = true
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: map from each visited node to its depth relative to the start.
//     Nodes queued but never visited (aborted walk) are absent.
type Result[E any] struct {
	Order []*tree.Node[E]
	Depth map[*tree.Node[E]]int
}

// Levels groups the visited nodes by depth, each level in visit order.
func (r *Result[E]) Levels() [][]*tree.Node[E] {
	var levels [][]*tree.Node[E]
	for _, n := range r.Order {
		d := r.Depth[n]
		for len(levels) <= d {
			levels = append(levels, nil)
		}
		levels[d] = append(levels[d], n)
	}

	return levels
}

// PathTo returns the nodes from the shallowest visited ancestor of dest
// down to dest itself, following parent links. Returns ErrNotReached
// if dest was not visited.
func (r *Result[E]) PathTo(dest *tree.Node[E]) ([]*tree.Node[E], error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: path to %v: %w", dest, ErrNotReached)
	}
	// build reversed path
	path := []*tree.Node[E]{}
	for cur := dest; cur != nil; cur = cur.Parent() {
		if _, ok := r.Depth[cur]; !ok {
			break
		}
		path = append(path, cur)
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
