// SPDX-License-Identifier: MIT

// Package dfs implements depth-first traversal over tree.Node.
//
// Key features:
//   - DFS(start, opts...): pre-order and post-order in one pass
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, Filter, Skipped diagnostic count
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(n) for n nodes under start, plus hook and filter cost.
//   - Memory: O(h) recursion (h = height) plus the result slices.
//
// Errors:
//
//   - ErrNilNode               if start is nil.
//   - context.Canceled         if ctx is done.
//   - any error returned by OnVisit or OnExit, wrapped.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/arbor/tree"
)

// walker encapsulates state during DFS.
type walker[E any] struct {
	opts Options[E] // traversal options
	res  *Result[E] // result collector
}

// DFS walks the subtree under start depth-first, children in view order.
// A pseudo-root start is never visited itself; its children are depth 0.
// Returns the Result collected so far together with any abort error.
func DFS[E any](start *tree.Node[E], opts ...Option[E]) (*Result[E], error) {
	// 1. Validate input
	if start == nil {
		return nil, ErrNilNode
	}

	// 2. Apply options
	dopts := DefaultOptions[E]()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Initialize result
	res := &Result[E]{
		Depth: make(map[*tree.Node[E]]int),
	}
	w := &walker[E]{opts: dopts, res: res}

	// 4. Traverse: either the start itself or each of its children as a forest.
	var err error
	if dopts.SkipStart || start.IsPseudoRoot() {
		err = w.children(start, 0)
	} else {
		err = w.traverse(start, 0)
	}

	// 5. Expose diagnostics
	res.Skipped = w.opts.Skipped

	return res, err
}

// traverse visits n at depth and recurses into its children.
func (w *walker[E]) traverse(n *tree.Node[E], depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Record discovery
	w.res.Depth[n] = depth
	w.res.PreOrder = append(w.res.PreOrder, n)

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(n, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", n, err)
		}
	}

	// 4. Descend
	if err := w.children(n, depth+1); err != nil {
		return err
	}

	// 5. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(n, depth); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %v: %w", n, err)
		}
	}

	// 6. Record finish order
	w.res.PostOrder = append(w.res.PostOrder, n)

	return nil
}

// children visits each child of n at the given depth, honoring MaxDepth and Filter.
func (w *walker[E]) children(n *tree.Node[E], depth int) error {
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}
	for c := range n.Children().All() {
		if w.opts.Filter != nil && !w.opts.Filter(c) {
			w.opts.Skipped++
			continue
		}
		if err := w.traverse(c, depth); err != nil {
			return err
		}
	}

	return nil
}
