// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/arbor/tree"
)

// queueItem pairs a node with its BFS depth.
type queueItem[E any] struct {
	node  *tree.Node[E]
	depth int
}

// walker encapsulates mutable BFS state.
type walker[E any] struct {
	opts  Options[E]
	ctx   context.Context
	queue []queueItem[E]
	res   *Result[E]
}

// BFS runs a level-order traversal of the subtree rooted at start,
// applying any number of functional Options.
// A pseudo-root start (or WithSkipStart) hides start itself; its children
// then form level 0.
//
// Returns ErrNilNode for a nil start, ErrOptionViolation for bad options,
// ctx.Err() on cancellation, or a wrapped OnVisit error. On error the
// partial Result is returned alongside.
//
// Complexity: O(N) time and memory for N nodes in the subtree.
func BFS[E any](start *tree.Node[E], opts ...Option[E]) (*Result[E], error) {
	if start == nil {
		return nil, ErrNilNode
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[E]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[E]{
		opts: o,
		ctx:  o.Ctx,
		res: &Result[E]{
			Depth: make(map[*tree.Node[E]]int),
		},
	}

	if start.IsPseudoRoot() || o.SkipStart {
		w.enqueueChildren(start, -1)
	} else {
		w.enqueue(start, 0)
	}

	return w.res, w.loop()
}

// enqueue calls OnEnqueue and adds n at depth d to the queue.
func (w *walker[E]) enqueue(n *tree.Node[E], d int) {
	w.opts.OnEnqueue(n, d)
	w.queue = append(w.queue, queueItem[E]{node: n, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[E]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueChildren(item.node, item.depth)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[E]) dequeue() queueItem[E] {
	item := w.queue[0]
	w.queue[0] = queueItem[E]{}
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.node, item.depth)

	return item
}

// visit records the node in Order and Depth and calls OnVisit.
func (w *walker[E]) visit(item queueItem[E]) error {
	w.res.Order = append(w.res.Order, item.node)
	w.res.Depth[item.node] = item.depth
	if err := w.opts.OnVisit(item.node, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.node, err)
	}

	return nil
}

// enqueueChildren applies filtering and MaxDepth, then enqueues
// each child of parent in sibling order.
func (w *walker[E]) enqueueChildren(parent *tree.Node[E], depth int) {
	next := depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for child := range parent.Children().All() {
		if !w.opts.Filter(parent, child) {
			continue
		}
		w.enqueue(child, next)
	}
}
