// SPDX-License-Identifier: MIT

// Package bfs provides level-order traversal over arbor trees.
//
// What
//
//   - Visit every node of a subtree in non-decreasing depth, siblings in
//     insertion order.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → depth relative to the start
//   - Levels(): nodes grouped per depth
//   - PathTo(n): visited chain of ancestors ending at n
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows pruning of individual parent→child links via WithFilter.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Pseudo-roots
//
//	Passing Tree.PseudoRoot() walks the whole forest: the pseudo-root itself
//	is never visited and the top-level roots form level 0. WithSkipStart
//	gives any start node the same treatment.
//
// Determinism
//
//	Children are enqueued in sibling order, so the visit sequence is fully
//	reproducible for a given tree.
//
// Complexity (N = nodes in the subtree)
//
//   - Time:   O(N)
//   - Memory: O(N)  (queue and Depth map)
//
// Usage
//
//	res, err := bfs.BFS(t.PseudoRoot(),
//	    bfs.WithMaxDepth[string](2),
//	    bfs.WithOnVisit(func(n *tree.Node[string], depth int) error {
//	        fmt.Println(depth, n)
//	        return nil
//	    }),
//	)
//
// Errors
//
//   - ErrNilNode          if the start node is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNotReached       from PathTo for nodes outside the traversal.
//   - ctx.Err()           on cancellation.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
