// SPDX-License-Identifier: MIT

// Package dfs implements depth-first traversal for tree.Node and tree.Tree.
//
// What:
//
//   - DFS: explores each branch to the bottom before moving to the next
//     sibling, in children-view order. Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Subtree filtering
//   - Forest mode (SkipStart / pseudo-root start)
//
// Why:
//   - Render or export a tree in document order (render, render/dot)
//   - Collect subtrees, compute depths, stop early on a found node
//   - Measure subtree height or size
//
// Complexity:
//
//   - Time O(n), Memory O(h) + result
//
// Errors:
//
//   - ErrNilNode               nil start
//   - context.Canceled         DFS canceled via context
//   - hook errors              propagated from OnVisit or OnExit
package dfs
