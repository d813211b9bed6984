// SPDX-License-Identifier: MIT

// Package tree provides a generic, mutable, ordered multi-way tree.
//
// A Tree owns one invisible pseudo-root. Top-level ("root") nodes are attached
// under it, so every node, including the roots, is manipulated through the
// same API:
//
//	t := tree.New[int]()
//	one := t.PseudoRoot().AddChild(1)
//	one.AddChild(11)
//	one.AddChild(12)
//
// Structural model:
//
//   - Node[E] holds a payload of type E, a non-owning parent pointer and an
//     ordered list of owned children.
//   - Children[E] is the live view over one node's children. Every structural
//     mutation (add, remove, move, bulk operations, clear) goes through it.
//   - Nodes are identified by pointer; payload equality never matters.
//
// Invariants held after every public call:
//
//   - Acyclicity: a node is never its own ancestor. Add(x) on the view of y
//     fails with ErrCycle when x == y or x is an ancestor of y.
//   - Single ownership: c is in P's children iff c.Parent() == P.
//   - Order stability: children iterate in (re-)insertion order; removing and
//     re-adding a node moves it to the end.
//   - Identity uniqueness: a node appears at most once per children list.
//
// Moving a subtree is a single Add on the new parent's view: the node is
// silently unlinked from its old parent first. Removal only detaches; the
// detached node and its subtree remain valid and can be attached again.
//
// Complexity:
//
//	AddChild, Add, Remove, Contains, Len  O(1) + O(depth) for the cycle walk in Add
//	RetainAll, RemoveAll                  O(children + len(args))
//	Clear                                 O(children)
//	All, Backward                         O(children) lazily
//	Clone                                 O(subtree)
//
// Errors:
//
//	ErrNilNode    - a nil node was passed where a node is required.
//	ErrCycle      - the attachment would make a node its own ancestor.
//	ErrPseudoRoot - a pseudo-root was offered as a child.
//
// Concurrency: none. The structure holds no locks; callers that share a tree
// across goroutines must serialize access themselves (one lock per Tree is
// enough).
package tree
