// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Children and Tree declarations plus sentinel errors.
// Policy:
//   - Only the children view writes parent/sibling links; check.go audits them.
//   - Sentinels are never formatted at definition site; context is added with %w.

package tree

import "errors"

// Sentinel errors for structural operations.
var (
	// ErrNilNode indicates a nil *Node was passed where a node is required.
	ErrNilNode = errors.New("tree: node is nil")

	// ErrCycle indicates that an attachment would make a node its own ancestor.
	// The structure is left unchanged when it is returned.
	ErrCycle = errors.New("tree: attachment would create a cycle")

	// ErrPseudoRoot indicates a pseudo-root was offered as a child.
	ErrPseudoRoot = errors.New("tree: pseudo-root cannot be a child")
)

// Node is a tree node holding a payload and an ordered list of children.
//
// Children are kept in an intrusive doubly-linked list threaded through the
// child nodes themselves (prev/next), so a node can sit in at most one list
// at a time and membership in P's list is exactly "parent == P".
type Node[E any] struct {
	element E

	// parent is a non-owning back-pointer; nil while detached.
	parent *Node[E]

	// sibling links inside parent's children list.
	prev, next *Node[E]

	// own children list.
	first, last *Node[E]
	count       int

	// pseudo marks the anchor node owned by a Tree.
	pseudo bool
}

// Children is a live view over one node's children.
// It never copies the underlying list; all calls act on the owner directly.
type Children[E any] struct {
	owner *Node[E]
}

// Tree owns a single pseudo-root used as the attachment point for top-level nodes.
// The pseudo-root carries a zero payload and is never part of the logical tree.
type Tree[E any] struct {
	root *Node[E]
}
