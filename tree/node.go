// SPDX-License-Identifier: MIT
//
// File: node.go
// Role: Node lifecycle, payload accessors and ancestry queries.
// Determinism:
//   - Ancestors() yields parents bottom-up; Clone() preserves child order.
// AI-HINT (file):
//   - AddChild never fails: a fresh node cannot close a cycle.
//   - Parent() includes the pseudo-root; Ancestors() and Depth() skip it.

package tree

import (
	"fmt"
	"iter"
)

// NewNode returns a detached node holding e.
// Attach it with some node's Children().Add.
func NewNode[E any](e E) *Node[E] {
	return &Node[E]{element: e}
}

// AddChild creates a node holding e, appends it as the last child of n and
// returns it. The payload is not inspected; a zero e is a valid "absent" payload.
//
// Complexity: O(1).
func (n *Node[E]) AddChild(e E) *Node[E] {
	child := NewNode(e)
	// A brand-new node has no parent, no children and is not a pseudo-root,
	// so none of Add's rejection paths apply.
	n.Children().link(child)

	return child
}

// Children returns a live view over n's children.
// Every view of n acts on the same list; it is never a snapshot.
// Calling Children does not write to n.
func (n *Node[E]) Children() *Children[E] {
	return &Children[E]{owner: n}
}

// Element returns the payload.
func (n *Node[E]) Element() E { return n.element }

// SetElement replaces the payload. It has no structural effect.
func (n *Node[E]) SetElement(e E) { n.element = e }

// Parent returns the node n is attached to, or nil if n is detached.
// For a top-level node this is the tree's pseudo-root.
func (n *Node[E]) Parent() *Node[E] { return n.parent }

// IsAttached reports whether n currently has a parent.
func (n *Node[E]) IsAttached() bool { return n.parent != nil }

// IsRoot reports whether n is a top-level node, i.e. a direct child of a pseudo-root.
func (n *Node[E]) IsRoot() bool { return n.parent != nil && n.parent.pseudo }

// IsPseudoRoot reports whether n is the anchor node of some Tree.
func (n *Node[E]) IsPseudoRoot() bool { return n.pseudo }

// Depth returns the number of ancestors of n, not counting a pseudo-root.
// Top-level nodes and detached nodes have depth 0.
//
// Complexity: O(depth).
func (n *Node[E]) Depth() int {
	d := 0
	for range n.Ancestors() {
		d++
	}

	return d
}

// Ancestors yields n's ancestors from the parent upward. The pseudo-root,
// if any, is not yielded.
func (n *Node[E]) Ancestors() iter.Seq[*Node[E]] {
	return func(yield func(*Node[E]) bool) {
		for p := n.parent; p != nil && !p.pseudo; p = p.parent {
			if !yield(p) {
				return
			}
		}
	}
}

// IsAncestorOf reports whether n is a proper ancestor of other.
// A pseudo-root is an ancestor of every node in its tree.
func (n *Node[E]) IsAncestorOf(other *Node[E]) bool {
	if other == nil {
		return false
	}
	for p := other.parent; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}

	return false
}

// Detach removes n from its parent's children. It returns false if n was
// already detached. The subtree below n is kept intact.
func (n *Node[E]) Detach() bool {
	if n.parent == nil {
		return false
	}

	return n.parent.Children().Remove(n)
}

// Clone returns a detached deep copy of the subtree rooted at n.
// Payloads are copied by assignment, so pointer payloads are shared.
// Cloning a pseudo-root yields a pseudo-root.
//
// Complexity: O(size of subtree).
func (n *Node[E]) Clone() *Node[E] {
	out := &Node[E]{element: n.element, pseudo: n.pseudo}
	for c := n.first; c != nil; c = c.next {
		out.Children().link(c.Clone())
	}

	return out
}

// String formats the payload with fmt.Sprint.
func (n *Node[E]) String() string {
	return fmt.Sprint(n.element)
}
