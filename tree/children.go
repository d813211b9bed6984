// SPDX-License-Identifier: MIT
//
// File: children.go
// Role: The children view, the single gateway for structural mutation.
// Policy:
//   - Every rejection happens before the first write (atomic per call).
//   - Every removal path clears the removed node's parent.
//   - Re-adding a direct child is a no-op that returns false.
// AI-HINT (file):
//   - Membership is parent == owner; Contains is O(1).
//   - Bulk calls are not transactional: each Add is atomic on its own.

package tree

import (
	"fmt"
	"iter"
)

// Owner returns the node whose children this view exposes.
func (c *Children[E]) Owner() *Node[E] { return c.owner }

// Len returns the number of children.
func (c *Children[E]) Len() int { return c.owner.count }

// IsEmpty reports whether the owner has no children.
func (c *Children[E]) IsEmpty() bool { return c.owner.count == 0 }

// Contains reports whether n is currently a direct child of the owner.
// A nil n yields false.
func (c *Children[E]) Contains(n *Node[E]) bool {
	return n != nil && n.parent == c.owner
}

// First returns the first child, or nil if there are none.
func (c *Children[E]) First() *Node[E] { return c.owner.first }

// Last returns the last child, or nil if there are none.
func (c *Children[E]) Last() *Node[E] { return c.owner.last }

// All yields the children in insertion order. Each call starts a new pass.
// Structural changes to this list during iteration are not supported.
func (c *Children[E]) All() iter.Seq[*Node[E]] {
	return func(yield func(*Node[E]) bool) {
		for n := c.owner.first; n != nil; {
			next := n.next
			if !yield(n) {
				return
			}
			n = next
		}
	}
}

// Backward yields the children in reverse insertion order.
func (c *Children[E]) Backward() iter.Seq[*Node[E]] {
	return func(yield func(*Node[E]) bool) {
		for n := c.owner.last; n != nil; {
			prev := n.prev
			if !yield(n) {
				return
			}
			n = prev
		}
	}
}

// Slice returns a snapshot of the children in current order.
// The slice is owned by the caller; later mutations do not affect it.
func (c *Children[E]) Slice() []*Node[E] {
	out := make([]*Node[E], 0, c.owner.count)
	for n := c.owner.first; n != nil; n = n.next {
		out = append(out, n)
	}

	return out
}

// Add attaches n as the last child of the owner, moving it from its current
// parent if it has one.
//
// Implementation:
//   - Stage 1: Reject nil (ErrNilNode) and pseudo-roots (ErrPseudoRoot).
//   - Stage 2: Walk from the owner up the parent chain, owner included; if n is
//     met, reject with ErrCycle.
//   - Stage 3: If n already is a direct child, return false without touching order.
//   - Stage 4: Unlink n from its old parent, append it here, set n.parent.
//
// Returns:
//   - bool: true if the structure changed.
//   - error: nil on success or no-op; a wrapped sentinel otherwise.
//
// Errors:
//   - ErrNilNode, ErrPseudoRoot, ErrCycle. On any error nothing was modified.
//
// Complexity:
//   - Time O(depth(owner)) for the ancestry walk, O(1) for the relink.
func (c *Children[E]) Add(n *Node[E]) (bool, error) {
	if n == nil {
		return false, ErrNilNode
	}
	if n.pseudo {
		return false, ErrPseudoRoot
	}

	// Stage 2: ancestry walk. All checks finish before any write below.
	for a := c.owner; a != nil; a = a.parent {
		if a == n {
			return false, fmt.Errorf("tree: add %v under %v: %w", n, c.owner, ErrCycle)
		}
	}

	if n.parent == c.owner {
		return false, nil
	}

	if n.parent != nil {
		n.parent.unlink(n)
	}
	c.link(n)

	return true, nil
}

// Remove detaches n if it is a direct child of the owner and reports whether
// it did. A nil or foreign node yields false and is left untouched.
func (c *Children[E]) Remove(n *Node[E]) bool {
	if !c.Contains(n) {
		return false
	}
	c.owner.unlink(n)

	return true
}

// ContainsAll reports whether every node in nodes is a direct child.
// It is true for an empty argument list.
func (c *Children[E]) ContainsAll(nodes ...*Node[E]) bool {
	for _, n := range nodes {
		if !c.Contains(n) {
			return false
		}
	}

	return true
}

// AddAll adds the nodes in order and reports whether any Add changed the
// structure. It stops at the first failing Add and returns its error together
// with the changes made so far; earlier adds are not rolled back.
func (c *Children[E]) AddAll(nodes ...*Node[E]) (bool, error) {
	changed := false
	for i, n := range nodes {
		ok, err := c.Add(n)
		if err != nil {
			return changed, fmt.Errorf("tree: AddAll at index %d: %w", i, err)
		}
		changed = changed || ok
	}

	return changed, nil
}

// RetainAll removes every child that is not in keep and reports whether the
// list shrank. Removed children are detached.
//
// Complexity: O(Len() + len(keep)).
func (c *Children[E]) RetainAll(keep ...*Node[E]) bool {
	set := identitySet(keep)

	return c.removeIf(func(n *Node[E]) bool {
		_, ok := set[n]
		return !ok
	})
}

// RemoveAll removes every child that appears in nodes and reports whether any
// removal happened. Removed children are detached; non-children are ignored.
//
// Complexity: O(Len() + len(nodes)).
func (c *Children[E]) RemoveAll(nodes ...*Node[E]) bool {
	if len(nodes) == 0 || c.owner.count == 0 {
		return false
	}
	set := identitySet(nodes)

	return c.removeIf(func(n *Node[E]) bool {
		_, ok := set[n]
		return ok
	})
}

// Clear detaches all children.
func (c *Children[E]) Clear() {
	c.removeIf(func(*Node[E]) bool { return true })
}

// removeIf unlinks every child matching pred and reports whether any was removed.
func (c *Children[E]) removeIf(pred func(*Node[E]) bool) bool {
	removed := false
	for n := c.owner.first; n != nil; {
		next := n.next
		if pred(n) {
			c.owner.unlink(n)
			removed = true
		}
		n = next
	}

	return removed
}

// link appends a detached n to the owner's list. Callers guarantee n.parent == nil.
func (c *Children[E]) link(n *Node[E]) {
	o := c.owner
	n.parent = o
	n.prev = o.last
	n.next = nil
	if o.last != nil {
		o.last.next = n
	} else {
		o.first = n
	}
	o.last = n
	o.count++
}

// unlink removes child from n's list and clears its parent and sibling links.
func (n *Node[E]) unlink(child *Node[E]) {
	if child.prev != nil {
		child.prev.next = child.next
	} else {
		n.first = child.next
	}
	if child.next != nil {
		child.next.prev = child.prev
	} else {
		n.last = child.prev
	}
	child.prev, child.next, child.parent = nil, nil, nil
	n.count--
}

func identitySet[E any](nodes []*Node[E]) map[*Node[E]]struct{} {
	set := make(map[*Node[E]]struct{}, len(nodes))
	for _, n := range nodes {
		if n != nil {
			set[n] = struct{}{}
		}
	}

	return set
}
