// SPDX-License-Identifier: MIT

package tree

// Test bridge: exposes the structural check and raw link writers to
// tree_test only. Compiled into the test binary, never into the package.

var (
	ErrBackLink       = errBackLink
	ErrSharedNode     = errSharedNode
	ErrParentMismatch = errParentMismatch
	ErrSiblingLinks   = errSiblingLinks
	ErrCountMismatch  = errCountMismatch
)

// CheckTree runs the structural check over the whole tree.
func CheckTree[E any](t *Tree[E]) error { return t.root.check() }

// CheckNode runs the structural check over the subtree under n.
func CheckNode[E any](n *Node[E]) error { return n.check() }

// ForceAppend links c under p with no checks at all.
func ForceAppend[E any](p, c *Node[E]) { (&Children[E]{owner: p}).link(c) }

// SetParentLink overwrites n's parent pointer.
func SetParentLink[E any](n, p *Node[E]) { n.parent = p }

// SetNextLink overwrites n's next-sibling pointer.
func SetNextLink[E any](n, next *Node[E]) { n.next = next }

// SetPrevLink overwrites n's previous-sibling pointer.
func SetPrevLink[E any](n, prev *Node[E]) { n.prev = prev }

// SetCount overwrites n's children count.
func SetCount[E any](n *Node[E], count int) { n.count = count }
