// SPDX-License-Identifier: MIT
//
// File: tree.go
// Role: Tree facade owning the pseudo-root.

package tree

// New returns an empty tree with a fresh pseudo-root.
func New[E any]() *Tree[E] {
	return &Tree[E]{root: &Node[E]{pseudo: true}}
}

// PseudoRoot returns the anchor node. It is the same instance for the life
// of the tree, has a zero payload and is never a child of anything.
func (t *Tree[E]) PseudoRoot() *Node[E] { return t.root }

// Roots returns the live view over the top-level nodes.
func (t *Tree[E]) Roots() *Children[E] { return t.root.Children() }

// AddRoot appends a new top-level node holding e and returns it.
func (t *Tree[E]) AddRoot(e E) *Node[E] { return t.root.AddChild(e) }

// Len counts the nodes in the tree, not counting the pseudo-root.
//
// Complexity: O(n).
func (t *Tree[E]) Len() int {
	return subtreeSize(t.root) - 1
}

// Clone returns a deep structural copy of the tree.
func (t *Tree[E]) Clone() *Tree[E] {
	return &Tree[E]{root: t.root.Clone()}
}

func subtreeSize[E any](n *Node[E]) int {
	size := 1
	for c := n.first; c != nil; c = c.next {
		size += subtreeSize(c)
	}

	return size
}
