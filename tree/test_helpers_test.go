// SPDX-License-Identifier: MIT
// Package tree_test contains shared fixtures and assertions for the tree tests.

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arbor/tree"
)

// Payloads used across tests (avoid magic numbers in test bodies).
const (
	Root1 = 1
	Root2 = 2

	Child11 = 11
	Child12 = 12
	Child21 = 21
	Child22 = 22
	Child23 = 23

	Grand111 = 111
	Grand221 = 221
	Grand222 = 222
)

// values returns the payloads of a children view in iteration order.
func values[E any](c *tree.Children[E]) []E {
	out := make([]E, 0, c.Len())
	for n := range c.All() {
		out = append(out, n.Element())
	}

	return out
}

// sampleTree builds the tree used by the demo:
//
//	1
//	 11
//	  111
//	 12
//	2
//	 21
//	 22
//	  221
//	  222
//	 23
func sampleTree() *tree.Tree[int] {
	t := tree.New[int]()
	r1 := t.PseudoRoot().AddChild(Root1)
	r2 := t.PseudoRoot().AddChild(Root2)
	c11 := r1.AddChild(Child11)
	r1.AddChild(Child12)
	c11.AddChild(Grand111)
	r2.AddChild(Child21)
	c22 := r2.AddChild(Child22)
	r2.AddChild(Child23)
	c22.AddChild(Grand221)
	c22.AddChild(Grand222)

	return t
}

// requireConsistent walks the whole subtree under n and checks the
// single-ownership invariant plus Len/iteration agreement on every node.
func requireConsistent[E any](t *testing.T, n *tree.Node[E]) {
	t.Helper()
	seen := make(map[*tree.Node[E]]bool)
	var walk func(p *tree.Node[E])
	walk = func(p *tree.Node[E]) {
		require.False(t, seen[p], "node %v reached twice", p)
		seen[p] = true
		count := 0
		for c := range p.Children().All() {
			require.Same(t, p, c.Parent(), "child %v has wrong parent", c)
			require.True(t, p.Children().Contains(c))
			count++
			walk(c)
		}
		require.Equal(t, count, p.Children().Len())
	}
	walk(n)
	require.NoError(t, tree.CheckNode(n))
}
