// SPDX-License-Identifier: MIT

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arbor/tree"
)

func TestNode_NewNodeIsDetached(t *testing.T) {
	n := tree.NewNode(Root1)
	assert.Nil(t, n.Parent())
	assert.False(t, n.IsAttached())
	assert.False(t, n.IsRoot())
	assert.False(t, n.IsPseudoRoot())
	assert.Equal(t, 0, n.Depth())
	assert.True(t, n.Children().IsEmpty())
}

func TestNode_AddChildReturnsAttachedNode(t *testing.T) {
	p := tree.NewNode(Root1)
	c := p.AddChild(Child11)

	require.NotNil(t, c)
	assert.Equal(t, Child11, c.Element())
	assert.Same(t, p, c.Parent())
	assert.True(t, c.IsAttached())
	assert.Same(t, c, p.Children().Last())
}

func TestNode_AddChildNilPayload(t *testing.T) {
	p := tree.NewNode[*string](nil)
	c := p.AddChild(nil)

	assert.Nil(t, c.Element())
	assert.Equal(t, 1, p.Children().Len())
	assert.Equal(t, "<nil>", c.String())
}

func TestNode_ElementAccessors(t *testing.T) {
	n := tree.NewNode("a")
	n.AddChild("child")
	n.SetElement("b")

	assert.Equal(t, "b", n.Element())
	assert.Equal(t, "b", n.String())
	assert.Equal(t, 1, n.Children().Len(), "payload change has no structural effect")
}

func TestNode_IdentityNotPayload(t *testing.T) {
	p := tree.NewNode(0)
	a := p.AddChild(7)
	b := p.AddChild(7)

	assert.NotSame(t, a, b)
	assert.Equal(t, 2, p.Children().Len(), "equal payloads are distinct nodes")
	assert.True(t, p.Children().Remove(b))
	assert.True(t, p.Children().Contains(a))
	assert.False(t, p.Children().Contains(b))
}

func TestNode_ScenarioA(t *testing.T) {
	tr := tree.New[int]()
	pseudo := tr.PseudoRoot()
	one := pseudo.AddChild(1)
	two := pseudo.AddChild(2)

	assert.Equal(t, []int{1, 2}, values(pseudo.Children()))
	assert.Same(t, pseudo, one.Parent())
	assert.Same(t, pseudo, two.Parent())
	assert.True(t, one.IsRoot())
	assert.True(t, two.IsRoot())
}

func TestNode_DepthAndAncestors(t *testing.T) {
	tr := sampleTree()
	r2 := tr.Roots().Last()
	c22 := r2.Children().Slice()[1]
	g222 := c22.Children().Last()

	assert.Equal(t, 0, r2.Depth())
	assert.Equal(t, 1, c22.Depth())
	assert.Equal(t, 2, g222.Depth())

	var chain []int
	for a := range g222.Ancestors() {
		chain = append(chain, a.Element())
	}
	assert.Equal(t, []int{Child22, Root2}, chain, "pseudo-root is never yielded")

	var first []int
	for a := range g222.Ancestors() {
		first = append(first, a.Element())
		break
	}
	assert.Equal(t, []int{Child22}, first)
}

func TestNode_IsAncestorOf(t *testing.T) {
	tr := sampleTree()
	r1 := tr.Roots().First()
	r2 := tr.Roots().Last()
	g111 := r1.Children().First().Children().First()

	assert.True(t, r1.IsAncestorOf(g111))
	assert.True(t, tr.PseudoRoot().IsAncestorOf(g111))
	assert.False(t, r2.IsAncestorOf(g111))
	assert.False(t, g111.IsAncestorOf(r1))
	assert.False(t, r1.IsAncestorOf(r1), "not a proper ancestor of itself")
	assert.False(t, r1.IsAncestorOf(nil))
}

func TestNode_Detach(t *testing.T) {
	tr := sampleTree()
	r1 := tr.Roots().First()
	c11 := r1.Children().First()

	assert.True(t, c11.Detach())
	assert.Nil(t, c11.Parent())
	assert.False(t, r1.Children().Contains(c11))
	assert.Equal(t, 1, c11.Children().Len(), "detaching keeps the subtree")

	assert.False(t, c11.Detach(), "already detached")
	requireConsistent(t, tr.PseudoRoot())
}

func TestNode_Clone(t *testing.T) {
	tr := sampleTree()
	r2 := tr.Roots().Last()

	cp := r2.Clone()
	require.NotSame(t, r2, cp)
	assert.Nil(t, cp.Parent())
	assert.Equal(t, values(r2.Children()), values(cp.Children()))

	origKids := r2.Children().Slice()
	cloneKids := cp.Children().Slice()
	for i := range origKids {
		assert.NotSame(t, origKids[i], cloneKids[i])
		assert.Same(t, cp, cloneKids[i].Parent())
	}
	assert.Equal(t, []int{Grand221, Grand222}, values(cloneKids[1].Children()))

	cp.Children().Clear()
	assert.Equal(t, 3, r2.Children().Len(), "clone is independent of the source")
	requireConsistent(t, tr.PseudoRoot())
}
