// SPDX-License-Identifier: MIT

package render_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arbor/render"
	"github.com/katalvlaran/arbor/tree"
)

func TestText_SingleRootTwoChildren(t *testing.T) {
	tr := tree.New[int]()
	r := tr.AddRoot(1)
	r.AddChild(11)
	r.AddChild(12)

	out, err := render.NewText[int]().Render(tr)
	require.NoError(t, err)
	assert.Equal(t, "1\n 11\n 12\n", out)
}

func TestText_Forest(t *testing.T) {
	tr := tree.New[int]()
	r1 := tr.AddRoot(1)
	r1.AddChild(11)
	r1.AddChild(12)
	r2 := tr.AddRoot(2)
	r2.AddChild(21)
	c22 := r2.AddChild(22)
	c22.AddChild(221)
	c22.AddChild(222)
	r2.AddChild(23)

	out, err := render.NewText[int]().Render(tr)
	require.NoError(t, err)
	assert.Equal(t, "1\n 11\n 12\n2\n 21\n 22\n  221\n  222\n 23\n", out)
}

func TestText_EmptyTree(t *testing.T) {
	out, err := render.NewText[string]().Render(tree.New[string]())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestText_NilInputs(t *testing.T) {
	r := render.NewText[int]()

	_, err := r.Render(nil)
	assert.ErrorIs(t, err, render.ErrNilTree)
	_, err = r.RenderNode(nil)
	assert.ErrorIs(t, err, render.ErrNilNode)
	assert.ErrorIs(t, r.Fprint(&bytes.Buffer{}, nil), render.ErrNilTree)
}

func TestText_AbsentPayload(t *testing.T) {
	tr := tree.New[*string]()
	s := "x"
	r := tr.AddRoot(&s)
	r.AddChild(nil)

	out, err := render.NewText(render.WithFormatter(func(p *string) string { return *p })).Render(tr)
	require.NoError(t, err)
	assert.Equal(t, "x\n <nil>\n", out)

	out, err = render.NewText(
		render.WithFormatter(func(p *string) string { return *p }),
		render.WithPlaceholder[*string]("-"),
	).Render(tr)
	require.NoError(t, err)
	assert.Equal(t, "x\n -\n", out)
}

func TestText_AbsentInterfaceAndSlice(t *testing.T) {
	tr := tree.New[any]()
	tr.AddRoot(nil).AddChild([]int(nil))
	tr.AddRoot(0)

	out, err := render.NewText[any]().Render(tr)
	require.NoError(t, err)
	assert.Equal(t, "<nil>\n <nil>\n0\n", out, "zero values of non-nil-able kinds print normally")
}

func TestText_IndentAndStyle(t *testing.T) {
	tr := tree.New[string]()
	tr.AddRoot("a").AddChild("b").AddChild("c")

	out, err := render.NewText(
		render.WithIndent[string]("--"),
		render.WithLineStyle[string](func(line string, depth int) string {
			return fmt.Sprintf("%s@%d", line, depth)
		}),
	).Render(tr)
	require.NoError(t, err)
	assert.Equal(t, "a@0\n--b@1\n----c@2\n", out)
}

func TestText_MaxDepth(t *testing.T) {
	tr := tree.New[string]()
	tr.AddRoot("a").AddChild("b").AddChild("c")

	out, err := render.NewText(render.WithMaxDepth[string](1)).Render(tr)
	require.NoError(t, err)
	assert.Equal(t, "a\n b\n", out)
}

func TestText_RenderNodeSubtree(t *testing.T) {
	tr := tree.New[int]()
	r := tr.AddRoot(1)
	c := r.AddChild(11)
	c.AddChild(111)

	out, err := render.NewText[int]().RenderNode(c)
	require.NoError(t, err)
	assert.Equal(t, "11\n 111\n", out)

	whole, err := render.NewText[int]().RenderNode(tr.PseudoRoot())
	require.NoError(t, err)
	assert.Equal(t, "1\n 11\n  111\n", whole)
}

func TestText_FprintMatchesRender(t *testing.T) {
	tr := tree.New[int]()
	tr.AddRoot(1).AddChild(2)
	r := render.NewText[int]()

	var buf bytes.Buffer
	require.NoError(t, r.Fprint(&buf, tr))
	s, err := r.Render(tr)
	require.NoError(t, err)
	assert.Equal(t, s, buf.String())
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestText_FprintWriteError(t *testing.T) {
	boom := errors.New("boom")
	tr := tree.New[int]()
	tr.AddRoot(1)

	err := render.NewText[int]().Fprint(failingWriter{err: boom}, tr)
	assert.ErrorIs(t, err, boom)
}

func TestText_ReflectsMutation(t *testing.T) {
	tr := tree.New[string]()
	a := tr.AddRoot("a")
	b := tr.AddRoot("b")
	r := render.NewText[string]()

	_, err := a.Children().Add(b)
	require.NoError(t, err)
	out, err := r.Render(tr)
	require.NoError(t, err)
	assert.Equal(t, "a\n b\n", out)

	a.Children().Clear()
	out, err = r.Render(tr)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "\n"))
}
