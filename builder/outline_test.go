// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arbor/builder"
	"github.com/katalvlaran/arbor/render"
)

func TestOutline_RoundTripsThroughText(t *testing.T) {
	lines := []string{
		"1",
		" 11",
		" 12",
		"2",
		" 21",
		" 22",
		"  221",
		"  222",
		" 23",
	}
	tr, err := builder.BuildTree[string](nil, builder.Outline(lines))
	require.NoError(t, err)
	requireLinked(t, tr)

	out, err := render.NewText[string]().Render(tr)
	require.NoError(t, err)
	assert.Equal(t, "1\n 11\n 12\n2\n 21\n 22\n  221\n  222\n 23\n", out)
}

func TestOutline_TabsAndBlankLines(t *testing.T) {
	lines := []string{
		"root",
		"",
		"\tchild  ",
		"\t\tgrand",
		"   ",
		"\tsecond",
	}
	tr, err := builder.BuildTree[string](nil, builder.Outline(lines))
	require.NoError(t, err)
	assert.Equal(t, []string{"root", "child", "grand", "second"}, preorder(t, tr))

	root := tr.Roots().First()
	assert.Equal(t, 2, root.Children().Len())
	assert.Equal(t, 2, root.Children().First().Children().First().Depth())
}

func TestOutline_IndentedFirstLine(t *testing.T) {
	tr, err := builder.BuildTree[string](nil, builder.Outline([]string{"    a", "      b", "    c"}))
	require.NoError(t, err)
	assert.Equal(t, 2, tr.Roots().Len())
}

func TestOutline_Malformed(t *testing.T) {
	cases := map[string][]string{
		"mixed indentation": {"a", " \tb"},
		"tabs then spaces":  {"a", "\tb", "  c"},
		"spaces then tabs":  {"a", "  b", "\tc"},
		"dedent mismatch":   {"a", "    b", "  c"},
		"root out of line":  {"  a", "b"},
	}
	for name, lines := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := builder.BuildTree[string](nil, builder.Outline(lines))
			assert.ErrorIs(t, err, builder.ErrBadOutline)
		})
	}
}

func TestOutline_Empty(t *testing.T) {
	tr, err := builder.BuildTree[string](nil, builder.Outline(nil))
	require.NoError(t, err)
	assert.True(t, tr.Roots().IsEmpty())
}
