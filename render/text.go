// SPDX-License-Identifier: MIT
//
// File: text.go
// Role: indented pre-order text rendering built on package dfs.

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/katalvlaran/arbor/dfs"
	"github.com/katalvlaran/arbor/tree"
)

// Text renders one node per line, indented by depth.
// A Text value is immutable after construction. Rendering only reads the
// tree, so concurrent renders are safe while no goroutine mutates it.
type Text[E any] struct {
	opts Options[E]
}

var _ Renderer[int] = (*Text[int])(nil)

// NewText builds a Text renderer from DefaultOptions and opts.
func NewText[E any](opts ...Option[E]) *Text[E] {
	o := DefaultOptions[E]()
	for _, opt := range opts {
		opt(&o)
	}

	return &Text[E]{opts: o}
}

// Render returns the whole tree as text. The pseudo-root is never printed;
// its children sit at depth 0.
//
// Errors: ErrNilTree.
func (r *Text[E]) Render(t *tree.Tree[E]) (string, error) {
	if t == nil {
		return "", ErrNilTree
	}

	return r.RenderNode(t.PseudoRoot())
}

// RenderNode renders the subtree rooted at n with n at depth 0.
// A pseudo-root renders its children the same way Render does.
//
// Errors: ErrNilNode.
func (r *Text[E]) RenderNode(n *tree.Node[E]) (string, error) {
	if n == nil {
		return "", ErrNilNode
	}
	var sb strings.Builder
	if err := r.write(&sb, n); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// Fprint streams the rendering of t to w.
//
// Errors: ErrNilTree, or the first write error from w.
func (r *Text[E]) Fprint(w io.Writer, t *tree.Tree[E]) error {
	if t == nil {
		return ErrNilTree
	}

	return r.write(w, t.PseudoRoot())
}

// write drives a pre-order DFS from start and emits one line per visit.
func (r *Text[E]) write(w io.Writer, start *tree.Node[E]) error {
	_, err := dfs.DFS(start,
		dfs.WithMaxDepth[E](r.opts.MaxDepth),
		dfs.WithOnVisit(func(n *tree.Node[E], depth int) error {
			_, werr := io.WriteString(w, r.line(n, depth))
			return werr
		}),
	)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return nil
}

// line formats a single node including indentation and the trailing newline.
func (r *Text[E]) line(n *tree.Node[E], depth int) string {
	label := r.label(n.Element())
	if r.opts.LineStyle != nil {
		label = r.opts.LineStyle(label, depth)
	}

	return strings.Repeat(r.opts.Indent, depth) + label + "\n"
}

func (r *Text[E]) label(e E) string {
	if IsAbsent(e) {
		return r.opts.Placeholder
	}

	return r.opts.Format(e)
}

// IsAbsent reports whether e is a nil value of a nil-able kind
// (pointer, interface, map, slice, func or chan).
func IsAbsent[E any](e E) bool {
	return lo.IsNil(any(e))
}
