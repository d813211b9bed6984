// SPDX-License-Identifier: MIT

// Package dot exports arbor trees as Graphviz DOT and renders them to SVG.
//
// Node ids are n0, n1, … assigned in pre-order, so the same tree always
// yields the same document. The pseudo-root is omitted; top-level roots
// have no incoming edge.
package dot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/arbor/dfs"
	"github.com/katalvlaran/arbor/render"
	"github.com/katalvlaran/arbor/tree"
)

// ErrNilTree is returned when a nil tree is exported.
var ErrNilTree = errors.New("dot: tree is nil")

// dotEscaper escapes the characters a DOT quoted string treats specially.
// Newlines become the \n line-break escape; everything else passes through.
var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\r\n", `\n`, "\n", `\n`, "\r", `\n`)

// quote returns s as a DOT double-quoted string.
func quote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

// Options configures DOT export.
type Options[E any] struct {
	// Label converts a present payload to a node label. Defaults to fmt.Sprint.
	Label func(e E) string

	// Placeholder labels absent payloads. Defaults to render.DefaultPlaceholder.
	Placeholder string

	// RankDir is the Graphviz rankdir attribute. Defaults to "TB".
	RankDir string
}

func (o Options[E]) withDefaults() Options[E] {
	if o.Label == nil {
		o.Label = func(e E) string { return fmt.Sprint(e) }
	}
	if o.Placeholder == "" {
		o.Placeholder = render.DefaultPlaceholder
	}
	if o.RankDir == "" {
		o.RankDir = "TB"
	}

	return o
}

// ToDOT converts a tree to a Graphviz digraph with one node per tree node
// and one edge per parent→child link.
// The resulting DOT string can be rendered with [RenderSVG].
func ToDOT[E any](t *tree.Tree[E], opts Options[E]) (string, error) {
	if t == nil {
		return "", ErrNilTree
	}
	opts = opts.withDefaults()

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", opts.RankDir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white];\n")
	buf.WriteString("\n")

	ids := make(map[*tree.Node[E]]string)
	var edges []string
	_, err := dfs.DFS(t.PseudoRoot(), dfs.WithOnVisit(func(n *tree.Node[E], _ int) error {
		id := fmt.Sprintf("n%d", len(ids))
		ids[n] = id
		fmt.Fprintf(&buf, "  %s [label=%s];\n", id, quote(label(n.Element(), opts)))
		if pid, ok := ids[n.Parent()]; ok {
			edges = append(edges, fmt.Sprintf("  %s -> %s;\n", pid, id))
		}
		return nil
	}))
	if err != nil {
		return "", fmt.Errorf("dot: %w", err)
	}

	if len(edges) > 0 {
		buf.WriteString("\n")
	}
	for _, e := range edges {
		buf.WriteString(e)
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

func label[E any](e E, opts Options[E]) string {
	if render.IsAbsent(e) {
		return opts.Placeholder
	}
	return opts.Label(e)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
