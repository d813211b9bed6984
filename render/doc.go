// SPDX-License-Identifier: MIT

// Package render turns arbor trees into text.
//
// The Text renderer walks the tree in pre-order (package dfs) and writes
// one line per node: depth indentation units followed by the payload label.
// The pseudo-root is never printed; top-level roots have depth 0.
//
//	t := tree.New[int]()
//	r := t.AddRoot(1)
//	r.AddChild(11)
//	r.AddChild(12)
//	s, _ := render.NewText[int]().Render(t) // "1\n 11\n 12\n"
//
// Absent payloads (nil pointers, interfaces, maps, slices, funcs, chans)
// print as the placeholder, "<nil>" by default. Everything else goes
// through the formatter, fmt.Sprint by default.
//
// Graphviz output lives in the dot subpackage.
package render
