// SPDX-License-Identifier: MIT
// Package: arbor/builder
//
// impl_outline.go - implementation of Outline(lines) constructor.
//
// Contract:
//   - Each non-blank line is one node; its payload is the line without
//     leading/trailing whitespace. Blank lines are skipped.
//   - Leading whitespace is the indentation. A line nests under the closest
//     preceding line with strictly smaller indentation; lines at the
//     outermost indentation become new roots.
//   - Indentation that mixes tabs and spaces, within a line or across
//     lines (the first indented line fixes the character), a dedent that matches no
//     enclosing level, or a root-level line indented differently from the
//     first line all yield ErrBadOutline (line number in the message).
//   - The payload option is not consulted: payloads come from the text.
//
// Complexity: O(L) time over the total input length, O(depth) extra space.

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/arbor/tree"
)

const methodOutline = "Outline"

// frame is one open level of the outline stack.
type frame struct {
	indent int
	node   *tree.Node[string]
}

// Outline returns a Constructor that appends the forest described by an
// indented outline, one node per non-blank line.
func Outline(lines []string) Constructor[string] {
	return func(t *tree.Tree[string], _ *config[string]) error {
		// Validate every line before touching the tree.
		parsed, err := parseOutline(lines)
		if err != nil {
			return err
		}

		var stack []frame
		for _, ln := range parsed {
			for len(stack) > 0 && stack[len(stack)-1].indent >= ln.indent {
				stack = stack[:len(stack)-1]
			}
			var n *tree.Node[string]
			if len(stack) == 0 {
				n = t.AddRoot(ln.text)
			} else {
				n = stack[len(stack)-1].node.AddChild(ln.text)
			}
			stack = append(stack, frame{indent: ln.indent, node: n})
		}

		return nil
	}
}

type outlineLine struct {
	indent int
	text   string
}

// parseOutline measures indentation and checks dedent consistency.
func parseOutline(lines []string) ([]outlineLine, error) {
	var (
		out     []outlineLine
		levels  []int // indentation of the currently open levels
		unit    byte  // first indentation character seen, ' ' or '\t'
		rootInd = -1
	)
	for i, raw := range lines {
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		lead := raw[:len(raw)-len(strings.TrimLeft(raw, " \t"))]
		if strings.Contains(lead, " ") && strings.Contains(lead, "\t") {
			return nil, fmt.Errorf("%s: line %d: mixed tabs and spaces: %w", methodOutline, i+1, ErrBadOutline)
		}
		if lead != "" {
			if unit == 0 {
				unit = lead[0]
			} else if lead[0] != unit {
				return nil, fmt.Errorf("%s: line %d: indented with %q, earlier lines use %q: %w",
					methodOutline, i+1, lead[0], unit, ErrBadOutline)
			}
		}
		ind := len(lead)
		if rootInd < 0 {
			rootInd = ind
		}

		popped := -1
		for len(levels) > 0 && levels[len(levels)-1] >= ind {
			popped = levels[len(levels)-1]
			levels = levels[:len(levels)-1]
		}
		switch {
		case len(levels) == 0 && ind != rootInd:
			return nil, fmt.Errorf("%s: line %d: root indented %d, want %d: %w",
				methodOutline, i+1, ind, rootInd, ErrBadOutline)
		case popped >= 0 && popped != ind:
			return nil, fmt.Errorf("%s: line %d: dedent to %d matches no outer level: %w",
				methodOutline, i+1, ind, ErrBadOutline)
		}
		levels = append(levels, ind)
		out = append(out, outlineLine{indent: ind, text: text})
	}

	return out, nil
}
