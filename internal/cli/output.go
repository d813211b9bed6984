// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/arbor/bfs"
	"github.com/katalvlaran/arbor/render"
	"github.com/katalvlaran/arbor/render/dot"
	"github.com/katalvlaran/arbor/tree"
)

// emit renders t in rc.Format and writes it to rc.Output or stdout.
func emit[E any](cmd *cobra.Command, t *tree.Tree[E], rc RenderConfig) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	logger.Debug("tree built", "nodes", t.Len(), "roots", t.Roots().Len())

	data, err := renderTree(t, rc)
	if err != nil {
		return err
	}

	if rc.Output == "" {
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	} else {
		if err := os.WriteFile(rc.Output, data, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		printSuccess(cmd.ErrOrStderr(), "Wrote %s", rc.Format)
		printFile(cmd.ErrOrStderr(), rc.Output)
	}

	if rc.Stats {
		if err := printStats(cmd.ErrOrStderr(), t); err != nil {
			return err
		}
	}
	prog.done(fmt.Sprintf("Rendered %d nodes", t.Len()))

	return nil
}

// renderTree produces the bytes for the requested format.
func renderTree[E any](t *tree.Tree[E], rc RenderConfig) ([]byte, error) {
	switch rc.Format {
	case formatText:
		opts := []render.Option[E]{
			render.WithIndent[E](rc.Indent),
			render.WithPlaceholder[E](rc.Placeholder),
			render.WithMaxDepth[E](rc.MaxDepth),
		}
		if rc.Color {
			opts = append(opts, render.WithLineStyle[E](styleDepth))
		}
		s, err := render.NewText(opts...).Render(t)
		if err != nil {
			return nil, err
		}
		return []byte(s), nil

	case formatDOT, formatSVG:
		src, err := dot.ToDOT(t, dot.Options[E]{Placeholder: rc.Placeholder})
		if err != nil {
			return nil, err
		}
		if rc.Format == formatDOT {
			return []byte(src), nil
		}
		return dot.RenderSVG(src)

	default:
		return nil, validateFormat(rc.Format)
	}
}

// printStats writes node count, height and per-level widths.
func printStats[E any](w io.Writer, t *tree.Tree[E]) error {
	res, err := bfs.BFS(t.PseudoRoot())
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}
	levels := res.Levels()
	widths := lo.Map(levels, func(l []*tree.Node[E], _ int) string {
		return strconv.Itoa(len(l))
	})

	printKeyValue(w, "nodes", strconv.Itoa(t.Len()))
	printKeyValue(w, "roots", strconv.Itoa(t.Roots().Len()))
	printKeyValue(w, "height", strconv.Itoa(len(levels)))
	printKeyValue(w, "widths", strings.Join(widths, " "))

	return nil
}
