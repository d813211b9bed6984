// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/arbor/builder"
)

// buildOpts holds the flags shared by the build subcommands.
type buildOpts struct {
	labels string // label scheme: decimal, excel, hex
	seed   int64  // RNG seed for random
}

func newBuildCmd() *cobra.Command {
	opts := buildOpts{labels: "decimal", seed: 42}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate a tree and print it",
	}
	cmd.PersistentFlags().StringVar(&opts.labels, "labels", opts.labels, "label scheme: decimal, excel, hex")
	cmd.PersistentFlags().Int64Var(&opts.seed, "seed", opts.seed, "random seed (random)")

	cmd.AddCommand(
		shapeCmd("path N", "A chain of N nodes", 1, &opts, func(a []int) builder.Constructor[string] {
			return builder.Path[string](a[0])
		}),
		shapeCmd("star N", "A hub with N-1 leaves", 1, &opts, func(a []int) builder.Constructor[string] {
			return builder.Star[string](a[0])
		}),
		shapeCmd("kary K DEPTH", "A complete K-ary tree", 2, &opts, func(a []int) builder.Constructor[string] {
			return builder.KAry[string](a[0], a[1])
		}),
		shapeCmd("random N", "A random recursive tree of N nodes", 1, &opts, func(a []int) builder.Constructor[string] {
			return builder.RandomRecursive[string](a[0])
		}),
		newOutlineCmd(),
	)

	return cmd
}

// shapeCmd builds a subcommand taking nargs integer arguments.
func shapeCmd(use, short string, nargs int, opts *buildOpts, mk func([]int) builder.Constructor[string]) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			ints, err := parseInts(args)
			if err != nil {
				return err
			}
			labels, ok := builder.LabelScheme(opts.labels)
			if !ok {
				return fmt.Errorf("invalid labels: %s (must be 'decimal', 'excel' or 'hex')", opts.labels)
			}

			loggerFromContext(cmd.Context()).Debug("building", "shape", cmd.Name(), "args", ints, "seed", opts.seed)
			t, err := builder.BuildTree(
				[]builder.Option[string]{builder.WithLabels(labels), builder.WithSeed[string](opts.seed)},
				mk(ints),
			)
			if err != nil {
				return err
			}
			return emit(cmd, t, configFromContext(cmd.Context()).Render)
		},
	}
}

func newOutlineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "outline FILE",
		Short: "A forest read from an indented outline file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := readLines(args[0])
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("read outline", "file", args[0], "lines", len(lines))

			t, err := builder.BuildTree[string](nil, builder.Outline(lines))
			if err != nil {
				return err
			}
			return emit(cmd, t, configFromContext(cmd.Context()).Render)
		},
	}
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", a, err)
		}
		out[i] = n
	}
	return out, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}
