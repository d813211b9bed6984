// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/arbor/tree"
)

const demoHeading = "(Indentation communicates node depth.)"

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print the sample two-root forest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc := configFromContext(cmd.Context()).Render
			if rc.Format == formatText && rc.Output == "" {
				heading := demoHeading
				if rc.Color {
					heading = styleDim.Render(heading)
				}
				fmt.Fprintln(cmd.OutOrStdout(), heading)
			}
			return emit(cmd, demoTree(), rc)
		},
	}
}

// demoTree builds:
//
//	1
//	 11
//	 12
//	2
//	 21
//	 22
//	  221
//	  222
//	 23
func demoTree() *tree.Tree[int] {
	t := tree.New[int]()

	root1 := t.AddRoot(1)
	root2 := t.AddRoot(2)

	root1.AddChild(11)
	root1.AddChild(12)

	root2.AddChild(21)
	c22 := root2.AddChild(22)
	root2.AddChild(23)

	c22.AddChild(221)
	c22.AddChild(222)

	return t
}
