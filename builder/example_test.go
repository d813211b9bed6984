// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/arbor/builder"
	"github.com/katalvlaran/arbor/render"
)

// ExampleBuildTree composes two constructors into one forest.
func ExampleBuildTree() {
	t, err := builder.BuildTree(
		[]builder.Option[string]{builder.WithLabels(builder.PrefixedLabel("n"))},
		builder.KAry[string](2, 1),
		builder.Path[string](2),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	s, _ := render.NewText[string]().Render(t)
	fmt.Print(s)

	// Output:
	// n0
	//  n1
	//  n2
	// n3
	//  n4
}
