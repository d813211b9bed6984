// SPDX-License-Identifier: MIT

package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/arbor/bfs"
	"github.com/katalvlaran/arbor/tree"
)

// ExampleBFS prints a forest one level per line.
func ExampleBFS() {
	t := tree.New[string]()
	a := t.AddRoot("a")
	a.AddChild("a1").AddChild("a1x")
	a.AddChild("a2")
	t.AddRoot("b").AddChild("b1")

	res, err := bfs.BFS(t.PseudoRoot())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for depth, level := range res.Levels() {
		fmt.Println(depth, level)
	}

	// Output:
	// 0 [a b]
	// 1 [a1 a2 b1]
	// 2 [a1x]
}
