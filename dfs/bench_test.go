// SPDX-License-Identifier: MIT

package dfs_test

import (
	"testing"

	"github.com/katalvlaran/arbor/dfs"
)

// BenchmarkDFS_Chain10000 measures DFS on a 10,000 node chain.
// The chain is built once; each iteration walks it fully.
func BenchmarkDFS_Chain10000(b *testing.B) {
	_, root := buildChain(10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(root)
	}
}
