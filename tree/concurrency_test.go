// SPDX-License-Identifier: MIT

// Package tree_test verifies that read-only queries may run concurrently.
package tree_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestReadsDoNotWrite runs Len, Children and iteration from several
// goroutines on one unmutated tree; run with -race.
func TestReadsDoNotWrite(t *testing.T) {
	tr := sampleTree()
	want := tr.Len()

	const workers = 8
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			assert.Equal(t, want, tr.Len())
			for r := range tr.Roots().All() {
				for c := range r.Children().All() {
					_ = c.Children().Len()
					_ = c.Depth()
				}
			}
		}()
	}
	wg.Wait()
}
