// SPDX-License-Identifier: MIT
//
// File: check.go
// Role: structural self-check over the raw parent and sibling links.
// Policy:
//   - Reads links directly, never through Children, so a corrupted list
//     is reported instead of being walked.
//   - White/Gray/Black colouring; a revisited node stops the walk.

package tree

import (
	"errors"
	"fmt"
)

// Link states used by check.
const (
	white = iota // not reached yet
	gray         // on the current path
	black        // subtree done
)

var (
	errBackLink       = errors.New("tree: child link points back to an ancestor")
	errSharedNode     = errors.New("tree: node reached twice")
	errParentMismatch = errors.New("tree: parent link mismatch")
	errSiblingLinks   = errors.New("tree: sibling links mismatch")
	errCountMismatch  = errors.New("tree: children count mismatch")
)

// check walks the subtree under n and reports the first broken link.
// Every exported mutation keeps these links consistent, so a non-nil
// result means the package itself has a bug.
//
// Complexity: Time O(n), Memory O(n) for the state map and O(h) recursion.
func (n *Node[E]) check() error {
	state := make(map[*Node[E]]int)
	if err := checkVisit(n, state); err != nil {
		return fmt.Errorf("tree: check: %w", err)
	}

	return nil
}

func checkVisit[E any](n *Node[E], state map[*Node[E]]int) error {
	state[n] = gray

	var prev *Node[E]
	count := 0
	for c := n.first; c != nil; c = c.next {
		switch state[c] {
		case gray:
			return fmt.Errorf("%v -> %v: %w", n, c, errBackLink)
		case black:
			return fmt.Errorf("%v under %v: %w", c, n, errSharedNode)
		}
		if c.parent != n {
			return fmt.Errorf("child %v of %v: %w", c, n, errParentMismatch)
		}
		if c.prev != prev {
			return fmt.Errorf("child %v of %v: prev: %w", c, n, errSiblingLinks)
		}
		if err := checkVisit(c, state); err != nil {
			return err
		}
		prev = c
		count++
	}
	if n.last != prev {
		return fmt.Errorf("node %v: last: %w", n, errSiblingLinks)
	}
	if n.count != count {
		return fmt.Errorf("node %v: count=%d, linked %d: %w", n, n.count, count, errCountMismatch)
	}

	state[n] = black

	return nil
}
