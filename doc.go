// Package arbor is an in-memory library for ordered, generic trees:
// forests hung under a hidden pseudo-root, mutated through a single
// children view that keeps parent links and acyclicity intact.
//
// What is arbor?
//
//	A small, pure-Go set of packages:
//		• tree     – Node, Children view, Tree with its pseudo-root
//		• dfs      – depth-first traversal with hooks, depth limit and filters
//		• bfs      – level-order traversal, Levels, PathTo
//		• render   – indented text rendering (Renderer, Text)
//		• render/dot – Graphviz DOT export and SVG rendering
//		• builder  – deterministic fixtures: Path, Star, KAry, RandomRecursive, Outline
//
// Why arbor?
//
//   - One gateway for structure: every attach, move and removal goes through
//     Children, so a node's parent always agrees with its collection.
//   - Cycles are rejected before anything changes.
//   - Moves are silent: adding an attached node under a new parent detaches
//     it from the old one.
//   - Iteration order is insertion order; re-adding moves a node to the end.
//
// Quick example:
//
//	t := tree.New[int]()
//	r := t.AddRoot(1)
//	r.AddChild(11)
//	r.AddChild(12)
//	s, _ := render.NewText[int]().Render(t)
//	// s == "1\n 11\n 12\n"
//
// The arbor binary (cmd/arbor) prints the demo forest and generated trees:
//
//	go run ./cmd/arbor demo
//	go run ./cmd/arbor build kary 2 3 --format dot
package arbor
