// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Renderer contract, sentinel errors and functional options for Text.

package render

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/arbor/tree"
)

// Sentinel errors.
var (
	// ErrNilTree is returned when a nil *tree.Tree is rendered.
	ErrNilTree = errors.New("render: tree is nil")

	// ErrNilNode is returned when a nil start node is rendered.
	ErrNilNode = errors.New("render: node is nil")
)

// Renderer turns a whole tree into its textual form.
type Renderer[E any] interface {
	Render(t *tree.Tree[E]) (string, error)
}

// Defaults used by NewText.
const (
	DefaultIndent      = " "
	DefaultPlaceholder = "<nil>"
)

// Option configures a Text renderer.
type Option[E any] func(*Options[E])

// Options holds the Text renderer configuration.
type Options[E any] struct {
	// Indent is written once per depth level before each label.
	Indent string

	// Placeholder stands in for an absent payload (nil pointer, interface,
	// map, slice, func or chan).
	Placeholder string

	// Format converts a present payload to its label.
	Format func(e E) string

	// LineStyle decorates a label before indentation is prepended.
	// Nil means no decoration.
	LineStyle func(line string, depth int) string

	// MaxDepth, if non-negative, omits nodes deeper than this.
	MaxDepth int
}

// DefaultOptions returns a one-space indent, the "<nil>" placeholder,
// fmt.Sprint formatting and no depth limit.
func DefaultOptions[E any]() Options[E] {
	return Options[E]{
		Indent:      DefaultIndent,
		Placeholder: DefaultPlaceholder,
		Format:      func(e E) string { return fmt.Sprint(e) },
		MaxDepth:    -1,
	}
}

// WithIndent sets the per-level indentation unit. An empty unit is allowed
// and flattens the output.
func WithIndent[E any](unit string) Option[E] {
	return func(o *Options[E]) {
		o.Indent = unit
	}
}

// WithPlaceholder sets the text printed for absent payloads.
func WithPlaceholder[E any](s string) Option[E] {
	return func(o *Options[E]) {
		o.Placeholder = s
	}
}

// WithFormatter replaces fmt.Sprint as the payload formatter.
func WithFormatter[E any](fn func(e E) string) Option[E] {
	return func(o *Options[E]) {
		if fn != nil {
			o.Format = fn
		}
	}
}

// WithLineStyle installs a label decorator, typically a terminal colour.
func WithLineStyle[E any](fn func(line string, depth int) string) Option[E] {
	return func(o *Options[E]) {
		o.LineStyle = fn
	}
}

// WithMaxDepth limits rendering to nodes at depth ≤ d. Negative d disables the limit.
func WithMaxDepth[E any](d int) Option[E] {
	return func(o *Options[E]) {
		o.MaxDepth = d
	}
}
