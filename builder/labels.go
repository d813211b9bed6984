// SPDX-License-Identifier: MIT
// Package: arbor/builder
//
// labels.go - deterministic label schemes for string trees.

package builder

import (
	"fmt"
	"strconv"
)

// LabelFn generates a node label from its zero-based index.
// It must be pure: the same idx always yields the same label.
type LabelFn func(idx int) string

// DecimalLabel returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DecimalLabel(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolLabel returns the uppercase Latin letter for idx in [0..25].
// Panics if idx is out of range.
func SymbolLabel(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolLabel: idx must be in [0,25], got %d", idx))
	}
	return string('A' + rune(idx))
}

// ExcelColumnLabel returns the spreadsheet column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA". Panics if idx < 0.
func ExcelColumnLabel(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnLabel: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	// reverse in-place to correct order
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// HexLabel returns the lowercase hexadecimal representation of idx.
// Panics if idx < 0.
func HexLabel(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexLabel: idx must be ≥ 0, got %d", idx))
	}
	return strconv.FormatInt(int64(idx), 16)
}

// PrefixedLabel returns prefix + decimal index, e.g. "v0", "v1", ...
func PrefixedLabel(prefix string) LabelFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// labelSchemes maps scheme names accepted by LabelScheme.
var labelSchemes = map[string]LabelFn{
	"decimal": DecimalLabel,
	"excel":   ExcelColumnLabel,
	"hex":     HexLabel,
}

// LabelScheme looks up a named scheme ("decimal", "excel", "hex").
func LabelScheme(name string) (LabelFn, bool) {
	fn, ok := labelSchemes[name]
	return fn, ok
}
