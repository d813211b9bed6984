// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/arbor/builder"
)

// TestLabelFns verifies each LabelFn both for outputs on valid inputs
// and for panics on invalid inputs.
func TestLabelFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.LabelFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"Decimal_zero", builder.DecimalLabel, 0, "0", false},
		{"Decimal_multi", builder.DecimalLabel, 123, "123", false},

		{"Symbol_min", builder.SymbolLabel, 0, "A", false},
		{"Symbol_max", builder.SymbolLabel, 25, "Z", false},
		{"Symbol_neg", builder.SymbolLabel, -1, "", true},
		{"Symbol_tooHigh", builder.SymbolLabel, 26, "", true},

		{"Excel_zero", builder.ExcelColumnLabel, 0, "A", false},
		{"Excel_endSingle", builder.ExcelColumnLabel, 25, "Z", false},
		{"Excel_startDouble", builder.ExcelColumnLabel, 26, "AA", false},
		{"Excel_ZZ", builder.ExcelColumnLabel, 701, "ZZ", false},
		{"Excel_AAA", builder.ExcelColumnLabel, 702, "AAA", false},
		{"Excel_neg", builder.ExcelColumnLabel, -1, "", true},

		{"Hex_zero", builder.HexLabel, 0, "0", false},
		{"Hex_ten", builder.HexLabel, 10, "a", false},
		{"Hex_ff", builder.HexLabel, 255, "ff", false},
		{"Hex_neg", builder.HexLabel, -1, "", true},

		{"Prefixed", builder.PrefixedLabel("v"), 7, "v7", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.shouldPanic {
				assert.Panics(t, func() { tc.fn(tc.input) })
				return
			}
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

func TestLabelScheme(t *testing.T) {
	fn, ok := builder.LabelScheme("excel")
	assert.True(t, ok)
	assert.Equal(t, "AB", fn(27))

	_, ok = builder.LabelScheme("roman")
	assert.False(t, ok)
}
