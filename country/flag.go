// Package country builds the country picker's items from the ISO 3166-1
// code table: flag glyphs, English display names and list generation.
package country

import "strings"

// regionalIndicatorOffset maps 'A' onto U+1F1E6 REGIONAL INDICATOR SYMBOL
// LETTER A.
const regionalIndicatorOffset = 0x1F1E6 - 'A' // 127397

// Flag returns the flag glyph for a two-letter code: each letter is shifted
// into the regional indicator block and the results are concatenated.
// The code must be upper-case ASCII; other input is not normalised.
func Flag(code string) string {
	var b strings.Builder
	b.Grow(len(code) * 4)
	for i := 0; i < len(code); i++ {
		b.WriteRune(rune(code[i]) + regionalIndicatorOffset)
	}
	return b.String()
}
