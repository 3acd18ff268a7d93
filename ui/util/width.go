package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}

// VisibleLen returns the visible display width of a string (excluding ANSI codes).
func VisibleLen(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}

// FitRunes returns how many leading runes of s fit in width cells.
func FitRunes(s string, width int) int {
	if width <= 0 {
		return 0
	}
	n, used := 0, 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if used+w > width {
			break
		}
		used += w
		n++
	}
	return n
}

// PadRight pads s with spaces to width display cells.
func PadRight(s string, width int) string {
	if gap := width - VisibleLen(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
