package list

import (
	"strings"

	"golang.org/x/text/cases"
)

// Span is a half-open range of rune indices within a label.
type Span struct {
	Start int
	End   int
}

// Contains reports whether rune index i lies inside the span.
func (s Span) Contains(i int) bool {
	return i >= s.Start && i < s.End
}

// Len returns the number of runes covered.
func (s Span) Len() int {
	return s.End - s.Start
}

// folded is a case-folded string plus, for each of its bytes, the index of
// the source rune that produced it.
type folded struct {
	text  string
	runes []int
}

func fold(c cases.Caser, s string) folded {
	var b strings.Builder
	b.Grow(len(s))
	runes := make([]int, 0, len(s))

	ri := 0
	for _, r := range s {
		f := c.String(string(r))
		b.WriteString(f)
		for range len(f) {
			runes = append(runes, ri)
		}
		ri++
	}
	return folded{text: b.String(), runes: runes}
}

// Matcher performs case-insensitive substring matching for one query.
// Folding is done rune by rune so match offsets map back onto the label.
// A Matcher is not safe for concurrent use.
type Matcher struct {
	caser cases.Caser
	query folded
	empty bool
}

// NewMatcher prepares a matcher for query.
func NewMatcher(query string) *Matcher {
	c := cases.Fold()
	return &Matcher{
		caser: c,
		query: fold(c, query),
		empty: query == "",
	}
}

// Match returns the span of the first occurrence of the query in label.
// An empty query matches every label with an empty span.
func (m *Matcher) Match(label string) (Span, bool) {
	if m.empty {
		return Span{}, true
	}
	l := fold(m.caser, label)
	off := strings.Index(l.text, m.query.text)
	if off < 0 {
		return Span{}, false
	}
	start := l.runes[off]
	end := l.runes[off+len(m.query.text)-1] + 1
	return Span{Start: start, End: end}, true
}

// Contains reports whether label contains the query, ignoring case.
func (m *Matcher) Contains(label string) bool {
	_, ok := m.Match(label)
	return ok
}

// Match is a convenience wrapper for a single label.
func Match(label, query string) (Span, bool) {
	return NewMatcher(query).Match(label)
}
