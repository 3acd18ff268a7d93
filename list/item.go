// Package list holds the picker data model and the filtering, grouping and
// paging rules shared by every picker screen.
package list

// Item is a single picker row.
type Item struct {
	Label string `json:"label" yaml:"label"` // User-visible text
	Icon  string `json:"icon" yaml:"icon"`   // Opaque asset reference (flag glyph, image token)
}

// FilterValue returns the string matched against search queries.
func (i Item) FilterValue() string {
	return i.Label
}
