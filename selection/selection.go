// Package selection tracks the picker's current selection and search state.
package selection

import "github.com/drake/pickers/list"

// Coordinator holds at most one selected item plus the search-active flag.
type Coordinator struct {
	selected  list.Item
	hasSel    bool
	searching bool
}

// New returns an empty coordinator.
func New() *Coordinator {
	return &Coordinator{}
}

// Select overwrites the current selection.
func (c *Coordinator) Select(item list.Item) {
	c.selected = item
	c.hasSel = true
}

// Current returns the selection without clearing it.
func (c *Coordinator) Current() (list.Item, bool) {
	return c.selected, c.hasSel
}

// Consume returns the selection and clears it. A second call without an
// intervening Select reports false.
func (c *Coordinator) Consume() (list.Item, bool) {
	item, ok := c.selected, c.hasSel
	c.selected = list.Item{}
	c.hasSel = false
	return item, ok
}

// SetSearching records whether a non-empty query is active.
func (c *Coordinator) SetSearching(v bool) {
	c.searching = v
}

// Searching reports whether a search is active.
func (c *Coordinator) Searching() bool {
	return c.searching
}

// CancelSearch resets the search state. The selection is kept.
func (c *Coordinator) CancelSearch() {
	c.searching = false
}
