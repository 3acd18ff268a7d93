// Package languages generates the synthetic language picker data.
package languages

import (
	"strconv"

	"github.com/drake/pickers/list"
)

const (
	DefaultCount     = 60
	DefaultGroupSize = 20
)

// Icons are the two alternating icon tokens.
type Icons struct {
	Even string // 0-based even index
	Odd  string
}

// DefaultIcons returns the stock icon tokens.
func DefaultIcons() Icons {
	return Icons{Even: "image4", Odd: "image5"}
}

// Name returns the label of the language at 0-based index i.
func Name(i int) string {
	return "Language " + strconv.Itoa(i+1)
}

// Generate builds count items named "Language 1".."Language <count>".
func Generate(count int, icons Icons) []list.Item {
	if count <= 0 {
		return nil
	}
	items := make([]list.Item, count)
	for i := range items {
		icon := icons.Even
		if i%2 == 1 {
			icon = icons.Odd
		}
		items[i] = list.Item{Label: Name(i), Icon: icon}
	}
	return items
}

// Groups generates count items and partitions them into pages of groupSize.
func Groups(count, groupSize int, icons Icons) [][]list.Item {
	return list.Group(Generate(count, icons), groupSize)
}
