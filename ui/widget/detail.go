package widget

import (
	"github.com/drake/pickers/list"
	"github.com/drake/pickers/ui/style"
)

// Detail shows the item handed over by a selection.
type Detail struct {
	item   list.Item
	title  string
	width  int
	styles style.Styles
}

// NewDetail creates a detail widget.
func NewDetail(styles style.Styles) *Detail {
	return &Detail{styles: styles}
}

// Show sets the item to display.
func (d *Detail) Show(title string, item list.Item) {
	d.title = title
	d.item = item
}

// Item returns the displayed item.
func (d *Detail) Item() list.Item {
	return d.item
}

// SetWidth updates the detail width.
func (d *Detail) SetWidth(w int) {
	d.width = w
}

// View renders the detail card.
func (d *Detail) View() string {
	body := d.styles.Muted.Render(d.title) + "\n\n" +
		d.styles.DetailLabel.Render(d.item.Label)
	if d.item.Icon != "" {
		body += "\n" + d.styles.Icon.Render(d.item.Icon)
	}

	border := d.styles.DetailBorder
	if d.width > 4 {
		border = border.Width(d.width - 4)
	}
	return border.Render(body)
}
