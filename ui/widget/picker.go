package widget

import (
	"strings"

	"github.com/drake/pickers/list"
	"github.com/drake/pickers/ui/style"
	"github.com/drake/pickers/ui/util"
)

// PickerConfig holds picker configuration.
type PickerConfig struct {
	MaxVisible int
	EmptyText  string
	// ShowIcons adds an icon column for items whose icon is not already part
	// of the label.
	ShowIcons bool
}

// Picker renders a scrolling list with a cursor and match highlighting.
// It displays whatever the screen reports as visible; it never filters.
type Picker struct {
	items     []list.Item
	query     string
	selected  int
	scrollOff int
	config    PickerConfig
	styles    style.Styles
	width     int
}

// NewPicker creates a new picker.
func NewPicker(config PickerConfig, styles style.Styles) *Picker {
	if config.MaxVisible == 0 {
		config.MaxVisible = 10
	}
	if config.EmptyText == "" {
		config.EmptyText = "No matches"
	}
	return &Picker{
		config: config,
		styles: styles,
	}
}

// SetItems replaces the displayed rows. query is used for highlighting only.
func (p *Picker) SetItems(items []list.Item, query string) {
	queryChanged := query != p.query
	p.items = items
	p.query = query

	if queryChanged {
		p.selected = 0
		p.scrollOff = 0
	}
	if p.selected >= len(p.items) {
		p.selected = max(0, len(p.items)-1)
	}
	p.adjustScroll()
}

// SetWidth updates the picker width.
func (p *Picker) SetWidth(w int) {
	p.width = w
}

// SetMaxVisible updates how many rows are shown at once.
func (p *Picker) SetMaxVisible(n int) {
	if n < 1 {
		n = 1
	}
	p.config.MaxVisible = n
	p.adjustScroll()
}

// SelectUp moves selection up with wraparound.
func (p *Picker) SelectUp() {
	if len(p.items) == 0 {
		return
	}
	p.selected--
	if p.selected < 0 {
		p.selected = len(p.items) - 1
	}
	p.adjustScroll()
}

// SelectDown moves selection down with wraparound.
func (p *Picker) SelectDown() {
	if len(p.items) == 0 {
		return
	}
	p.selected++
	if p.selected >= len(p.items) {
		p.selected = 0
	}
	p.adjustScroll()
}

func (p *Picker) adjustScroll() {
	if p.selected < p.scrollOff {
		p.scrollOff = p.selected
	} else if p.selected >= p.scrollOff+p.config.MaxVisible {
		p.scrollOff = p.selected - p.config.MaxVisible + 1
	}
}

// Selected returns the item under the cursor.
func (p *Picker) Selected() (list.Item, bool) {
	if len(p.items) == 0 || p.selected < 0 || p.selected >= len(p.items) {
		return list.Item{}, false
	}
	return p.items[p.selected], true
}

// SelectedIndex returns the cursor position.
func (p *Picker) SelectedIndex() int {
	return p.selected
}

// Count returns the number of rows.
func (p *Picker) Count() int {
	return len(p.items)
}

// Height returns the rendered height in lines.
func (p *Picker) Height() int {
	h := min(len(p.items), p.config.MaxVisible)
	if h == 0 {
		h = 1 // "No matches" placeholder
	}
	return h
}

// View renders the visible rows.
func (p *Picker) View() string {
	if len(p.items) == 0 {
		return p.styles.Muted.Render("  " + p.config.EmptyText)
	}

	start := p.scrollOff
	end := min(start+p.config.MaxVisible, len(p.items))

	matcher := list.NewMatcher(p.query)
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		item := p.items[i]
		span, _ := matcher.Match(item.Label)
		lines = append(lines, p.renderItem(item, i == p.selected, span))
	}
	return strings.Join(lines, "\n")
}

func (p *Picker) renderItem(item list.Item, selected bool, match list.Span) string {
	prefix := "  "
	if selected {
		prefix = "> "
	}

	var result strings.Builder
	used := 2

	if p.config.ShowIcons && item.Icon != "" && !strings.Contains(item.Label, item.Icon) {
		icon := "[" + item.Icon + "] "
		result.WriteString(p.styles.Icon.Render(icon))
		used += util.VisibleLen(icon)
	}

	label := item.Label
	if p.width > 0 {
		n := util.FitRunes(label, p.width-used)
		label = string([]rune(label)[:n])
	}

	idx := 0
	for _, r := range label {
		ch := string(r)
		isMatch := match.Contains(idx)
		switch {
		case isMatch && selected:
			result.WriteString(p.styles.ItemMatchSelected.Render(ch))
		case isMatch:
			result.WriteString(p.styles.ItemMatch.Render(ch))
		case selected:
			result.WriteString(p.styles.ItemSelected.Render(ch))
		default:
			result.WriteString(p.styles.ItemNormal.Render(ch))
		}
		idx++
	}

	var prefixStyled string
	if selected {
		prefixStyled = p.styles.ItemSelected.Render(prefix)
	} else {
		prefixStyled = p.styles.ItemNormal.Render(prefix)
	}

	return prefixStyled + result.String()
}
