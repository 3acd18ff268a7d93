package widget

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/pickers/ui/style"
)

// Search is the query field.
type Search struct {
	textinput textinput.Model
	styles    style.Styles
	width     int
}

// NewSearch creates a focused search field.
func NewSearch(placeholder string, styles style.Styles) *Search {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "/ "
	ti.PromptStyle = styles.SearchPrompt
	ti.CharLimit = 0
	ti.Width = 40
	ti.Focus()

	return &Search{
		textinput: ti,
		styles:    styles,
	}
}

// Update forwards a message to the text input and reports whether the
// value changed.
func (s *Search) Update(msg tea.Msg) (bool, tea.Cmd) {
	old := s.textinput.Value()
	var cmd tea.Cmd
	s.textinput, cmd = s.textinput.Update(msg)
	return s.textinput.Value() != old, cmd
}

// Value returns the current query text.
func (s *Search) Value() string {
	return s.textinput.Value()
}

// SetValue replaces the query text.
func (s *Search) SetValue(v string) {
	s.textinput.SetValue(v)
	s.textinput.CursorEnd()
}

// Reset clears the query text.
func (s *Search) Reset() {
	s.textinput.Reset()
}

// Focus gives the field keyboard focus.
func (s *Search) Focus() tea.Cmd {
	return s.textinput.Focus()
}

// Blur removes keyboard focus.
func (s *Search) Blur() {
	s.textinput.Blur()
}

// SetWidth updates the field width.
func (s *Search) SetWidth(w int) {
	s.width = w
	s.textinput.Width = max(1, w-4) // Account for prompt and cursor
}

// Height returns the rendered height in lines.
func (s *Search) Height() int {
	return 2 // field + bottom rule
}

// View renders the field.
func (s *Search) View() string {
	frame := s.styles.SearchFrame
	if s.width > 0 {
		frame = frame.Width(s.width)
	}
	return frame.Render(s.textinput.View())
}
