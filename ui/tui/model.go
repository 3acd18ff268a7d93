package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/drake/pickers/screen"
	"github.com/drake/pickers/ui/style"
	"github.com/drake/pickers/ui/widget"
)

// Mode is what the model is currently showing.
type Mode int

const (
	ModeList   Mode = iota // Carousel, search field and list
	ModeDetail             // The item handed over by the last selection
)

// Model is the Bubble Tea model for one picker screen. All list state lives
// in the screen; the model forwards input and draws what the screen reports.
type Model struct {
	screen *screen.Screen
	keys   KeyMap
	styles style.Styles

	carousel *widget.Carousel
	search   *widget.Search
	picker   *widget.Picker
	detail   *widget.Detail

	mode     Mode
	width    int
	height   int
	quitting bool
}

// NewModel creates a model driving s.
func NewModel(s *screen.Screen) Model {
	styles := style.DefaultStyles()
	m := Model{
		screen:   s,
		keys:     DefaultKeyMap(),
		styles:   styles,
		carousel: widget.NewCarousel(styles),
		search:   widget.NewSearch("Search "+strings.ToLower(s.Title()), styles),
		picker: widget.NewPicker(widget.PickerConfig{
			MaxVisible: 10,
			ShowIcons:  true,
		}, styles),
		detail: widget.NewDetail(styles),
	}
	m.sync()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.search.Focus()
}

// Mode reports what the model is showing.
func (m Model) Mode() Mode {
	return m.mode
}

// Screen returns the driven screen.
func (m Model) Screen() *screen.Screen {
	return m.screen
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.mode == ModeDetail {
		if key.Matches(msg, m.keys.Cancel) || key.Matches(msg, m.keys.Select) {
			m.mode = ModeList
			return m, m.search.Focus()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.picker.SelectUp()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.picker.SelectDown()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.moveCarousel(1)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.moveCarousel(-1)
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.search.Reset()
		m.screen.CancelSearch()
		m.sync()
		return m, nil

	case key.Matches(msg, m.keys.Select):
		item, ok := m.picker.Selected()
		if !ok {
			return m, nil
		}
		m.screen.ItemTapped(item)
		if picked, ok := m.screen.ConsumeSelection(); ok {
			m.detail.Show(m.screen.Title(), picked)
			m.mode = ModeDetail
			m.search.Blur()
		}
		return m, nil
	}

	changed, cmd := m.search.Update(msg)
	if changed {
		m.screen.QueryChanged(m.search.Value())
	}
	m.sync()
	return m, cmd
}

// moveCarousel steps the carousel by delta. Moves past either end are
// rejected by the screen and leave everything as it was.
func (m *Model) moveCarousel(delta int) {
	pos := m.screen.Carousel().Pos + delta
	if err := m.screen.CarouselPositionReached(pos); err != nil {
		log.WithError(err).Debug("Carousel move ignored")
		return
	}
	m.sync()
}

// sync pulls the screen outputs into the widgets.
func (m *Model) sync() {
	c := m.screen.Carousel()
	m.carousel.Set(c.Banners, c.Pos)
	m.picker.SetItems(m.screen.Visible(), m.screen.Query())
}

func (m *Model) resize() {
	inner := max(1, m.width-2) // App padding
	m.carousel.SetWidth(inner)
	m.search.SetWidth(inner)
	m.picker.SetWidth(inner)
	m.detail.SetWidth(inner)

	// Title, carousel, search and help; the list gets the rest.
	chrome := 1 + m.carousel.Height() + m.search.Height() + 2
	m.picker.SetMaxVisible(m.height - chrome)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.screen.Title()))
	b.WriteString("\n")

	if m.mode == ModeDetail {
		b.WriteString(m.detail.View())
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("esc back • ctrl+c quit"))
		return m.styles.App.Render(b.String())
	}

	if v := m.carousel.View(); v != "" {
		b.WriteString(v)
		b.WriteString("\n")
	}
	b.WriteString(m.search.View())
	b.WriteString("\n")
	b.WriteString(m.picker.View())
	b.WriteString("\n\n")
	b.WriteString(m.helpView())
	return m.styles.App.Render(b.String())
}

func (m Model) helpView() string {
	bindings := m.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return m.styles.Help.Render(strings.Join(parts, " • "))
}
