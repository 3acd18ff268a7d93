package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the lipgloss styles for the TUI.
type Styles struct {
	// Layout
	App   lipgloss.Style
	Title lipgloss.Style

	// Carousel
	BannerFrame lipgloss.Style
	Banner      lipgloss.Style
	Dot         lipgloss.Style
	DotActive   lipgloss.Style

	// Search
	SearchFrame  lipgloss.Style
	SearchPrompt lipgloss.Style

	// List rows
	ItemNormal        lipgloss.Style
	ItemSelected      lipgloss.Style
	ItemMatch         lipgloss.Style
	ItemMatchSelected lipgloss.Style // Match highlighting on selected row
	Icon              lipgloss.Style

	// Detail
	DetailBorder lipgloss.Style
	DetailLabel  lipgloss.Style

	// Misc
	Help    lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1).
			Bold(true),

		// Carousel - framed banner with page dots underneath
		BannerFrame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Align(lipgloss.Center),
		Banner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true),
		Dot: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")), // Gray
		DotActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")),

		// Search
		SearchFrame: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("240")),
		SearchPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),

		// List rows
		ItemNormal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		ItemSelected: lipgloss.NewStyle().
			Background(lipgloss.Color("161")). // Raspberry, the country screen accent
			Foreground(lipgloss.Color("230")),
		ItemMatch: lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // Magenta for matched chars
			Bold(true),
		ItemMatchSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Background(lipgloss.Color("161")).
			Bold(true),
		Icon: lipgloss.NewStyle().
			Foreground(lipgloss.Color("179")), // Muted yellow

		// Detail
		DetailBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("161")).
			Padding(1, 2),
		DetailLabel: lipgloss.NewStyle().
			Bold(true),

		// Misc
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")),
	}
}
