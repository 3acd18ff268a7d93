package widget

import (
	"strings"

	"github.com/drake/pickers/ui/style"
)

// Carousel draws the banner strip: the current banner token in a frame and a
// row of page dots underneath.
type Carousel struct {
	banners []string
	pos     int
	width   int
	styles  style.Styles
}

// NewCarousel creates a carousel widget.
func NewCarousel(styles style.Styles) *Carousel {
	return &Carousel{styles: styles}
}

// Set updates the banners and the current position.
func (c *Carousel) Set(banners []string, pos int) {
	c.banners = banners
	c.pos = pos
}

// SetWidth updates the carousel width.
func (c *Carousel) SetWidth(w int) {
	c.width = w
}

// Height returns the rendered height in lines.
func (c *Carousel) Height() int {
	return 4 // border + banner + border + dots
}

// View renders the banner and page control.
func (c *Carousel) View() string {
	if len(c.banners) == 0 {
		return ""
	}

	frame := c.styles.BannerFrame
	if c.width > 2 {
		frame = frame.Width(c.width - 2)
	}
	banner := frame.Render(c.styles.Banner.Render(c.banners[c.pos]))

	dots := make([]string, len(c.banners))
	for i := range c.banners {
		if i == c.pos {
			dots[i] = c.styles.DotActive.Render("●")
		} else {
			dots[i] = c.styles.Dot.Render("○")
		}
	}
	control := strings.Join(dots, " ")
	if c.width > 0 {
		pad := (c.width - (2*len(dots) - 1)) / 2
		if pad > 0 {
			control = strings.Repeat(" ", pad) + control
		}
	}

	return banner + "\n" + control
}
