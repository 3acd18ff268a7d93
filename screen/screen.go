// Package screen implements the event contract between a picker screen and
// whatever renders it. The renderer reports user input through the event
// methods and reads back what to draw; it holds no list state of its own.
package screen

import (
	log "github.com/sirupsen/logrus"

	"github.com/drake/pickers/config"
	"github.com/drake/pickers/country"
	"github.com/drake/pickers/languages"
	"github.com/drake/pickers/list"
	"github.com/drake/pickers/selection"
)

// Kind identifies a picker screen.
type Kind int

const (
	KindCountry Kind = iota
	KindLanguage
)

func (k Kind) String() string {
	switch k {
	case KindCountry:
		return "country"
	case KindLanguage:
		return "language"
	default:
		return "unknown"
	}
}

// Carousel is a snapshot of the banner strip.
type Carousel struct {
	Banners []string // One token per position
	Pos     int
}

// Banner returns the token at the current position.
func (c Carousel) Banner() string {
	if len(c.Banners) == 0 {
		return ""
	}
	return c.Banners[c.Pos]
}

// Screen is one picker: engine, selection and banner carousel.
type Screen struct {
	kind  Kind
	title string

	engine *list.Engine
	sel    *selection.Coordinator

	banners []string
	pos     int

	// pagesFollowCarousel ties the engine page to the carousel position.
	pagesFollowCarousel bool

	// shuffleAt is the carousel position that triggers regenerate; -1 never.
	shuffleAt  int
	regenerate func() [][]list.Item
	shuffles   int

	log *log.Entry
}

// NewCountry builds the country picker: one implicit page holding every
// country, regenerated in random order whenever the carousel arrives at
// cfg.ShuffleAt.
func NewCountry(cfg config.Country, gen *country.Generator) *Screen {
	s := &Screen{
		kind:      KindCountry,
		title:     "Countries",
		engine:    list.NewEngine([][]list.Item{gen.Generate(false)}),
		sel:       selection.New(),
		banners:   cfg.Banners,
		shuffleAt: cfg.ShuffleAt,
		regenerate: func() [][]list.Item {
			return [][]list.Item{gen.Generate(true)}
		},
		log: log.WithField("screen", KindCountry.String()),
	}
	s.log.WithFields(log.Fields{
		"items":   s.engine.Len(),
		"banners": len(s.banners),
	}).Info("Screen created")
	return s
}

// NewLanguage builds the language picker: cfg.Count synthetic languages in
// pages of cfg.GroupSize, one page per carousel position.
func NewLanguage(cfg config.Language) *Screen {
	icons := languages.Icons{Even: cfg.IconEven, Odd: cfg.IconOdd}
	groups := languages.Groups(cfg.Count, cfg.GroupSize, icons)

	// One banner per page; tokens repeat when there are more pages than
	// banner images.
	banners := make([]string, len(groups))
	for i := range banners {
		if len(cfg.Banners) > 0 {
			banners[i] = cfg.Banners[i%len(cfg.Banners)]
		}
	}

	s := &Screen{
		kind:                KindLanguage,
		title:               "Languages",
		engine:              list.NewEngine(groups),
		sel:                 selection.New(),
		banners:             banners,
		pagesFollowCarousel: true,
		shuffleAt:           -1,
		log:                 log.WithField("screen", KindLanguage.String()),
	}
	s.log.WithFields(log.Fields{
		"items": s.engine.Len(),
		"pages": s.engine.PageCount(),
	}).Info("Screen created")
	return s
}

// --- Input events ---

// QueryChanged applies a new search query.
func (s *Screen) QueryChanged(text string) {
	s.engine.SetQuery(text)
	s.sel.SetSearching(text != "")
}

// PageChanged selects the page to filter. Out-of-range indices return an
// *list.IndexError and leave the screen unchanged.
func (s *Screen) PageChanged(index int) error {
	if err := s.engine.SetPage(index); err != nil {
		s.log.WithFields(log.Fields{
			"index": index,
			"error": err,
		}).Debug("Page change rejected")
		return err
	}
	if s.pagesFollowCarousel {
		s.pos = index
	}
	s.log.WithField("page", index).Debug("Page changed")
	return nil
}

// ItemTapped records item as the selection.
func (s *Screen) ItemTapped(item list.Item) {
	s.sel.Select(item)
	s.log.WithField("label", item.Label).Info("Item selected")
}

// CancelSearch clears the query. The screen then shows the full current
// page, exactly as for an empty query.
func (s *Screen) CancelSearch() {
	s.engine.SetQuery("")
	s.sel.CancelSearch()
}

// CarouselPositionReached moves the banner carousel. On the language screen
// this also turns the page; on the country screen arriving at the shuffle
// position regenerates the list.
func (s *Screen) CarouselPositionReached(index int) error {
	if err := list.CheckIndex(index, len(s.banners)); err != nil {
		s.log.WithFields(log.Fields{
			"index": index,
			"error": err,
		}).Debug("Carousel position rejected")
		return err
	}

	prev := s.pos
	s.pos = index

	if s.pagesFollowCarousel {
		return s.PageChanged(index)
	}

	if index == s.shuffleAt && prev != index && s.regenerate != nil {
		s.engine.SetGroups(s.regenerate())
		s.shuffles++
		s.log.WithFields(log.Fields{
			"position": index,
			"items":    s.engine.Len(),
		}).Info("List regenerated")
	}
	return nil
}

// --- Outputs ---

// Visible returns the items to draw for the current page and query.
func (s *Screen) Visible() []list.Item {
	return s.engine.Visible()
}

// PageCount returns the number of pages.
func (s *Screen) PageCount() int {
	return s.engine.PageCount()
}

// Page returns the current page index.
func (s *Screen) Page() int {
	return s.engine.Page()
}

// Query returns the active query.
func (s *Screen) Query() string {
	return s.engine.Query()
}

// Searching reports whether a non-empty query is active.
func (s *Screen) Searching() bool {
	return s.sel.Searching()
}

// Selection returns the current selection without consuming it.
func (s *Screen) Selection() (list.Item, bool) {
	return s.sel.Current()
}

// ConsumeSelection hands the selection to navigation and clears it.
func (s *Screen) ConsumeSelection() (list.Item, bool) {
	return s.sel.Consume()
}

// Carousel returns the banner strip state.
func (s *Screen) Carousel() Carousel {
	return Carousel{Banners: s.banners, Pos: s.pos}
}

// Shuffles returns how many times the list has been regenerated.
func (s *Screen) Shuffles() int {
	return s.shuffles
}

// Title returns the screen heading.
func (s *Screen) Title() string {
	return s.title
}

// Kind returns which picker this is.
func (s *Screen) Kind() Kind {
	return s.kind
}
