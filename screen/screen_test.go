package screen

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/drake/pickers/config"
	"github.com/drake/pickers/country"
	"github.com/drake/pickers/list"
)

func labels(items []list.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Label
	}
	return out
}

func newTestCountry(t *testing.T) *Screen {
	t.Helper()
	gen := &country.Generator{
		Codes: []string{"FR", "DE", "ES"},
		Namer: country.MapNamer{"FR": "France", "DE": "Germany", "ES": "Spain"},
		Rand:  rand.New(rand.NewPCG(7, 7)),
	}
	return NewCountry(config.Default().Country, gen)
}

func TestLanguageScreenPaging(t *testing.T) {
	s := NewLanguage(config.Default().Language)

	if s.PageCount() != 3 {
		t.Fatalf("PageCount() = %d, want 3", s.PageCount())
	}
	if got := s.Visible(); len(got) != 20 || got[0].Label != "Language 1" {
		t.Fatalf("page 0 = %v", labels(got))
	}

	if err := s.CarouselPositionReached(1); err != nil {
		t.Fatalf("CarouselPositionReached(1): %v", err)
	}
	if s.Page() != 1 || s.Visible()[0].Label != "Language 21" {
		t.Errorf("carousel should turn the page, page=%d first=%q", s.Page(), s.Visible()[0].Label)
	}
	if got := s.Carousel().Banner(); got != "image2" {
		t.Errorf("Banner() = %q, want image2", got)
	}

	s.QueryChanged("language 4")
	want := []string{"Language 40"}
	if diff := cmp.Diff(want, labels(s.Visible())); diff != "" {
		t.Errorf("search should cover the current page only (-want +got):\n%s", diff)
	}

	if err := s.PageChanged(2); err != nil {
		t.Fatalf("PageChanged(2): %v", err)
	}
	if s.Carousel().Pos != 2 {
		t.Errorf("page change should move the carousel, pos=%d", s.Carousel().Pos)
	}
	if got := labels(s.Visible()); len(got) != 9 || got[0] != "Language 41" {
		t.Errorf("page 2 with query = %v, want Language 41..49", got)
	}
}

func TestLanguageScreenRejectsBadPage(t *testing.T) {
	s := NewLanguage(config.Default().Language)
	for _, idx := range []int{-1, 3} {
		if err := s.PageChanged(idx); !errors.Is(err, list.ErrIndexOutOfRange) {
			t.Errorf("PageChanged(%d) = %v, want ErrIndexOutOfRange", idx, err)
		}
		if err := s.CarouselPositionReached(idx); !errors.Is(err, list.ErrIndexOutOfRange) {
			t.Errorf("CarouselPositionReached(%d) = %v, want ErrIndexOutOfRange", idx, err)
		}
	}
	if s.Page() != 0 || s.Carousel().Pos != 0 {
		t.Errorf("rejected events changed state: page=%d pos=%d", s.Page(), s.Carousel().Pos)
	}
}

func TestCountryScreenRegeneratesAtSentinel(t *testing.T) {
	s := newTestCountry(t)
	flagFirst := labels(s.Visible())
	if !strings.HasSuffix(flagFirst[0], "        France") {
		t.Fatalf("initial label %q should be flag-first", flagFirst[0])
	}

	if err := s.CarouselPositionReached(1); err != nil {
		t.Fatal(err)
	}
	if s.Shuffles() != 0 {
		t.Fatalf("position 1 must not regenerate")
	}

	if err := s.CarouselPositionReached(2); err != nil {
		t.Fatal(err)
	}
	if s.Shuffles() != 1 {
		t.Fatalf("position 2 should regenerate once, got %d", s.Shuffles())
	}
	for _, l := range labels(s.Visible()) {
		if strings.Contains(l, "        ") {
			t.Errorf("regenerated label %q should be name-first", l)
		}
	}

	// Staying on the sentinel does not regenerate again; coming back does.
	if err := s.CarouselPositionReached(2); err != nil {
		t.Fatal(err)
	}
	if s.Shuffles() != 1 {
		t.Errorf("repeated position 2 regenerated, shuffles=%d", s.Shuffles())
	}
	_ = s.CarouselPositionReached(0)
	_ = s.CarouselPositionReached(2)
	if s.Shuffles() != 2 {
		t.Errorf("re-entering position 2 should regenerate, shuffles=%d", s.Shuffles())
	}
}

func TestCountryScreenQuerySurvivesRegeneration(t *testing.T) {
	s := newTestCountry(t)
	s.QueryChanged("fr")
	if err := s.CarouselPositionReached(2); err != nil {
		t.Fatal(err)
	}
	got := labels(s.Visible())
	if len(got) != 1 || !strings.HasPrefix(got[0], "France ") {
		t.Errorf("Visible() after regeneration = %v, want only France", got)
	}
}

func TestCountryScreenSinglePage(t *testing.T) {
	s := newTestCountry(t)
	if s.PageCount() != 1 {
		t.Fatalf("PageCount() = %d, want 1", s.PageCount())
	}
	if err := s.PageChanged(0); err != nil {
		t.Errorf("PageChanged(0): %v", err)
	}
	if err := s.PageChanged(1); !errors.Is(err, list.ErrIndexOutOfRange) {
		t.Errorf("PageChanged(1) = %v, want ErrIndexOutOfRange", err)
	}
}

func TestCancelSearchEqualsEmptyQuery(t *testing.T) {
	s := newTestCountry(t)
	full := labels(s.Visible())

	s.QueryChanged("zz")
	if len(s.Visible()) != 0 || !s.Searching() {
		t.Fatalf("query zz should match nothing and mark searching")
	}

	s.CancelSearch()
	if s.Searching() || s.Query() != "" {
		t.Errorf("CancelSearch left searching=%v query=%q", s.Searching(), s.Query())
	}
	if diff := cmp.Diff(full, labels(s.Visible())); diff != "" {
		t.Errorf("cancelled search should show the full page (-want +got):\n%s", diff)
	}

	s.QueryChanged("zz")
	s.QueryChanged("")
	if s.Searching() {
		t.Errorf("empty query should clear searching")
	}
	if diff := cmp.Diff(full, labels(s.Visible())); diff != "" {
		t.Errorf("empty query should show the full page (-want +got):\n%s", diff)
	}
}

func TestSelectionHandOff(t *testing.T) {
	s := newTestCountry(t)
	item := s.Visible()[1]
	s.ItemTapped(item)

	if got, ok := s.Selection(); !ok || got != item {
		t.Fatalf("Selection() = %+v, %v", got, ok)
	}
	s.CancelSearch()
	got, ok := s.ConsumeSelection()
	if !ok || got != item {
		t.Fatalf("ConsumeSelection() = %+v, %v", got, ok)
	}
	if _, ok := s.ConsumeSelection(); ok {
		t.Errorf("selection should be cleared after consumption")
	}
}
