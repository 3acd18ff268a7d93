package country

import (
	"math/rand/v2"

	log "github.com/sirupsen/logrus"

	"github.com/drake/pickers/list"
)

// Layout selects the label format.
type Layout int

const (
	FlagFirst Layout = iota // "<flag>        <name>"
	NameFirst               // "<name> <flag>"
)

// flagNameGap separates the flag from the name in the FlagFirst layout.
const flagNameGap = "        "

// Placeholder is the name used for codes without a display name.
func Placeholder(code string) string {
	return "Country not found for code: " + code
}

// FormatLabel builds a row label from a flag glyph and a name.
func FormatLabel(flag, name string, layout Layout) string {
	if layout == NameFirst {
		return name + " " + flag
	}
	return flag + flagNameGap + name
}

// Generator produces country items.
type Generator struct {
	Codes []string
	Namer Namer
	// Rand drives shuffling; nil uses the global source.
	Rand *rand.Rand
}

// NewGenerator returns a generator over the full ISO table with English
// names.
func NewGenerator() *Generator {
	return &Generator{
		Codes: Codes(),
		Namer: NewDisplayNamer(),
	}
}

// Generate builds one item per code. With shuffle the code order is
// randomised and the NameFirst layout is used; otherwise codes keep table
// order and the FlagFirst layout is used.
func (g *Generator) Generate(shuffle bool) []list.Item {
	codes := make([]string, len(g.Codes))
	copy(codes, g.Codes)

	layout := FlagFirst
	if shuffle {
		layout = NameFirst
		swap := func(i, j int) { codes[i], codes[j] = codes[j], codes[i] }
		if g.Rand != nil {
			g.Rand.Shuffle(len(codes), swap)
		} else {
			rand.Shuffle(len(codes), swap)
		}
	}

	items := make([]list.Item, 0, len(codes))
	for _, code := range codes {
		flag := Flag(code)
		items = append(items, list.Item{
			Label: FormatLabel(flag, g.name(code), layout),
			Icon:  flag,
		})
	}
	return items
}

func (g *Generator) name(code string) string {
	if g.Namer == nil {
		return Placeholder(code)
	}
	name, err := g.Namer.Name(code)
	if err != nil {
		log.WithFields(log.Fields{
			"code":  code,
			"error": err,
		}).Debug("Country name not found, using placeholder")
		return Placeholder(code)
	}
	return name
}
