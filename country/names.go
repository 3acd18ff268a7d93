package country

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// LookupError means a code has no resolvable display name.
type LookupError struct {
	Code string
	Err  error
}

func (e *LookupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("no display name for country code %q: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("no display name for country code %q", e.Code)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// Namer resolves a country code to a display name.
type Namer interface {
	Name(code string) (string, error)
}

// DisplayNamer resolves region names from the CLDR data in x/text.
type DisplayNamer struct {
	namer display.Namer
}

// NewDisplayNamer returns a Namer producing English names.
func NewDisplayNamer() *DisplayNamer {
	return &DisplayNamer{namer: display.English.Regions()}
}

// Name implements Namer.
func (d *DisplayNamer) Name(code string) (string, error) {
	region, err := language.ParseRegion(code)
	if err != nil {
		return "", &LookupError{Code: code, Err: err}
	}
	name := d.namer.Name(region)
	if name == "" {
		return "", &LookupError{Code: code}
	}
	return name, nil
}

// MapNamer is a fixed code -> name table.
type MapNamer map[string]string

// Name implements Namer.
func (m MapNamer) Name(code string) (string, error) {
	if name, ok := m[code]; ok {
		return name, nil
	}
	return "", &LookupError{Code: code}
}
