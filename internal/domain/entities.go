package domain

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// ListEntry is a raw item from the paginated listing endpoint
type ListEntry struct {
	Name         string // Catalog slug, e.g. "bulbasaur"
	ReferenceURL string // Canonical API URL for the entry
}

// DisplayEntry is a list row ready for rendering.
// Two entries are the same row when their names match; they render the same
// when every field matches.
type DisplayEntry struct {
	Name         string
	ReferenceURL string
	ImageURL     string // Sprite URL derived from ReferenceURL
}

// Title returns the display title for the entry
func (e DisplayEntry) Title() string {
	return capitalize(e.Name)
}

// DetailRecord is the detail view of a single catalog entry.
// It is fetched per search or click and never cached.
type DetailRecord struct {
	ID             int
	Name           string
	Height         int // Decimetres
	Weight         int // Hectograms
	BaseExperience int

	// Sprite URLs as returned by the catalog (may be empty)
	SpriteURL          string
	ShinySpriteURL     string
	BackSpriteURL      string
	BackShinySpriteURL string

	Abilities []string // In slot order
	Types     []string // In slot order
	Moves     []string // In response order
}

// Title returns the display title for the record
func (d DetailRecord) Title() string {
	return capitalize(d.Name)
}

// capitalize upper-cases the first rune of name
func capitalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// FormattedHeight returns the height in metres
func (d DetailRecord) FormattedHeight() string {
	return fmt.Sprintf("%.1f m", float64(d.Height)/10)
}

// FormattedWeight returns the weight in kilograms
func (d DetailRecord) FormattedWeight() string {
	return fmt.Sprintf("%.1f kg", float64(d.Weight)/10)
}

// PageCursor addresses one page of the listing endpoint
type PageCursor struct {
	Offset int
	Limit  int
}

// Advance returns the cursor for the page after this one
func (c PageCursor) Advance() PageCursor {
	return PageCursor{Offset: c.Offset + c.Limit, Limit: c.Limit}
}

// Page is one decoded response of the listing endpoint
type Page struct {
	Count   int         // Total entries in the catalog
	Entries []ListEntry // Entries on this page, in catalog order
	Next    *PageCursor // nil once the catalog is exhausted
}
