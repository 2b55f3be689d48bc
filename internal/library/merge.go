// Package library maintains the display list: it turns fetched listing pages
// into display entries and computes row-level changes between lists so the
// renderer can skip rows that did not change.
package library

import (
	"fmt"

	"github.com/Mondacars0165/PokeTest/internal/domain"
)

// ResolveFunc derives an image URL from a reference URL
type ResolveFunc func(referenceURL string) (string, error)

// ToDisplay converts a page of listing entries into display entries
func ToDisplay(page []domain.ListEntry, resolve ResolveFunc) ([]domain.DisplayEntry, error) {
	out := make([]domain.DisplayEntry, len(page))
	for i, e := range page {
		imageURL, err := resolve(e.ReferenceURL)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", e.Name, err)
		}
		out[i] = domain.DisplayEntry{
			Name:         e.Name,
			ReferenceURL: e.ReferenceURL,
			ImageURL:     imageURL,
		}
	}
	return out, nil
}

// Merge appends page to current and returns the next display list.
//
// The result is always a fresh slice; current is never written to, so a
// caller holding it keeps a consistent view. Entries are not deduplicated
// across pages. If any entry in page fails to resolve, Merge returns the
// error and a nil list.
func Merge(current []domain.DisplayEntry, page []domain.ListEntry, resolve ResolveFunc) ([]domain.DisplayEntry, error) {
	converted, err := ToDisplay(page, resolve)
	if err != nil {
		return nil, err
	}

	next := make([]domain.DisplayEntry, 0, len(current)+len(converted))
	next = append(next, current...)
	next = append(next, converted...)
	return next, nil
}

// SameEntry reports whether a and b are the same row
func SameEntry(a, b domain.DisplayEntry) bool {
	return a.Name == b.Name
}

// SameContents reports whether a and b render identically
func SameContents(a, b domain.DisplayEntry) bool {
	return a == b
}
