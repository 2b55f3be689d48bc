package search

import (
	"strings"

	"github.com/Mondacars0165/PokeTest/internal/domain"
	"github.com/sahilm/fuzzy"
)

// EntryIndex implements sahilm/fuzzy.Source over display entries
type EntryIndex struct {
	entries    []domain.DisplayEntry
	lowerNames []string
}

// NewEntryIndex pre-computes lowercase names for matching
func NewEntryIndex(entries []domain.DisplayEntry) *EntryIndex {
	lower := make([]string, len(entries))
	for i, e := range entries {
		lower[i] = strings.ToLower(e.Name)
	}
	return &EntryIndex{entries: entries, lowerNames: lower}
}

// String returns the lowercase name at index i (implements fuzzy.Source)
func (idx *EntryIndex) String(i int) string { return idx.lowerNames[i] }

// Len returns the number of entries (implements fuzzy.Source)
func (idx *EntryIndex) Len() int { return len(idx.entries) }

// FilterResult is a matched entry with highlight positions
type FilterResult struct {
	Index          int // Position in the unfiltered list
	Entry          domain.DisplayEntry
	MatchedIndexes []int
}

// Filter returns the entries whose names fuzzily match query, best first.
// An empty query matches nothing; callers show the unfiltered list instead.
func Filter(query string, entries []domain.DisplayEntry) []FilterResult {
	query = strings.TrimSpace(query)
	if query == "" || len(entries) == 0 {
		return nil
	}

	idx := NewEntryIndex(entries)
	matches := fuzzy.FindFrom(strings.ToLower(query), idx)

	results := make([]FilterResult, len(matches))
	for i, m := range matches {
		results[i] = FilterResult{
			Index:          m.Index,
			Entry:          entries[m.Index],
			MatchedIndexes: m.MatchedIndexes,
		}
	}
	return results
}
