package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	// MaxSuggestions caps the "did you mean" list
	MaxSuggestions = 5

	// maxTypoDistance is the edit distance still considered a typo
	maxTypoDistance = 2
)

// Suggest returns up to MaxSuggestions names close to query, closest first.
// Names containing the query's characters in order rank by their extra
// length; names within a small edit distance catch typos.
func Suggest(query string, names []string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || len(names) == 0 {
		return nil
	}

	best := make(map[string]int)
	consider := func(name string, distance int) {
		if d, ok := best[name]; !ok || distance < d {
			best[name] = distance
		}
	}

	for _, r := range fuzzy.RankFindNormalizedFold(query, names) {
		consider(r.Target, r.Distance)
	}
	for _, name := range names {
		if d := fuzzy.LevenshteinDistance(query, strings.ToLower(name)); d <= maxTypoDistance {
			consider(name, d)
		}
	}

	out := make([]string, 0, len(best))
	for name := range best {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool {
		if best[out[i]] != best[out[j]] {
			return best[out[i]] < best[out[j]]
		}
		return out[i] < out[j]
	})

	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}
