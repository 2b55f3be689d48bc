package search

import (
	"testing"

	"github.com/Mondacars0165/PokeTest/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries(names ...string) []domain.DisplayEntry {
	out := make([]domain.DisplayEntry, len(names))
	for i, n := range names {
		out[i] = domain.DisplayEntry{Name: n}
	}
	return out
}

func TestFilter(t *testing.T) {
	list := entries("bulbasaur", "pikachu", "raichu", "pichu")

	results := Filter("pika", list)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Index)
	assert.Equal(t, "pikachu", results[0].Entry.Name)
	assert.Equal(t, []int{0, 1, 2, 3}, results[0].MatchedIndexes)

	var names []string
	for _, r := range Filter("CHU", list) {
		names = append(names, r.Entry.Name)
	}
	assert.ElementsMatch(t, []string{"pikachu", "raichu", "pichu"}, names)
}

func TestFilterEmpty(t *testing.T) {
	assert.Nil(t, Filter("", entries("pikachu")))
	assert.Nil(t, Filter("   ", entries("pikachu")))
	assert.Nil(t, Filter("pika", nil))
	assert.Empty(t, Filter("zzz", entries("pikachu")))
}

func TestSuggest(t *testing.T) {
	names := []string{"bulbasaur", "pikachu", "pichu", "raichu"}

	got := Suggest("pikachuu", names)
	require.NotEmpty(t, got)
	assert.Equal(t, "pikachu", got[0])

	assert.Equal(t, []string{"pichu", "raichu", "pikachu"}, Suggest("chu", names))
	assert.Nil(t, Suggest("", names))
	assert.Nil(t, Suggest("pika", nil))
}

func TestSuggestCapsResults(t *testing.T) {
	names := []string{"aa", "ab", "ac", "ad", "ae", "af", "ag"}
	assert.Len(t, Suggest("a", names), MaxSuggestions)
}
