package sprite

import (
	"testing"

	"github.com/Mondacars0165/PokeTest/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromReference(t *testing.T) {
	url, err := FromReference("https://api.example/v2/pokemon/25/")
	require.NoError(t, err)
	assert.Equal(t, DefaultSpriteBase+"/25.png", url)
}

func TestFromReferenceBoundaries(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		id   string
	}{
		{"minimal two segments", "7/", "7"},
		{"trailing slash", "https://pokeapi.co/api/v2/pokemon/10001/", "10001"},
		{"relative path", "pokemon/1/", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ExtractID(tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.id, id)
		})
	}

	failures := []struct {
		name string
		ref  string
	}{
		{"collection url", "https://api.example/v2/pokemon/"},
		{"no trailing slash", "https://api.example/v2/pokemon/25"},
		{"single segment", "25"},
		{"empty", ""},
		{"empty id segment", "https://api.example/v2/pokemon//"},
		{"lone slash", "/"},
	}
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			url, err := FromReference(tt.ref)
			assert.ErrorIs(t, err, domain.ErrDerivation)
			assert.Empty(t, url)
		})
	}
}

func TestFromName(t *testing.T) {
	assert.Equal(t, "mrmime", cleanName("Mr. Mime"))
	assert.Equal(t, int32(1081726809), PseudoID("Mr. Mime"))
	assert.Equal(t, DefaultArtworkBase+"/1081726809.png", FromName("Mr. Mime"))

	// Deterministic across calls.
	assert.Equal(t, FromName("Porygon-Z"), FromName("Porygon-Z"))
	assert.Equal(t, int32(733570618), PseudoID("Porygon-Z"))
}

func TestPseudoIDIsNonNegative(t *testing.T) {
	for _, name := range []string{"pikachu", "mrmime", "Ho-Oh", "", "ÉÈ!!"} {
		assert.GreaterOrEqual(t, PseudoID(name), int32(0), name)
	}
	assert.Equal(t, int32(1576546625), PseudoID("pikachu"))
	assert.Equal(t, int32(3208480), PseudoID("Ho-Oh"))
	assert.Equal(t, int32(0), PseudoID(""))
}

func TestNewResolverBases(t *testing.T) {
	r := NewResolver("http://sprites.local/", "")
	url, err := r.FromReference("https://pokeapi.co/api/v2/pokemon/1/")
	require.NoError(t, err)
	assert.Equal(t, "http://sprites.local/1.png", url)
	assert.Equal(t, DefaultArtworkBase, r.ArtworkBase)
}
