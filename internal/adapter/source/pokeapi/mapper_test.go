package pokeapi

import (
	"testing"

	"github.com/Mondacars0165/PokeTest/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestMapPageNext(t *testing.T) {
	requested := domain.PageCursor{Offset: 40, Limit: 20}

	last := MapPage(ListResponse{Count: 60}, requested)
	assert.Nil(t, last.Next)

	empty := MapPage(ListResponse{Next: strPtr("")}, requested)
	assert.Nil(t, empty.Next)

	parsed := MapPage(ListResponse{Next: strPtr("https://pokeapi.co/api/v2/pokemon?offset=60&limit=20")}, requested)
	require.NotNil(t, parsed.Next)
	assert.Equal(t, domain.PageCursor{Offset: 60, Limit: 20}, *parsed.Next)

	garbled := MapPage(ListResponse{Next: strPtr("https://pokeapi.co/api/v2/pokemon?page=4")}, requested)
	require.NotNil(t, garbled.Next)
	assert.Equal(t, domain.PageCursor{Offset: 60, Limit: 20}, *garbled.Next)
}

func TestMapDetailOrdersBySlot(t *testing.T) {
	record := MapDetail(PokemonResponse{
		ID:   6,
		Name: "charizard",
		Types: []TypeSlot{
			{Slot: 2, Type: NamedResource{Name: "flying"}},
			{Slot: 1, Type: NamedResource{Name: "fire"}},
		},
	})

	assert.Equal(t, []string{"fire", "flying"}, record.Types)
	assert.Empty(t, record.Abilities)
	assert.NotNil(t, record.Abilities)
}
