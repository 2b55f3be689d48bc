package components

import (
	"fmt"
	"testing"

	"github.com/Mondacars0165/PokeTest/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func movesRecord(n int) domain.DetailRecord {
	moves := make([]string, n)
	for i := range moves {
		moves[i] = fmt.Sprintf("move-%02d", i)
	}
	return domain.DetailRecord{ID: 25, Name: "pikachu", Types: []string{"electric"}, Moves: moves}
}

func press(i Inspector, k string, times int) Inspector {
	for range times {
		i, _ = i.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	}
	return i
}

func TestInspectorScrollStopsAtEnd(t *testing.T) {
	i := NewInspector()
	i.SetSize(60, 20)
	i.SetRecord(movesRecord(40), "")

	maxOffset := i.bodyWindow().maxOffset
	require.Positive(t, maxOffset)

	i = press(i, "j", maxOffset+25)
	assert.Equal(t, maxOffset, i.offset)

	// One step up is visible right away
	i = press(i, "k", 1)
	assert.Equal(t, maxOffset-1, i.offset)
}

func TestInspectorScrollShortBody(t *testing.T) {
	i := NewInspector()
	i.SetSize(60, 40)
	i.SetRecord(movesRecord(1), "")

	i = press(i, "j", 5)
	assert.Equal(t, 0, i.offset)
}

func TestInspectorResizeClampsOffset(t *testing.T) {
	i := NewInspector()
	i.SetSize(60, 20)
	i.SetRecord(movesRecord(40), "")
	i = press(i, "j", 100)

	i.SetSize(60, 200)
	assert.Equal(t, 0, i.offset)
}

func TestInspectorHeaderTitle(t *testing.T) {
	i := NewInspector()
	i.SetSize(60, 20)
	i.SetRecord(domain.DetailRecord{ID: 29, Name: "éevee"}, "")

	assert.Contains(t, i.View(), "#29 Éevee")
}
