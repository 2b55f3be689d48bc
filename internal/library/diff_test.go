package library

import (
	"testing"

	"github.com/Mondacars0165/PokeTest/internal/domain"
	"github.com/stretchr/testify/assert"
)

func row(name, image string) domain.DisplayEntry {
	return domain.DisplayEntry{Name: name, ImageURL: image}
}

func kinds(changes []Change) []ChangeKind {
	out := make([]ChangeKind, len(changes))
	for i, c := range changes {
		out[i] = c.Kind
	}
	return out
}

func TestDiffAppend(t *testing.T) {
	prev := []domain.DisplayEntry{row("a", "1"), row("b", "2")}
	next := []domain.DisplayEntry{row("a", "1"), row("b", "2"), row("c", "3")}

	changes := Diff(prev, next)
	assert.Equal(t, []ChangeKind{Keep, Keep, Insert}, kinds(changes))
	assert.Equal(t, Change{Kind: Insert, OldIndex: -1, NewIndex: 2, Entry: row("c", "3")}, changes[2])
	assert.Equal(t, map[int]bool{0: true, 1: true}, Unchanged(changes))
}

func TestDiffUpdateAndReplace(t *testing.T) {
	prev := []domain.DisplayEntry{row("a", "1"), row("b", "2"), row("c", "3")}
	next := []domain.DisplayEntry{row("a", "9"), row("x", "2")}

	changes := Diff(prev, next)
	assert.Equal(t, []ChangeKind{Update, Remove, Insert, Remove}, kinds(changes))
	assert.Equal(t, 1, changes[1].OldIndex)
	assert.Equal(t, 1, changes[2].NewIndex)
	assert.Equal(t, row("c", "3"), changes[3].Entry)
	assert.Empty(t, Unchanged(changes))
}

func TestDiffEmpty(t *testing.T) {
	assert.Empty(t, Diff(nil, nil))
	assert.Equal(t, []ChangeKind{Insert}, kinds(Diff(nil, []domain.DisplayEntry{row("a", "1")})))
}

func TestChangeKindString(t *testing.T) {
	assert.Equal(t, "keep", Keep.String())
	assert.Equal(t, "update", Update.String())
	assert.Equal(t, "insert", Insert.String())
	assert.Equal(t, "remove", Remove.String())
	assert.Equal(t, "unknown", ChangeKind(42).String())
}
