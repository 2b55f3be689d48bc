package library

import "github.com/Mondacars0165/PokeTest/internal/domain"

// ChangeKind describes what happened to a row between two lists
type ChangeKind int

const (
	Keep   ChangeKind = iota // same row, same contents
	Update                   // same row, contents changed
	Insert                   // row only in the new list
	Remove                   // row only in the old list
)

func (k ChangeKind) String() string {
	switch k {
	case Keep:
		return "keep"
	case Update:
		return "update"
	case Insert:
		return "insert"
	case Remove:
		return "remove"
	default:
		return "unknown"
	}
}

// Change is a single row-level difference.
// OldIndex is -1 for inserts and NewIndex is -1 for removes.
type Change struct {
	Kind     ChangeKind
	OldIndex int
	NewIndex int
	Entry    domain.DisplayEntry // The new entry, or the old one for Remove
}

// Diff compares two lists position by position using name identity.
// For append-only lists this yields a run of Keep followed by Inserts.
func Diff(prev, next []domain.DisplayEntry) []Change {
	n := max(len(prev), len(next))
	changes := make([]Change, 0, n)

	for i := 0; i < n; i++ {
		switch {
		case i >= len(prev):
			changes = append(changes, Change{Kind: Insert, OldIndex: -1, NewIndex: i, Entry: next[i]})
		case i >= len(next):
			changes = append(changes, Change{Kind: Remove, OldIndex: i, NewIndex: -1, Entry: prev[i]})
		case !SameEntry(prev[i], next[i]):
			changes = append(changes,
				Change{Kind: Remove, OldIndex: i, NewIndex: -1, Entry: prev[i]},
				Change{Kind: Insert, OldIndex: -1, NewIndex: i, Entry: next[i]},
			)
		case SameContents(prev[i], next[i]):
			changes = append(changes, Change{Kind: Keep, OldIndex: i, NewIndex: i, Entry: next[i]})
		default:
			changes = append(changes, Change{Kind: Update, OldIndex: i, NewIndex: i, Entry: next[i]})
		}
	}
	return changes
}

// Unchanged returns the new-list indexes whose rows can be reused as rendered
func Unchanged(changes []Change) map[int]bool {
	keep := make(map[int]bool)
	for _, c := range changes {
		if c.Kind == Keep {
			keep[c.NewIndex] = true
		}
	}
	return keep
}
