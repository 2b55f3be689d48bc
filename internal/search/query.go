package search

import "strconv"

// QueryKind identifies which detail endpoint a query is dispatched to
type QueryKind int

const (
	ByName QueryKind = iota
	ByID
)

func (k QueryKind) String() string {
	switch k {
	case ByID:
		return "id"
	default:
		return "name"
	}
}

// Query is a classified free-text search
type Query struct {
	Kind QueryKind
	ID   int    // Set when Kind == ByID
	Name string // Set when Kind == ByName
}

// Classify decides whether raw input addresses an entry by ID or by name.
// Only base-10 integers strictly greater than zero are IDs; everything else,
// including "", "0" and negative numbers, is passed through as a name.
func Classify(query string) Query {
	if id, err := strconv.Atoi(query); err == nil && id > 0 {
		return Query{Kind: ByID, ID: id}
	}
	return Query{Kind: ByName, Name: query}
}

// String returns the endpoint segment for the query
func (q Query) String() string {
	if q.Kind == ByID {
		return strconv.Itoa(q.ID)
	}
	return q.Name
}
