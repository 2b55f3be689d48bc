package pokeapi

import (
	"net/url"
	"sort"
	"strconv"

	"github.com/Mondacars0165/PokeTest/internal/domain"
)

// MapPage converts a listing response to a domain page.
// requested is the cursor the page was fetched with; it is used to continue
// when the next link is present but cannot be parsed.
func MapPage(resp ListResponse, requested domain.PageCursor) domain.Page {
	entries := make([]domain.ListEntry, len(resp.Results))
	for i, r := range resp.Results {
		entries[i] = domain.ListEntry{Name: r.Name, ReferenceURL: r.URL}
	}

	page := domain.Page{Count: resp.Count, Entries: entries}
	if resp.Next != nil && *resp.Next != "" {
		next, ok := parseCursor(*resp.Next)
		if !ok {
			next = requested.Advance()
		}
		page.Next = &next
	}
	return page
}

// parseCursor reads offset and limit from a listing URL
func parseCursor(raw string) (domain.PageCursor, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return domain.PageCursor{}, false
	}
	q := u.Query()
	offset, err := strconv.Atoi(q.Get("offset"))
	if err != nil || offset < 0 {
		return domain.PageCursor{}, false
	}
	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil || limit <= 0 {
		return domain.PageCursor{}, false
	}
	return domain.PageCursor{Offset: offset, Limit: limit}, true
}

// MapDetail converts a pokemon response to a domain detail record
func MapDetail(resp PokemonResponse) domain.DetailRecord {
	types := append([]TypeSlot(nil), resp.Types...)
	sort.SliceStable(types, func(i, j int) bool { return types[i].Slot < types[j].Slot })

	abilities := append([]AbilitySlot(nil), resp.Abilities...)
	sort.SliceStable(abilities, func(i, j int) bool { return abilities[i].Slot < abilities[j].Slot })

	record := domain.DetailRecord{
		ID:                 resp.ID,
		Name:               resp.Name,
		Height:             resp.Height,
		Weight:             resp.Weight,
		BaseExperience:     resp.BaseExperience,
		SpriteURL:          resp.Sprites.FrontDefault,
		ShinySpriteURL:     resp.Sprites.FrontShiny,
		BackSpriteURL:      resp.Sprites.BackDefault,
		BackShinySpriteURL: resp.Sprites.BackShiny,
		Types:              make([]string, 0, len(types)),
		Abilities:          make([]string, 0, len(abilities)),
		Moves:              make([]string, 0, len(resp.Moves)),
	}
	for _, t := range types {
		record.Types = append(record.Types, t.Type.Name)
	}
	for _, a := range abilities {
		record.Abilities = append(record.Abilities, a.Ability.Name)
	}
	for _, m := range resp.Moves {
		record.Moves = append(record.Moves, m.Move.Name)
	}
	return record
}
