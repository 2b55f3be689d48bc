package tui

import (
	"context"
	"time"

	"github.com/Mondacars0165/PokeTest/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// Command factories for async operations. Each runs off the update loop
// and reports back with a message; none of them touch model state.

// LoadPageCmd fetches the page at cursor and merges it after current
func LoadPageCmd(svc Catalog, current []domain.DisplayEntry, cursor domain.PageCursor, t Ticket, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		result, err := svc.LoadPage(ctx, current, cursor)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading list", Ticket: t}
		}
		return PageLoadedMsg{Ticket: t, Result: result}
	}
}

// SearchCmd looks up query by number or name. entries is the loaded list,
// used for suggestions when the name is not found.
func SearchCmd(svc Catalog, query string, entries []domain.DisplayEntry, t Ticket, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		record, err := svc.Search(ctx, query)
		if err != nil {
			msg := ErrMsg{Err: err, Context: "searching " + query, Ticket: t}
			if domain.IsNotFound(err) {
				msg.Suggestions = svc.Suggest(query, entries)
			}
			return msg
		}
		return DetailLoadedMsg{Ticket: t, Record: record, ArtworkURL: svc.ArtworkURL(record.Name)}
	}
}

// DetailCmd fetches the detail record of a selected row
func DetailCmd(svc Catalog, entry domain.DisplayEntry, t Ticket, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		record, err := svc.Detail(ctx, entry)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading " + entry.Name, Ticket: t}
		}
		return DetailLoadedMsg{Ticket: t, Record: record, ArtworkURL: svc.ArtworkURL(record.Name)}
	}
}

// RandomCmd fetches the detail record of a random loaded entry
func RandomCmd(svc Catalog, entries []domain.DisplayEntry, t Ticket, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		record, err := svc.Random(ctx, entries)
		if err != nil {
			return ErrMsg{Err: err, Context: "random pick", Ticket: t}
		}
		return DetailLoadedMsg{Ticket: t, Record: record, ArtworkURL: svc.ArtworkURL(record.Name)}
	}
}

// OpenImageCmd hands url to the external image viewer
func OpenImageCmd(opener ImageOpener, url string) tea.Cmd {
	return func() tea.Msg {
		if err := opener.Open(url); err != nil {
			return ErrMsg{Err: err, Context: "opening image"}
		}
		return ImageOpenedMsg{URL: url}
	}
}

// TickCmd returns a command that sends a tick after a delay
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClockCmd sends the wall time on the next minute boundary
func ClockCmd() tea.Cmd {
	return tea.Every(time.Minute, func(t time.Time) tea.Msg {
		return ClockMsg{Time: t}
	})
}

// ClearStatusCmd returns a command that clears status id after a delay
func ClearStatusCmd(id uint64, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{ID: id}
	})
}
