package tui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/Mondacars0165/PokeTest/internal/domain"
	"github.com/Mondacars0165/PokeTest/internal/service"
	"github.com/Mondacars0165/PokeTest/internal/tui/components"
	tea "github.com/charmbracelet/bubbletea"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateDetail
	StateHelp
)

// Layout proportions
const (
	// List and detail overlay side by side
	ListColumnPercent = 40

	MinColumnWidth = 15

	// Vertical layout: single footer line
	ChromeHeight = 1

	spinnerInterval = 100 * time.Millisecond
)

// Catalog is the service surface the UI drives
type Catalog interface {
	FirstPage() domain.PageCursor
	LoadPage(ctx context.Context, current []domain.DisplayEntry, cursor domain.PageCursor) (service.PageResult, error)
	Search(ctx context.Context, raw string) (domain.DetailRecord, error)
	Detail(ctx context.Context, entry domain.DisplayEntry) (domain.DetailRecord, error)
	Random(ctx context.Context, entries []domain.DisplayEntry) (domain.DetailRecord, error)
	Suggest(query string, entries []domain.DisplayEntry) []string
	ArtworkURL(name string) string
}

// ImageOpener shows an image URL outside the terminal
type ImageOpener interface {
	Open(url string) error
}

// Options tunes the UI
type Options struct {
	// Load the next page once this many rows or fewer remain below the cursor
	PrefetchThreshold int

	// Per-request deadline for catalog calls
	RequestTimeout time.Duration

	ShowClock bool
	Now       func() time.Time
	Logger    *slog.Logger
}

// Model is the main Bubble Tea model for the application.
// Update is the only writer of display state.
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	// Services
	Catalog Catalog
	Opener  ImageOpener

	// UI Components
	List      *components.ListColumn
	Inspector components.Inspector

	// Data
	Entries []domain.DisplayEntry // Current display list, replaced wholesale
	Next    *domain.PageCursor    // nil once the catalog is exhausted
	Total   int                   // Catalog size reported by the last page

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg     string
	StatusIsErr   bool
	ListLoading   bool
	DetailLoading bool
	SpinnerFrame  int
	Clock         time.Time

	seq      Sequencer
	statusID uint64 // identifies the message currently in the status bar
	opts     Options
	logger   *slog.Logger
}

// NewModel creates a new application model
func NewModel(catalog Catalog, opener ImageOpener, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 15 * time.Second
	}
	if opts.PrefetchThreshold < 0 {
		opts.PrefetchThreshold = 0
	}

	list := components.NewListColumn("Catalog")
	list.SetFocused(true)

	first := catalog.FirstPage()
	return Model{
		State:     StateBrowsing,
		Catalog:   catalog,
		Opener:    opener,
		List:      list,
		Inspector: components.NewInspector(),
		Next:      &first,
		Clock:     opts.Now(),
		opts:      opts,
		logger:    opts.Logger,
	}
}

// Init starts the first page load and the background timers
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.firstPageCmd(), TickCmd(spinnerInterval)}
	if m.opts.ShowClock {
		cmds = append(cmds, ClockCmd())
	}
	return tea.Batch(cmds...)
}

// firstPageCmd asks Update to issue the first page request; Init has a
// value receiver and cannot record the ticket itself.
func (m Model) firstPageCmd() tea.Cmd {
	return func() tea.Msg { return loadFirstPageMsg{} }
}

// loadFirstPageMsg asks Update to issue the first page request
type loadFirstPageMsg struct{}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case loadFirstPageMsg:
		return m, m.requestNextPage()

	case components.SearchSubmittedMsg:
		return m, m.requestSearch(msg.Query)

	case PageLoadedMsg:
		if !m.seq.IsCurrent(msg.Ticket) {
			m.logger.Debug("dropping stale page", "seq", msg.Ticket.Seq)
			return m, nil
		}
		m.ListLoading = false
		m.Entries = msg.Result.Entries
		m.Next = msg.Result.Next
		if msg.Result.Added == 0 {
			// An empty page ends the listing even if it links onward
			m.Next = nil
		}
		m.Total = msg.Result.Count
		m.List.SetEntries(m.Entries)
		// A short first page may already leave the cursor near the end
		return m, m.maybePrefetch()

	case DetailLoadedMsg:
		if !m.seq.IsCurrent(msg.Ticket) {
			m.logger.Debug("dropping stale detail", "seq", msg.Ticket.Seq, "name", msg.Record.Name)
			return m, nil
		}
		m.DetailLoading = false
		m.Inspector.SetRecord(msg.Record, msg.ArtworkURL)
		m.State = StateDetail
		m.updateLayout()
		return m, nil

	case ErrMsg:
		if msg.Ticket.Seq != 0 && !m.seq.IsCurrent(msg.Ticket) {
			m.logger.Debug("dropping stale error", "class", msg.Ticket.Class.String(), "error", msg.Err)
			return m, nil
		}
		if msg.Ticket.Seq != 0 {
			switch msg.Ticket.Class {
			case ClassList:
				m.ListLoading = false
				m.List.SetLoading(false)
			case ClassDetail:
				m.DetailLoading = false
			}
		}
		m.logger.Error("action failed", "context", msg.Context, "kind", domain.Kind(msg.Err), "error", msg.Err)
		return m, m.setStatus(statusForError(msg), true, 5*time.Second)

	case ImageOpenedMsg:
		return m, m.setStatus("Opened "+msg.URL, false, 3*time.Second)

	case StatusMsg:
		return m, m.setStatus(msg.Message, msg.IsError, 3*time.Second)

	case ClearStatusMsg:
		if msg.ID != m.statusID {
			// A newer message owns the status bar
			return m, nil
		}
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil

	case TickMsg:
		m.SpinnerFrame++
		m.List.SetSpinnerFrame(m.SpinnerFrame)
		return m, TickCmd(spinnerInterval)

	case ClockMsg:
		m.Clock = msg.Time
		return m, ClockCmd()
	}

	return m, nil
}

// setStatus shows text in the status bar and schedules its removal
func (m *Model) setStatus(text string, isErr bool, ttl time.Duration) tea.Cmd {
	m.statusID++
	m.StatusMsg = text
	m.StatusIsErr = isErr
	return ClearStatusCmd(m.statusID, ttl)
}

// requestNextPage issues a list request for the next cursor
func (m *Model) requestNextPage() tea.Cmd {
	if m.Next == nil || m.ListLoading {
		return nil
	}
	t := m.seq.Next(ClassList)
	m.ListLoading = true
	m.List.SetLoading(true)
	m.logger.Debug("requesting page", "offset", m.Next.Offset, "limit", m.Next.Limit, "seq", t.Seq)
	return LoadPageCmd(m.Catalog, m.Entries, *m.Next, t, m.opts.RequestTimeout)
}

// maybePrefetch requests the next page when the cursor nears the end of the list
func (m *Model) maybePrefetch() tea.Cmd {
	if m.List.IsFiltering() || len(m.Entries) == 0 {
		return nil
	}
	if m.List.RowsBelow() > m.opts.PrefetchThreshold {
		return nil
	}
	return m.requestNextPage()
}

func (m *Model) requestSearch(query string) tea.Cmd {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	t := m.seq.Next(ClassDetail)
	m.DetailLoading = true
	return SearchCmd(m.Catalog, query, m.Entries, t, m.opts.RequestTimeout)
}

func (m *Model) requestDetail(entry domain.DisplayEntry) tea.Cmd {
	t := m.seq.Next(ClassDetail)
	m.DetailLoading = true
	return DetailCmd(m.Catalog, entry, t, m.opts.RequestTimeout)
}

func (m *Model) requestRandom() tea.Cmd {
	t := m.seq.Next(ClassDetail)
	m.DetailLoading = true
	return RandomCmd(m.Catalog, m.Entries, t, m.opts.RequestTimeout)
}

// cancelDetail supersedes any in-flight detail request
func (m *Model) cancelDetail() {
	if m.DetailLoading {
		m.seq.Next(ClassDetail)
		m.DetailLoading = false
	}
}

func (m *Model) closeDetail() {
	m.cancelDetail()
	m.Inspector.Clear()
	m.State = StateBrowsing
	m.updateLayout()
}
