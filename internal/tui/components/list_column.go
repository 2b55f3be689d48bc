package components

import (
	"fmt"
	"strings"

	"github.com/Mondacars0165/PokeTest/internal/domain"
	"github.com/Mondacars0165/PokeTest/internal/library"
	"github.com/Mondacars0165/PokeTest/internal/search"
	"github.com/Mondacars0165/PokeTest/internal/tui/styles"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Spinner frames for loading animation
var listColumnSpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Layout constants for list columns
const (
	// Border adds 1 char on each side
	BorderWidth  = 2
	BorderHeight = 2

	// Scroll indicators ("↑ more" and "↓ more") each take 1 line
	ScrollIndicatorLines = 2
)

// SearchSubmittedMsg is emitted when the user presses enter in the search bar
type SearchSubmittedMsg struct {
	Query string
}

// rowKey identifies a cached rendered row
type rowKey struct {
	index    int
	selected bool
}

// ListColumn is the scrollable catalog list. Typing in its search bar
// filters the loaded entries locally; enter submits the query remotely.
type ListColumn struct {
	entries []domain.DisplayEntry

	// Selection
	cursor     int
	offset     int
	maxVisible int

	// Dimensions
	width   int
	height  int
	focused bool

	title string
	keys  ListColumnKeyMap

	// Loading state
	loading      bool
	spinnerFrame int

	// Rendered rows of the unfiltered list, keyed by entry index.
	// Entries kept across SetEntries reuse their rows.
	rows      map[rowKey]string
	rowsWidth int

	// Filter state
	filterActive bool
	filterInput  textinput.Model
	filterQuery  string
	filtered     []search.FilterResult
}

// NewListColumn creates an empty list column with the given title
func NewListColumn(title string) *ListColumn {
	ti := textinput.New()
	ti.Placeholder = "name or number..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle
	ti.CharLimit = 64

	return &ListColumn{
		title:       title,
		keys:        DefaultListColumnKeyMap(),
		filterInput: ti,
		rows:        make(map[rowKey]string),
	}
}

// SetEntries replaces the displayed list. Rows that did not change keep
// their rendered form; the cursor stays on the same position.
func (c *ListColumn) SetEntries(entries []domain.DisplayEntry) {
	keep := library.Unchanged(library.Diff(c.entries, entries))
	for k := range c.rows {
		if !keep[k.index] {
			delete(c.rows, k)
		}
	}

	c.entries = entries
	c.loading = false
	if c.filterActive && c.filterQuery != "" {
		c.filtered = search.Filter(c.filterQuery, c.entries)
	}
	c.clampCursor()
}

// Entries returns the unfiltered list
func (c *ListColumn) Entries() []domain.DisplayEntry {
	return c.entries
}

func (c *ListColumn) Update(msg tea.Msg) (*ListColumn, tea.Cmd) {
	if !c.focused {
		return c, nil
	}

	// Search bar has the keyboard while typing
	if c.filterActive && c.filterInput.Focused() {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(keyMsg, c.keys.Escape):
				c.clearFilter()
				return c, nil
			case key.Matches(keyMsg, c.keys.Enter):
				query := strings.TrimSpace(c.filterInput.Value())
				c.filterInput.Blur()
				if query == "" {
					c.clearFilter()
					return c, nil
				}
				return c, func() tea.Msg { return SearchSubmittedMsg{Query: query} }
			case keyMsg.String() == "backspace" && c.filterInput.Value() == "":
				c.clearFilter()
				return c, nil
			}
		}

		var cmd tea.Cmd
		c.filterInput, cmd = c.filterInput.Update(msg)
		c.applyFilter()
		return c, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	if c.filterActive {
		switch {
		case key.Matches(keyMsg, c.keys.Escape):
			c.clearFilter()
			return c, nil
		case key.Matches(keyMsg, c.keys.Filter):
			c.filterInput.Focus()
			return c, nil
		}
	}

	count := c.ItemCount()
	if count == 0 {
		return c, nil
	}

	switch {
	case key.Matches(keyMsg, c.keys.Down):
		if c.cursor < count-1 {
			c.cursor++
		}
	case key.Matches(keyMsg, c.keys.Up):
		if c.cursor > 0 {
			c.cursor--
		}
	case key.Matches(keyMsg, c.keys.Home):
		c.cursor = 0
	case key.Matches(keyMsg, c.keys.End):
		c.cursor = count - 1
	case key.Matches(keyMsg, c.keys.HalfDown):
		c.cursor += c.maxVisible / 2
	case key.Matches(keyMsg, c.keys.HalfUp):
		c.cursor -= c.maxVisible / 2
	case key.Matches(keyMsg, c.keys.PageDown):
		c.cursor += c.maxVisible
	case key.Matches(keyMsg, c.keys.PageUp):
		c.cursor -= c.maxVisible
	}
	c.clampCursor()

	return c, nil
}

func (c *ListColumn) View() string {
	style := styles.InactiveBorder
	if c.focused {
		style = styles.ActiveBorder
	}

	content := c.renderContent()

	// Subtract frame size so total rendered size equals c.width x c.height
	frameW, frameH := style.GetFrameSize()

	return style.
		Width(c.width - frameW).
		Height(c.height - frameH).
		Render(content)
}

func (c *ListColumn) SetSize(width, height int) {
	if width != c.width {
		c.rows = make(map[rowKey]string)
	}
	c.width = width
	c.height = height
	c.recalcMaxVisible()
	c.ensureVisible()
}

func (c *ListColumn) SetFocused(focused bool) {
	c.focused = focused
}

func (c *ListColumn) SetLoading(loading bool) {
	c.loading = loading
}

func (c *ListColumn) SetSpinnerFrame(frame int) {
	c.spinnerFrame = frame
}

// SelectedEntry returns the entry under the cursor
func (c *ListColumn) SelectedEntry() (domain.DisplayEntry, bool) {
	count := c.ItemCount()
	if count == 0 || c.cursor >= count {
		return domain.DisplayEntry{}, false
	}
	return c.entries[c.mapIndex(c.cursor)], true
}

// ItemCount returns the number of visible rows (after filtering)
func (c *ListColumn) ItemCount() int {
	if c.filtered != nil || (c.filterActive && c.filterQuery != "") {
		return len(c.filtered)
	}
	return len(c.entries)
}

// RowsBelow returns how many rows are left below the cursor
func (c *ListColumn) RowsBelow() int {
	n := c.ItemCount() - 1 - c.cursor
	if n < 0 {
		return 0
	}
	return n
}

// ToggleFilter opens the search bar
func (c *ListColumn) ToggleFilter() {
	c.filterActive = true
	c.filterInput.Focus()
	c.recalcMaxVisible()
}

// IsFiltering returns true if the search bar is open
func (c *ListColumn) IsFiltering() bool {
	return c.filterActive
}

// IsFilterTyping returns true if the search bar has the keyboard
func (c *ListColumn) IsFilterTyping() bool {
	return c.filterActive && c.filterInput.Focused()
}

// ClearFilter closes the search bar and shows all entries
func (c *ListColumn) ClearFilter() {
	c.clearFilter()
}

// Internal methods

func (c *ListColumn) recalcMaxVisible() {
	// Interior minus title and scroll indicators
	c.maxVisible = c.height - BorderHeight - ScrollIndicatorLines - 1
	if c.filterActive {
		c.maxVisible--
	}
	if c.maxVisible < 1 {
		c.maxVisible = 1
	}
}

func (c *ListColumn) clampCursor() {
	count := c.ItemCount()
	if c.cursor >= count {
		c.cursor = count - 1
	}
	if c.cursor < 0 {
		c.cursor = 0
	}
	c.ensureVisible()
}

func (c *ListColumn) ensureVisible() {
	if c.maxVisible <= 0 {
		return
	}
	if c.cursor < c.offset {
		c.offset = c.cursor
	}
	if c.cursor >= c.offset+c.maxVisible {
		c.offset = c.cursor - c.maxVisible + 1
	}
}

func (c *ListColumn) clearFilter() {
	c.filterActive = false
	c.filterQuery = ""
	c.filtered = nil
	c.filterInput.SetValue("")
	c.filterInput.Blur()
	c.recalcMaxVisible()
	c.clampCursor()
}

func (c *ListColumn) applyFilter() {
	query := c.filterInput.Value()
	if query == c.filterQuery {
		return
	}
	c.filterQuery = query
	c.filtered = search.Filter(query, c.entries)

	// Reset cursor to first match
	c.cursor = 0
	c.offset = 0
}

func (c *ListColumn) mapIndex(i int) int {
	if c.filtered != nil && i < len(c.filtered) {
		return c.filtered[i].Index
	}
	return i
}

// Rendering

func (c *ListColumn) renderContent() string {
	itemWidth := c.width - BorderWidth
	if itemWidth < 10 {
		itemWidth = 10
	}

	title := c.title
	if len(c.entries) > 0 {
		title = fmt.Sprintf("%s (%d)", c.title, len(c.entries))
	}
	titleLine := styles.AccentStyle.Render(styles.Truncate(title, itemWidth))

	count := c.ItemCount()
	if count == 0 {
		msg := "No entries"
		switch {
		case c.loading:
			msg = listColumnSpinnerFrames[c.spinnerFrame%len(listColumnSpinnerFrames)] + " Loading..."
		case c.filterActive && c.filterQuery != "":
			msg = "No matches, press enter to search the catalog"
		}
		content := titleLine + "\n \n" + styles.DimStyle.Render(msg) + "\n "
		if c.filterActive {
			content += "\n" + c.renderFilterBar()
		}
		return content
	}

	end := c.offset + c.maxVisible
	if end > count {
		end = count
	}

	lines := make([]string, 0, end-c.offset)
	for i := c.offset; i < end; i++ {
		lines = append(lines, c.renderRow(i, i == c.cursor, itemWidth))
	}

	// Always reserve the indicator lines to prevent layout shifts
	header := " "
	if c.offset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	footer := " "
	switch {
	case end < count:
		footer = styles.DimStyle.Render("↓ more")
	case c.loading:
		footer = styles.DimStyle.Render(listColumnSpinnerFrames[c.spinnerFrame%len(listColumnSpinnerFrames)] + " loading more...")
	}

	content := titleLine + "\n" + header + "\n" + strings.Join(lines, "\n") + "\n" + footer
	if c.filterActive {
		content += "\n" + c.renderFilterBar()
	}
	return content
}

func (c *ListColumn) renderRow(i int, selected bool, width int) string {
	if c.filtered != nil {
		// Highlight positions change per query; filtered rows are not cached
		r := c.filtered[i]
		return renderEntryRow(r.Entry, r.MatchedIndexes, selected, width)
	}

	if width != c.rowsWidth {
		c.rows = make(map[rowKey]string)
		c.rowsWidth = width
	}
	k := rowKey{index: i, selected: selected}
	if row, ok := c.rows[k]; ok {
		return row
	}
	row := renderEntryRow(c.entries[i], nil, selected, width)
	c.rows[k] = row
	return row
}

func renderEntryRow(entry domain.DisplayEntry, matched []int, selected bool, width int) string {
	number := "   ?"
	if id := entryNumber(entry); id != "" {
		number = fmt.Sprintf("%4s", id)
	}
	numberFg := styles.DimGray

	// Available: width - number(4) - space(1) - margins(2)
	available := width - 7
	if available < 5 {
		available = 5
	}
	name := styles.Truncate(entry.Name, available)

	// Highlight indexes past the truncation point are dropped with the text
	var highlight []int
	for _, p := range matched {
		if p < len(name) {
			highlight = append(highlight, p)
		}
	}

	parts := []styles.RowPart{
		{Text: number, Foreground: &numberFg},
		{Text: " "},
		{Text: name, Highlight: highlight},
	}
	return styles.RenderListRow(parts, selected, width)
}

// entryNumber returns the catalog number shown in front of a row
func entryNumber(entry domain.DisplayEntry) string {
	// ImageURL is {base}/{id}.png
	base := entry.ImageURL[strings.LastIndex(entry.ImageURL, "/")+1:]
	return strings.TrimSuffix(base, ".png")
}

func (c *ListColumn) renderFilterBar() string {
	input := c.filterInput.View()
	if c.filterQuery == "" {
		return input
	}
	return input + styles.DimStyle.Render(fmt.Sprintf(" [%d/%d]", c.ItemCount(), len(c.entries)))
}
