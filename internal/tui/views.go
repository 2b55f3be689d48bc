package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Mondacars0165/PokeTest/internal/domain"
	"github.com/Mondacars0165/PokeTest/internal/service"
	"github.com/Mondacars0165/PokeTest/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	content := m.List.View()
	if m.Inspector.IsVisible() {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, m.Inspector.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, m.renderFooter())
}

// renderFooter renders the status bar: activity or message on the left,
// clock and help hint on the right
func (m Model) renderFooter() string {
	var left string
	switch {
	case m.StatusMsg != "":
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.DimStyle.Render(m.StatusMsg)
		}
	case m.DetailLoading:
		left = RenderSpinner(m.SpinnerFrame) + " " + styles.DimStyle.Render("Fetching detail...")
	case m.ListLoading:
		left = RenderSpinner(m.SpinnerFrame) + " " + styles.DimStyle.Render("Loading list...")
	case m.Total > 0:
		left = styles.DimStyle.Render(fmt.Sprintf("%d of %d loaded", len(m.Entries), m.Total))
	}

	right := styles.AccentStyle.Render("?") + styles.DimStyle.Render(" help")
	if m.opts.ShowClock {
		right = styles.SubtitleStyle.Render(m.Clock.Format("15:04")) + "  " + right
	}

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		// Not enough space: the clock and hint win
		left = ""
		gap = max(m.Width-lipgloss.Width(right), 0)
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	rows := [][2]string{
		{"j/k", "Up/down"},
		{"g/G", "First/last entry"},
		{"PgUp/PgDn", "Scroll page"},
		{"Ctrl+u/d", "Scroll half page"},
		{"/", "Filter loaded list, enter searches the catalog"},
		{"Enter", "Show detail"},
		{"r", "Random entry"},
		{"o", "Open sprite (in detail)"},
		{"Esc", "Close / cancel"},
		{"q", "Quit"},
		{"?", "This help"},
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(styles.HelpKeyStyle.Render(styles.Pad(r[0], 12)))
		b.WriteString(styles.HelpDescStyle.Render(r[1]))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render("Press any key to return..."))

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(b.String()))
}

// RenderSpinner renders a spinner frame
func RenderSpinner(frame int) string {
	frames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	return styles.SpinnerStyle.Render(frames[frame%len(frames)])
}

// statusForError renders a failed action for the status bar
func statusForError(msg ErrMsg) string {
	var text string
	switch {
	case errors.Is(msg.Err, service.ErrEmptyQuery):
		text = "nothing to search for"
	case errors.Is(msg.Err, service.ErrNothingLoaded):
		text = "no entries loaded yet"
	case domain.IsNotFound(msg.Err):
		text = "not found"
	case errors.Is(msg.Err, domain.ErrTransport):
		text = "catalog is unreachable"
	case errors.Is(msg.Err, domain.ErrMalformed):
		text = "unexpected response from catalog"
	case errors.Is(msg.Err, domain.ErrDerivation):
		text = "entry has no catalog number"
	case domain.StatusCode(msg.Err) != 0:
		text = fmt.Sprintf("catalog returned status %d", domain.StatusCode(msg.Err))
	default:
		text = msg.Err.Error()
	}

	if msg.Context != "" {
		text = msg.Context + ": " + text
	}
	if len(msg.Suggestions) > 0 {
		text += " (did you mean " + strings.Join(msg.Suggestions, ", ") + "?)"
	}
	return text
}
