package components

import (
	"fmt"
	"strings"

	"github.com/Mondacars0165/PokeTest/internal/domain"
	"github.com/Mondacars0165/PokeTest/internal/tui/styles"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Layout constants for inspector
const (
	InspectorBorderHeight     = 2
	InspectorScrollIndicators = 2
)

// inspectorContent holds the three-zone layout content
type inspectorContent struct {
	header string // fixed top
	body   string // scrollable middle
	footer string // fixed bottom
}

// Inspector is the detail overlay for a single catalog record
type Inspector struct {
	record     *domain.DetailRecord
	artworkURL string
	keys       DetailKeyMap

	width      int
	height     int
	offset     int // scroll offset
	maxVisible int // max visible lines
}

// NewInspector creates a new inspector component
func NewInspector() Inspector {
	return Inspector{keys: DefaultDetailKeyMap()}
}

// SetRecord shows record; artworkURL is the hashed-name fallback link
func (i *Inspector) SetRecord(record domain.DetailRecord, artworkURL string) {
	i.record = &record
	i.artworkURL = artworkURL
	i.offset = 0
}

// Clear hides the overlay
func (i *Inspector) Clear() {
	i.record = nil
	i.artworkURL = ""
	i.offset = 0
}

// Record returns the displayed record
func (i Inspector) Record() (domain.DetailRecord, bool) {
	if i.record == nil {
		return domain.DetailRecord{}, false
	}
	return *i.record, true
}

// IsVisible returns true if there is a record to display
func (i Inspector) IsVisible() bool {
	return i.record != nil
}

// ImageURL returns the best image to open for the displayed record
func (i Inspector) ImageURL() string {
	if i.record == nil {
		return ""
	}
	if i.record.SpriteURL != "" {
		return i.record.SpriteURL
	}
	return i.artworkURL
}

// SetSize updates the component dimensions
func (i *Inspector) SetSize(width, height int) {
	i.width = width
	i.height = height
	// Border, scroll indicators, title and blank line
	i.maxVisible = height - InspectorBorderHeight - InspectorScrollIndicators - 2
	if i.maxVisible < 1 {
		i.maxVisible = 1
	}
	i.offset = min(i.offset, i.bodyWindow().maxOffset)
}

// Update scrolls the body
func (i Inspector) Update(msg tea.Msg) (Inspector, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || i.record == nil {
		return i, nil
	}
	switch {
	case key.Matches(keyMsg, i.keys.Down):
		if i.offset < i.bodyWindow().maxOffset {
			i.offset++
		}
	case key.Matches(keyMsg, i.keys.Up):
		if i.offset > 0 {
			i.offset--
		}
	}
	return i, nil
}

// bodyWindow is the scrollable part of the layout at the current size
type bodyWindow struct {
	width     int
	header    []string
	body      []string
	footer    []string
	visible   int
	maxOffset int
}

func (i Inspector) bodyWindow() bodyWindow {
	// Border takes 2 chars, leave 1 char safety margin
	contentWidth := max(i.width-3, 10)
	content := i.renderContent(contentWidth)

	w := bodyWindow{
		width:  contentWidth,
		header: splitLines(content.header),
		body:   splitLines(content.body),
		footer: splitLines(content.footer),
	}
	w.visible = max(i.maxVisible-len(w.header)-len(w.footer), 1)
	w.maxOffset = max(len(w.body)-w.visible, 0)
	return w
}

// View renders the component
func (i Inspector) View() string {
	style := styles.ActiveBorder

	win := i.bodyWindow()
	contentWidth := win.width
	headerLines, footerLines, bodyLines := win.header, win.footer, win.body
	availableForBody := win.visible

	titleLine := styles.AccentStyle.Render(styles.Truncate("Detail", contentWidth))

	offset := min(i.offset, win.maxOffset)

	end := min(offset+availableForBody, len(bodyLines))
	visibleBody := bodyLines[offset:end]

	up := " "
	if offset > 0 {
		up = styles.DimStyle.Render("↑ more")
	}
	down := " "
	if end < len(bodyLines) {
		down = styles.DimStyle.Render("↓ more")
	}

	parts := []string{titleLine, ""}
	if len(headerLines) > 0 {
		parts = append(parts, headerLines...)
	}
	parts = append(parts, up)
	parts = append(parts, visibleBody...)
	for j := len(visibleBody); j < availableForBody; j++ {
		parts = append(parts, "")
	}
	parts = append(parts, down)
	if len(footerLines) > 0 {
		parts = append(parts, footerLines...)
	}

	frameW, frameH := style.GetFrameSize()

	return style.
		Width(i.width - frameW).
		Height(i.height - frameH).
		Render(strings.Join(parts, "\n"))
}

func (i Inspector) renderContent(width int) inspectorContent {
	if i.record == nil {
		return inspectorContent{body: styles.DimStyle.Render("Nothing selected")}
	}
	r := *i.record
	return inspectorContent{
		header: renderDetailHeader(r, width),
		body:   renderDetailBody(r, width),
		footer: renderDetailFooter(r, i.artworkURL, width),
	}
}

func renderDetailHeader(r domain.DetailRecord, width int) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(styles.Truncate(fmt.Sprintf("#%d %s", r.ID, r.Title()), width)))
	b.WriteString("\n")

	// Types as badges
	badges := make([]string, 0, len(r.Types))
	for _, t := range r.Types {
		badges = append(badges, styles.BadgeStyle.Render(strings.ToUpper(t)))
	}
	if len(badges) > 0 {
		b.WriteString(strings.Join(badges, " "))
		b.WriteString("\n")
	}

	meta := []string{r.FormattedHeight(), r.FormattedWeight()}
	if r.BaseExperience > 0 {
		meta = append(meta, fmt.Sprintf("%d base exp", r.BaseExperience))
	}
	b.WriteString(styles.DimStyle.Render(strings.Join(meta, " · ")))

	return b.String()
}

func renderDetailBody(r domain.DetailRecord, width int) string {
	var b strings.Builder

	if len(r.Abilities) > 0 {
		b.WriteString(styles.SubtitleStyle.Render("Abilities"))
		b.WriteString("\n")
		b.WriteString(wordWrap(strings.Join(r.Abilities, ", "), width))
		b.WriteString("\n\n")
	}

	if len(r.Moves) > 0 {
		b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("Moves (%d)", len(r.Moves))))
		b.WriteString("\n")
		for _, m := range r.Moves {
			b.WriteString(styles.Truncate("  "+m, width))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderDetailFooter(r domain.DetailRecord, artworkURL string, width int) string {
	var b strings.Builder
	b.WriteString(styles.DimStyle.Render(strings.Repeat("─", width)))
	b.WriteString("\n")

	sprite := r.SpriteURL
	if sprite == "" {
		sprite = "none"
	}
	b.WriteString(styles.DimStyle.Render("sprite  ") + styles.Truncate(sprite, width-8))
	b.WriteString("\n")

	if r.ShinySpriteURL != "" {
		b.WriteString(styles.DimStyle.Render("shiny   ") + styles.Truncate(r.ShinySpriteURL, width-8))
		b.WriteString("\n")
	}

	if artworkURL != "" {
		// Hashed-name link; the identifier is not a catalog number
		b.WriteString(styles.WarningStyle.Render("artwork ") + styles.Truncate(artworkURL, width-8))
		b.WriteString("\n")
		b.WriteString(styles.DimStyle.Render(styles.Truncate("(pseudo-id link, may not resolve)", width)))
	}

	return strings.TrimRight(b.String(), "\n")
}

// splitLines splits s into lines; an empty string has none
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// wordWrap wraps text at word boundaries to fit width
func wordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+lipgloss.Width(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
