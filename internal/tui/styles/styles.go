package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	DexRed     = lipgloss.Color("#E3350D")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Yellow     = lipgloss.Color("#FBBF24")
	Red        = lipgloss.Color("#EF4444")
)

// Borders
var (
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DexRed)

	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(DexRed)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Yellow)
)

// Badge styles
var (
	BadgeStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(DexRed).
			Padding(0, 1)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DexRed).
			Padding(1, 2).
			Background(SlateDark)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(DexRed)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Spinner style
var (
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(DexRed)
)

// Filter styles
var (
	FilterStyle = lipgloss.NewStyle().
			Foreground(DexRed)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(DexRed).
				Bold(true)
)

// Match highlight styles for filter results
var (
	MatchHighlightStyle = lipgloss.NewStyle().
				Foreground(DexRed).
				Bold(true)

	MatchHighlightSelectedStyle = lipgloss.NewStyle().
					Foreground(DexRed).
					Background(SlateLight).
					Bold(true)
)

// Helper functions

// Truncate truncates a string to the given width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}

// Pad pads a string to the given width
func Pad(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

// RowPart is a part of a row with optional foreground color
type RowPart struct {
	Text       string
	Foreground *lipgloss.Color

	// Positions within Text to render with the match highlight
	Highlight []int
}

// RenderListRow renders a complete list row with uniform background when selected.
// Each part is styled explicitly so ANSI resets inside a part never clear the row background.
func RenderListRow(parts []RowPart, selected bool, width int) string {
	var b strings.Builder
	visibleLen := 0

	for _, part := range parts {
		style := lipgloss.NewStyle()
		switch {
		case part.Foreground != nil:
			style = style.Foreground(*part.Foreground)
		case selected:
			style = style.Foreground(White)
		default:
			style = style.Foreground(LightGray)
		}
		if selected {
			style = style.Background(SlateLight)
		}

		if len(part.Highlight) > 0 {
			b.WriteString(renderHighlighted(part.Text, part.Highlight, style, selected))
		} else {
			b.WriteString(style.Render(part.Text))
		}
		visibleLen += lipgloss.Width(part.Text)
	}

	// Fill to width, leaving one column of margin each side
	pad := lipgloss.NewStyle()
	margin := lipgloss.NewStyle()
	if selected {
		pad = pad.Background(SlateLight)
		margin = margin.Background(SlateLight)
	}
	if n := width - visibleLen - 2; n > 0 {
		b.WriteString(pad.Render(strings.Repeat(" ", n)))
	}

	m := margin.Render(" ")
	return m + b.String() + m
}

// renderHighlighted renders text with the runes at positions styled as matches
func renderHighlighted(text string, positions []int, base lipgloss.Style, selected bool) string {
	match := MatchHighlightStyle
	if selected {
		match = MatchHighlightSelectedStyle
	}

	set := make(map[int]bool, len(positions))
	for _, p := range positions {
		set[p] = true
	}

	// Batch consecutive runes with the same match state
	var out strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); {
		isMatch := set[i]
		j := i
		for j < len(runes) && set[j] == isMatch {
			j++
		}
		chunk := string(runes[i:j])
		if isMatch {
			out.WriteString(match.Render(chunk))
		} else {
			out.WriteString(base.Render(chunk))
		}
		i = j
	}
	return out.String()
}
