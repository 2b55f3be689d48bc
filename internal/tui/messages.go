package tui

import (
	"time"

	"github.com/Mondacars0165/PokeTest/internal/domain"
	"github.com/Mondacars0165/PokeTest/internal/service"
)

// Message types for the TUI

// ErrMsg reports a failed action
type ErrMsg struct {
	Err     error
	Context string
	Ticket  Ticket

	// Close names from the loaded list when a name search was not found
	Suggestions []string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// PageLoadedMsg carries the display list with one more page merged in
type PageLoadedMsg struct {
	Ticket Ticket
	Result service.PageResult
}

// DetailLoadedMsg carries a detail record for the overlay
type DetailLoadedMsg struct {
	Ticket     Ticket
	Record     domain.DetailRecord
	ArtworkURL string
}

// ImageOpenedMsg signals that an image was handed to the external viewer
type ImageOpenedMsg struct {
	URL string
}

// TickMsg drives the spinner animation
type TickMsg struct{}

// ClockMsg carries the wall time for the footer clock
type ClockMsg struct {
	Time time.Time
}

// ClearStatusMsg clears the status bar if it still shows message ID
type ClearStatusMsg struct {
	ID uint64
}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}
