package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.State {
	case StateHelp:
		// Any key returns
		m.State = StateBrowsing
		if m.Inspector.IsVisible() {
			m.State = StateDetail
		}
		return m, nil

	case StateDetail:
		return m.handleDetailKey(msg)
	}

	// Search bar owns the keyboard while typing
	if m.List.IsFilterTyping() {
		var cmd tea.Cmd
		m.List, cmd = m.List.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Search):
		m.List.ToggleFilter()
		return m, nil

	case key.Matches(msg, Keys.Escape):
		if m.List.IsFiltering() {
			m.List.ClearFilter()
			return m, m.maybePrefetch()
		}
		m.cancelDetail()
		return m, nil

	case key.Matches(msg, Keys.Enter):
		entry, ok := m.List.SelectedEntry()
		if !ok {
			return m, nil
		}
		return m, m.requestDetail(entry)

	case key.Matches(msg, Keys.Random):
		return m, m.requestRandom()
	}

	// Navigation
	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return m, tea.Batch(cmd, m.maybePrefetch())
}

// handleDetailKey handles keys while the detail overlay is shown
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Escape, Keys.Quit):
		m.closeDetail()
		return m, nil

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Open):
		rec, ok := m.Inspector.Record()
		url := m.Inspector.ImageURL()
		if !ok || url == "" || m.Opener == nil {
			return m, nil
		}
		m.logger.Debug("opening sprite", "name", rec.Name, "url", url)
		return m, OpenImageCmd(m.Opener, url)

	case key.Matches(msg, Keys.Random):
		return m, m.requestRandom()
	}

	var cmd tea.Cmd
	m.Inspector, cmd = m.Inspector.Update(msg)
	return m, cmd
}
