package tui

// columnLayout holds calculated column widths for the View
type columnLayout struct {
	listWidth      int
	inspectorWidth int // 0 if not shown
}

// calculateColumnLayout computes column widths based on overlay visibility
func (m Model) calculateColumnLayout(availableWidth int) columnLayout {
	if !m.Inspector.IsVisible() {
		return columnLayout{listWidth: availableWidth}
	}

	listWidth := max(availableWidth*ListColumnPercent/100, MinColumnWidth)
	return columnLayout{
		listWidth:      listWidth,
		inspectorWidth: max(availableWidth-listWidth, MinColumnWidth),
	}
}

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	contentHeight := m.Height - ChromeHeight
	layout := m.calculateColumnLayout(m.Width)

	m.List.SetSize(layout.listWidth, contentHeight)
	m.List.SetFocused(layout.inspectorWidth == 0)
	if layout.inspectorWidth > 0 {
		m.Inspector.SetSize(layout.inspectorWidth, contentHeight)
	}
}
