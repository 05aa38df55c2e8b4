package tui

import (
	tea "charm.land/bubbletea/v2"
)

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// -- Window resize -------------------------------------------------------
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	// -- Frame ---------------------------------------------------------------
	case tickMsg:
		m.ws.Step(m.in.frame())
		return m, frameTick()

	// -- Paste ---------------------------------------------------------------
	case tea.PasteMsg:
		m.in.paste(msg.Content)

	// -- Mouse ---------------------------------------------------------------
	case tea.MouseMsg:
		m.in.mouse(msg)

	// -- Keyboard ------------------------------------------------------------
	case tea.KeyPressMsg:
		if cmd, handled := m.handleKeyPress(msg); handled {
			return m, cmd
		}
		m.in.keyPress(msg)

	case tea.KeyReleaseMsg:
		m.in.keyRelease(msg)
	}

	return m, nil
}
