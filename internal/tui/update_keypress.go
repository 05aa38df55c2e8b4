package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/xonecas/bench/internal/keymap"
)

// handleKeyPress processes keys the TUI owns itself. Everything else is
// collected for the next frame.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	if keymap.Matches(msg.Keystroke(), m.keys.Quit) {
		return tea.Quit, true
	}
	return nil, false
}
