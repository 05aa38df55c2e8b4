package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// ---------------------------------------------------------------------------
// ELM messages
// ---------------------------------------------------------------------------

// tickMsg drives the 60fps frame loop (~16ms). Input collected since the
// previous tick is routed to the workspace as one batch.
type tickMsg time.Time

// ---------------------------------------------------------------------------
// ELM commands
// ---------------------------------------------------------------------------

// frameTick returns a command that fires a tickMsg after ~16ms (~60fps).
func frameTick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
