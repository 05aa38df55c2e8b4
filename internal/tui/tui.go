// Package tui drives the workspace from a bubbletea program: it collects
// terminal input into per-frame batches and draws the panes.
package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/xonecas/bench/internal/highlight"
	"github.com/xonecas/bench/internal/keymap"
	"github.com/xonecas/bench/internal/workspace"
)

// statusRows is the number of rows below the workspace.
const statusRows = 1

// Model is the application model.
type Model struct {
	width  int
	height int

	ws     *workspace.Manager
	in     *collector
	keys   keymap.KeyMap
	colors colors
}

// New creates the TUI model over an already populated workspace.
func New(ws *workspace.Manager, keys keymap.KeyMap, theme highlight.Theme) Model {
	return Model{
		ws:     ws,
		in:     newCollector(),
		keys:   keys,
		colors: newColors(theme.Palette),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameTick()
}
