package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/xonecas/bench/internal/delta"
	"github.com/xonecas/bench/internal/fileio"
	"github.com/xonecas/bench/internal/pane"
	"github.com/xonecas/bench/internal/prompt"
	"github.com/xonecas/bench/internal/store"
)

// Status messages.
const (
	StatusNoActivePane = "No active pane"
	StatusNoFileName   = "No file name, use: save <path>"
)

const (
	helpTitle   = "[help]"
	recentFiles = 10

	cascadeOriginX = 2
	cascadeOriginY = 2
	cascadeStepX   = 4
	cascadeStepY   = 2
	cascadeSlots   = 6
)

// Exec runs a prompt command. A nil command does nothing.
func (m *Manager) Exec(cmd prompt.Command) {
	switch cmd := cmd.(type) {
	case nil:
	case prompt.OpenFile:
		m.Open(cmd.Path)
	case prompt.CloseActive:
		m.Close()
	case prompt.SaveActive:
		m.Save()
	case prompt.SaveAs:
		m.SaveAs(cmd.Path)
	case prompt.OpenHelp:
		m.Help()
	case prompt.Status:
		m.status = cmd.Text
	default:
		log.Warn().Type("cmd", cmd).Msg("workspace: unknown command")
	}
}

// nextRect returns the cascaded default window for a new pane.
func (m *Manager) nextRect() pane.Rect {
	slot := m.opened % cascadeSlots
	return pane.Rect{
		X: cascadeOriginX + slot*cascadeStepX,
		Y: cascadeOriginY + slot*cascadeStepY,
		W: m.opts.PaneWidth,
		H: m.opts.PaneHeight,
	}
}

// Open reads path into a new focused pane placed by cascade.
func (m *Manager) Open(path string) (pane.ID, bool) {
	return m.OpenAt(path, m.nextRect())
}

// OpenAt reads path into a new focused pane at r. A zero width or height
// falls back to the default pane size. A missing file opens an empty pane
// bound to path; any other failure leaves a status message and no pane.
func (m *Manager) OpenAt(path string, r pane.Rect) (pane.ID, bool) {
	if r.W <= 0 {
		r.W = m.opts.PaneWidth
	}
	if r.H <= 0 {
		r.H = m.opts.PaneHeight
	}

	expanded, err := fileio.Expand(path)
	if err != nil {
		m.fail("open", path, err)
		return "", false
	}
	path = expanded

	lines, err := fileio.Read(path)
	newFile := errors.Is(err, fs.ErrNotExist)
	if err != nil && !newFile {
		m.fail("open", path, err)
		return "", false
	}

	p := pane.New(pane.NewID(), path, lines, r, m.opts.Pane)
	m.add(p)
	m.opened++
	m.journal.RecordOpen(path)

	if newFile {
		m.status = "new file: " + path
	} else {
		m.status = fmt.Sprintf("opened %s (%d lines)", path, p.LineCount())
	}
	log.Info().Str("path", path).Str("pane", string(p.ID)).Bool("new", newFile).Msg("opened pane")
	return p.ID, true
}

// Close removes the focused pane.
func (m *Manager) Close() {
	p, ok := m.Focused()
	if !ok {
		m.status = StatusNoActivePane
		return
	}
	m.remove(p.ID)
	m.status = "closed " + p.Title
	log.Info().Str("pane", string(p.ID)).Str("title", p.Title).Msg("closed pane")
}

// Save writes the focused pane to its own path.
func (m *Manager) Save() {
	p, ok := m.Focused()
	if !ok {
		m.status = StatusNoActivePane
		return
	}
	if p.Path == "" {
		m.status = StatusNoFileName
		return
	}
	m.write(p, p.Path)
}

// SaveAs writes the focused pane to path and rebinds it there.
func (m *Manager) SaveAs(path string) {
	p, ok := m.Focused()
	if !ok {
		m.status = StatusNoActivePane
		return
	}
	expanded, err := fileio.Expand(path)
	if err != nil {
		m.fail("save", path, err)
		return
	}
	if m.write(p, expanded) {
		p.SetPath(expanded)
	}
}

// write stores p's text at path and reports the change on the status line.
func (m *Manager) write(p *pane.Pane, path string) bool {
	before, existed, err := fileio.ReadString(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("could not read previous content")
	}
	text := p.Text()
	if err := fileio.Write(path, text); err != nil {
		m.fail("save", path, err)
		return false
	}

	st := delta.Compute(path, before, text+"\n", existed)
	m.journal.RecordSave(path, st.Added, st.Removed)
	if st.Changed() {
		m.status = fmt.Sprintf("saved %s (%s)", path, st)
	} else {
		m.status = fmt.Sprintf("saved %s (no changes)", path)
	}
	log.Info().Str("path", path).Int("added", st.Added).Int("removed", st.Removed).Msg("saved pane")
	return true
}

// Help opens a pane listing keys, commands and recently used files.
func (m *Manager) Help() {
	p := pane.New(pane.NewID(), "", m.helpLines(), m.nextRect(), m.opts.Pane)
	p.SetTitle(helpTitle)
	m.add(p)
	m.opened++
	m.status = "help"
}

func (m *Manager) helpLines() []string {
	lines := []string{"bench", "", "Keys"}
	for _, b := range m.keys.Bindings() {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("  %-12s %s", h.Key, h.Desc))
	}

	toggle := strings.Join(m.keys.Prompt.Keys(), "/")
	lines = append(lines, "", "Commands ("+toggle+" opens the prompt)")
	for _, c := range [][2]string{
		{"open <path>", "open a file in a new pane"},
		{"close", "close the focused pane"},
		{"save", "save the focused pane"},
		{"save <path>", "save the focused pane as <path>"},
		{"help", "show this pane"},
	} {
		lines = append(lines, fmt.Sprintf("  %-12s %s", c[0], c[1]))
	}

	lines = append(lines, "", "Mouse",
		"  click        focus a pane",
		"  drag title   move a pane",
		"  drag body    pan the workspace",
		"  wheel        scroll the pane under the pointer",
	)

	recent := m.journal.Recent(recentFiles)
	if len(recent) > 0 {
		lines = append(lines, "", "Recent files")
		for _, e := range recent {
			what := e.Kind
			if e.Kind == store.KindSave {
				what = fmt.Sprintf("save +%d -%d", e.Added, e.Removed)
			}
			lines = append(lines, fmt.Sprintf("  %s  %-14s %s", e.When.Format("2006-01-02 15:04"), what, e.Path))
		}
	}
	return lines
}

// fail reports a command failure on the status line.
func (m *Manager) fail(op, path string, err error) {
	m.status = fmt.Sprintf("%s %s: %v", op, path, err)
	log.Warn().Err(err).Str("op", op).Str("path", path).Msg("command failed")
}
