// Package workspace owns the set of panes and turns each frame's input into
// an ordered batch of messages that mutate them.
package workspace

import (
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/xonecas/bench/internal/keymap"
	"github.com/xonecas/bench/internal/pane"
	"github.com/xonecas/bench/internal/prompt"
	"github.com/xonecas/bench/internal/store"
)

// Options configure a Manager.
type Options struct {
	Pane      pane.Options
	WheelStep int
	// PaneWidth and PaneHeight size panes opened without explicit geometry.
	PaneWidth, PaneHeight int
	Journal               *store.Journal
}

// Manager is the single owner of every pane and of the workspace-wide
// interaction state. All mutation goes through Apply.
type Manager struct {
	panes map[pane.ID]*pane.Pane
	order []pane.ID // hit-test order; order[0] is on top

	focused    pane.ID
	dragTarget pane.ID
	panOrigin  *Point

	promptFocused bool
	comboReleased bool
	prompt        *prompt.Prompt

	status  string
	opened  int // panes placed so far, for cascading
	keys    keymap.KeyMap
	opts    Options
	journal *store.Journal
}

// New returns an empty workspace.
func New(opts Options) *Manager {
	if opts.WheelStep <= 0 {
		opts.WheelStep = 1
	}
	if opts.PaneWidth <= 0 {
		opts.PaneWidth = 60
	}
	if opts.PaneHeight <= 0 {
		opts.PaneHeight = 16
	}
	return &Manager{
		panes:         make(map[pane.ID]*pane.Pane),
		comboReleased: true,
		prompt:        prompt.New(opts.Pane.Keys),
		keys:          opts.Pane.Keys,
		opts:          opts,
		journal:       opts.Journal,
	}
}

// ---------------------------------------------------------------------------
// Read-only views
// ---------------------------------------------------------------------------

// Panes returns every pane in draw order, bottom first.
func (m *Manager) Panes() []*pane.Pane {
	out := make([]*pane.Pane, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		out = append(out, m.panes[m.order[i]])
	}
	return out
}

// Pane looks up a pane by ID.
func (m *Manager) Pane(id pane.ID) (*pane.Pane, bool) {
	p, ok := m.panes[id]
	return p, ok
}

// Focused returns the focused pane, if any.
func (m *Manager) Focused() (*pane.Pane, bool) {
	if m.focused == "" {
		return nil, false
	}
	return m.Pane(m.focused)
}

// DragTarget returns the armed drag target, or "".
func (m *Manager) DragTarget() pane.ID { return m.dragTarget }

// Panning reports whether a workspace pan gesture is in progress.
func (m *Manager) Panning() bool { return m.panOrigin != nil }

// PromptFocused reports whether the command prompt has focus.
func (m *Manager) PromptFocused() bool { return m.promptFocused }

// PromptText returns the prompt's input and cursor.
func (m *Manager) PromptText() (string, int) { return m.prompt.Text(), m.prompt.Cursor() }

// Status returns the last status message.
func (m *Manager) Status() string { return m.status }

// SetStatus replaces the status message.
func (m *Manager) SetStatus(s string) { m.status = s }

// ---------------------------------------------------------------------------
// Frame processing
// ---------------------------------------------------------------------------

// Step routes one frame of input and applies the result.
func (m *Manager) Step(in Input) {
	m.Apply(m.Route(in)...)
}

// Apply applies msgs in order. Each message observes the effects of the
// ones before it.
func (m *Manager) Apply(msgs ...Msg) {
	for _, msg := range msgs {
		m.apply(msg)
	}
}

func (m *Manager) apply(msg Msg) {
	switch msg := msg.(type) {
	case TogglePrompt:
		m.promptFocused = !m.promptFocused
		m.comboReleased = false
		if !m.promptFocused {
			m.prompt.Reset()
		}

	case ArmLatch:
		m.comboReleased = true

	case PromptKey:
		m.prompt.HandleKey(msg.Key)

	case PromptChar:
		cmd, submitted := m.prompt.HandleChar(msg.Char)
		if submitted {
			m.promptFocused = false
			m.Exec(cmd)
		}

	case Focus:
		m.focus(msg.ID)

	case Scroll:
		if p, ok := m.panes[msg.ID]; ok {
			p.Scroll(msg.DX, msg.DY)
		}

	case MoveWindow:
		if p, ok := m.panes[msg.ID]; ok {
			p.MoveWindow(msg.DX, msg.DY)
		}

	case Pan:
		if m.panOrigin == nil {
			from := msg.From
			m.panOrigin = &from
		}
		for _, p := range m.panes {
			p.MoveWindow(msg.DX, msg.DY)
		}

	case EndPan:
		m.panOrigin = nil

	case SetDragTarget:
		if _, ok := m.panes[msg.ID]; ok || msg.ID == "" {
			m.dragTarget = msg.ID
		}

	case EditKey:
		if p, ok := m.Focused(); ok {
			p.HandleKey(msg.Key)
		}

	case EditChar:
		if p, ok := m.Focused(); ok {
			p.HandleChar(msg.Char)
		}

	default:
		log.Warn().Type("msg", msg).Msg("workspace: unknown message")
	}
}

// focus moves focus to id and raises it to the top of the stack.
func (m *Manager) focus(id pane.ID) {
	if id == "" {
		m.focused = ""
		return
	}
	if _, ok := m.panes[id]; !ok {
		return
	}
	m.focused = id
	if i := slices.Index(m.order, id); i > 0 {
		m.order = slices.Delete(m.order, i, i+1)
		m.order = slices.Insert(m.order, 0, id)
	}
}

// add inserts p on top of the stack and focuses it.
func (m *Manager) add(p *pane.Pane) {
	m.panes[p.ID] = p
	m.order = slices.Insert(m.order, 0, p.ID)
	m.focused = p.ID
}

// remove drops id and every reference to it.
func (m *Manager) remove(id pane.ID) {
	delete(m.panes, id)
	if i := slices.Index(m.order, id); i >= 0 {
		m.order = slices.Delete(m.order, i, i+1)
	}
	if m.focused == id {
		m.focused = ""
	}
	if m.dragTarget == id {
		m.dragTarget = ""
	}
}
