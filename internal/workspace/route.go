package workspace

import "github.com/xonecas/bench/internal/pane"

// Route turns one frame of input into messages. It does not mutate the
// manager; the precedence is:
//
//  1. prompt toggle combo (edge triggered by the latch)
//  2. latch re-arm once the combo is released
//  3. prompt focus swallows every key and character
//  4. pointer press focuses the hovered pane, wheel scrolls it
//  5. button drag moves the drag target or pans the workspace; with the
//     button up, the drag target follows the title bar under the pointer
//  6. keys and the character go to the focused pane unless dragging
func (m *Manager) Route(in Input) []Msg {
	var msgs []Msg

	promptFocused := m.promptFocused
	comboHeld := in.held(m.keys.Prompt)
	switch {
	case comboHeld && m.comboReleased:
		msgs = append(msgs, TogglePrompt{})
		promptFocused = !promptFocused
		if promptFocused {
			return msgs
		}
	case !m.comboReleased && !comboHeld:
		msgs = append(msgs, ArmLatch{})
	}

	if promptFocused {
		for _, k := range in.Pressed {
			msgs = append(msgs, PromptKey{Key: k})
		}
		if in.HasChar {
			msgs = append(msgs, PromptChar{Char: in.Char})
		}
		return msgs
	}

	hasFocus := m.focused != ""
	hovered, hovering := m.hitTest(in.Pointer)
	if in.ButtonPressed {
		if hovering {
			msgs = append(msgs, Focus{ID: hovered})
		} else {
			msgs = append(msgs, Focus{})
		}
		hasFocus = hovering
	}
	if hovering && !in.Wheel.IsZero() {
		step := m.opts.WheelStep
		msgs = append(msgs, Scroll{ID: hovered, DX: in.Wheel.X * step, DY: in.Wheel.Y * step})
	}

	dragging := in.ButtonHeld && !in.PointerDelta.IsZero()
	if dragging {
		d := in.PointerDelta
		if m.dragTarget != "" {
			msgs = append(msgs, MoveWindow{ID: m.dragTarget, DX: d.X, DY: d.Y})
		} else {
			msgs = append(msgs, Pan{From: in.Pointer.Sub(d), DX: d.X, DY: d.Y})
		}
	}
	if !in.ButtonHeld {
		if target, _ := m.titleHit(in.Pointer); target != m.dragTarget {
			msgs = append(msgs, SetDragTarget{ID: target})
		}
		if m.panOrigin != nil {
			msgs = append(msgs, EndPan{})
		}
	}

	if hasFocus && !dragging {
		for _, k := range in.Pressed {
			msgs = append(msgs, EditKey{Key: k})
		}
		if in.HasChar {
			msgs = append(msgs, EditChar{Char: in.Char})
		}
	}
	return msgs
}

// hitTest returns the topmost pane whose body or title bar holds pt.
func (m *Manager) hitTest(pt Point) (pane.ID, bool) {
	for _, id := range m.order {
		if m.panes[id].Contains(pt.X, pt.Y) {
			return id, true
		}
	}
	return "", false
}

// titleHit returns the topmost pane under pt if pt is on its title bar.
func (m *Manager) titleHit(pt Point) (pane.ID, bool) {
	id, ok := m.hitTest(pt)
	if !ok || !m.panes[id].TitleBar().Contains(pt.X, pt.Y) {
		return "", false
	}
	return id, true
}
