package workspace

import "github.com/xonecas/bench/internal/pane"

// Msg is one intent produced by Route and consumed by Apply.
type Msg any

// TogglePrompt flips prompt focus and disarms the combo latch.
type TogglePrompt struct{}

// ArmLatch re-arms the combo latch once the toggle combo is released.
type ArmLatch struct{}

// PromptKey forwards a non-character key to the prompt.
type PromptKey struct{ Key string }

// PromptChar forwards a character to the prompt. A carriage return submits
// the line and runs the resulting command.
type PromptChar struct{ Char rune }

// Focus moves keyboard focus to ID, or clears it when ID is empty.
type Focus struct{ ID pane.ID }

// Scroll scrolls one pane's viewport.
type Scroll struct {
	ID     pane.ID
	DX, DY int
}

// MoveWindow drags one pane's window rectangle.
type MoveWindow struct {
	ID     pane.ID
	DX, DY int
}

// Pan drags every pane's window rectangle. From is where the pointer was
// when the gesture began this frame.
type Pan struct {
	From   Point
	DX, DY int
}

// EndPan clears the pan anchor after the button is released.
type EndPan struct{}

// SetDragTarget arms (or with an empty ID, disarms) single-pane dragging.
type SetDragTarget struct{ ID pane.ID }

// EditKey forwards a non-character key to the focused pane.
type EditKey struct{ Key string }

// EditChar forwards a character to the focused pane.
type EditChar struct{ Char rune }
