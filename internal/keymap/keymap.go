// Package keymap names the keys the editor reacts to. Keys are bubbletea
// keystroke strings such as "up", "tab" or "ctrl+p".
package keymap

import (
	"slices"

	"charm.land/bubbles/v2/key"
)

// DefaultPromptToggle opens and closes the command prompt.
const DefaultPromptToggle = "ctrl+p"

// KeyMap holds every binding. Editing keys that arrive as characters
// (enter, backspace) are listed for help only.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Indent key.Binding
	Enter  key.Binding
	Delete key.Binding
	Prompt key.Binding
	Quit   key.Binding
}

// Default returns the stock bindings with the prompt on promptToggle.
func Default(promptToggle string) KeyMap {
	if promptToggle == "" {
		promptToggle = DefaultPromptToggle
	}
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "cursor up")),
		Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "cursor down")),
		Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "cursor left")),
		Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "cursor right")),
		Indent: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent four spaces")),
		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "split line / run command")),
		Delete: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete / join lines")),
		Prompt: key.NewBinding(key.WithKeys(promptToggle), key.WithHelp(promptToggle, "toggle command prompt")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// Matches reports whether keystroke k triggers any of the bindings.
func Matches(k string, bindings ...key.Binding) bool {
	for _, b := range bindings {
		if b.Enabled() && slices.Contains(b.Keys(), k) {
			return true
		}
	}
	return false
}

// Bindings lists every binding in help order.
func (km KeyMap) Bindings() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Left, km.Right, km.Indent, km.Enter, km.Delete, km.Prompt, km.Quit}
}
