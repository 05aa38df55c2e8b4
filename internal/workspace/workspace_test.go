package workspace

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/xonecas/bench/internal/highlight"
	"github.com/xonecas/bench/internal/keymap"
	"github.com/xonecas/bench/internal/pane"
	"github.com/xonecas/bench/internal/store"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return New(Options{
		Pane: pane.Options{
			Highlighter: highlight.Chroma{},
			Theme:       highlight.NewTheme(highlight.DefaultTheme),
			Keys:        keymap.Default(""),
			LineHeight:  1,
		},
		WheelStep:  3,
		PaneWidth:  40,
		PaneHeight: 10,
	})
}

// openAt opens a fresh file in the test's temp dir at r.
func openAt(t *testing.T, m *Manager, name string, r pane.Rect, content string) *pane.Pane {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	id, ok := m.OpenAt(path, r)
	if !ok {
		t.Fatalf("OpenAt(%s): %s", name, m.Status())
	}
	p, _ := m.Pane(id)
	return p
}

func chars(s string) []Input {
	var out []Input
	for _, c := range s {
		out = append(out, Input{Char: c, HasChar: true})
	}
	return out
}

func steps(m *Manager, ins ...Input) {
	for _, in := range ins {
		m.Step(in)
	}
}

func togglePrompt() Input {
	return Input{Pressed: []string{keymap.DefaultPromptToggle}, Held: map[string]bool{keymap.DefaultPromptToggle: true}}
}

func focusedID(m *Manager) pane.ID {
	if p, ok := m.Focused(); ok {
		return p.ID
	}
	return ""
}

func TestClickRoutesTypingToOnePane(t *testing.T) {
	m := newTestManager(t)
	a := openAt(t, m, "a.txt", pane.Rect{X: 20, Y: 5, W: 100, H: 10}, "")
	b := openAt(t, m, "b.txt", pane.Rect{X: 500, Y: 5, W: 100, H: 10}, "")

	if focusedID(m) != b.ID {
		t.Fatalf("newest pane should have focus")
	}

	steps(m, Input{Pointer: Point{30, 8}, ButtonPressed: true, ButtonHeld: true})
	if focusedID(m) != a.ID {
		t.Fatalf("click inside A focused %q", focusedID(m))
	}
	steps(m, chars("hi")...)
	steps(m, Input{Pressed: []string{"left"}}, Input{Char: 'x', HasChar: true})

	if got := a.Text(); got != "hxi" {
		t.Errorf("A = %q, want %q", got, "hxi")
	}
	if got := b.Text(); got != "" {
		t.Errorf("B = %q, want empty", got)
	}
}

func TestFocusAppliesBeforeTypingInSameFrame(t *testing.T) {
	m := newTestManager(t)
	a := openAt(t, m, "a.txt", pane.Rect{X: 20, Y: 5, W: 100, H: 10}, "")
	b := openAt(t, m, "b.txt", pane.Rect{X: 500, Y: 5, W: 100, H: 10}, "")

	steps(m, Input{Pointer: Point{25, 6}, ButtonPressed: true, ButtonHeld: true, Char: 'q', HasChar: true})
	if a.Text() != "q" || b.Text() != "" {
		t.Fatalf("A = %q, B = %q", a.Text(), b.Text())
	}
}

func TestPressOutsideClearsFocus(t *testing.T) {
	m := newTestManager(t)
	a := openAt(t, m, "a.txt", pane.Rect{X: 20, Y: 5, W: 10, H: 10}, "")

	steps(m, Input{Pointer: Point{200, 200}, ButtonPressed: true, ButtonHeld: true})
	if _, ok := m.Focused(); ok {
		t.Fatal("focus should be cleared")
	}
	steps(m, Input{Pointer: Point{200, 200}}, Input{Char: 'z', HasChar: true})
	if a.Text() != "" {
		t.Fatalf("unfocused pane received input: %q", a.Text())
	}
}

func TestPromptToggleIsEdgeTriggered(t *testing.T) {
	m := newTestManager(t)

	msgs := m.Route(togglePrompt())
	if !reflect.DeepEqual(msgs, []Msg{TogglePrompt{}}) {
		t.Fatalf("first frame msgs = %#v", msgs)
	}
	m.Apply(msgs...)
	if !m.PromptFocused() {
		t.Fatal("prompt should be focused")
	}

	// Still held: no second toggle.
	steps(m, togglePrompt(), togglePrompt())
	if !m.PromptFocused() {
		t.Fatal("held combo re-toggled the prompt")
	}

	// Released: latch re-arms, then the next press closes the prompt.
	if msgs := m.Route(Input{}); !reflect.DeepEqual(msgs, []Msg{ArmLatch{}}) {
		t.Fatalf("release msgs = %#v", msgs)
	}
	steps(m, Input{}, togglePrompt())
	if m.PromptFocused() {
		t.Fatal("second press should close the prompt")
	}
}

func TestPromptFocusStopsFrameInput(t *testing.T) {
	m := newTestManager(t)
	a := openAt(t, m, "a.txt", pane.Rect{X: 0, Y: 1, W: 40, H: 10}, "")

	in := togglePrompt()
	in.Char, in.HasChar = 'k', true
	in.Pointer, in.ButtonPressed, in.ButtonHeld = Point{200, 200}, true, true
	steps(m, in)

	if !m.PromptFocused() {
		t.Fatal("prompt not focused")
	}
	if text, _ := m.PromptText(); text != "" || a.Text() != "" {
		t.Fatalf("toggle frame leaked input: prompt %q pane %q", text, a.Text())
	}
	if focusedID(m) != a.ID {
		t.Fatal("toggle frame should not change focus")
	}
}

func TestPromptConsumesInputAndRunsCommand(t *testing.T) {
	m := newTestManager(t)
	a := openAt(t, m, "a.txt", pane.Rect{X: 0, Y: 1, W: 40, H: 10}, "")
	target := filepath.Join(t.TempDir(), "foo.py")

	steps(m, togglePrompt(), Input{})
	steps(m, chars("open "+target)...)
	if a.Text() != "" {
		t.Fatalf("pane received prompt input: %q", a.Text())
	}
	if text, cur := m.PromptText(); text != "open "+target || cur != len(text) {
		t.Fatalf("prompt = %q at %d", text, cur)
	}

	steps(m, Input{Char: '\r', HasChar: true})
	if m.PromptFocused() {
		t.Fatal("submit should relinquish prompt focus")
	}
	if text, cur := m.PromptText(); text != "" || cur != 0 {
		t.Fatalf("prompt not reset: %q at %d", text, cur)
	}
	p, ok := m.Focused()
	if !ok || p.Path != target || p.Language != "python" {
		t.Fatalf("open did not focus new pane: %+v", p)
	}
	if !strings.HasPrefix(m.Status(), "new file") {
		t.Fatalf("status %q", m.Status())
	}
	if len(m.Panes()) != 2 {
		t.Fatalf("%d panes, want 2", len(m.Panes()))
	}
}

func TestInvalidCommandStatus(t *testing.T) {
	m := newTestManager(t)
	steps(m, togglePrompt(), Input{})
	steps(m, chars("frobnicate\r")...)
	if m.Status() != "Invalid command" {
		t.Fatalf("status %q", m.Status())
	}
	if m.PromptFocused() {
		t.Fatal("prompt should close after a failed parse")
	}
}

func TestWheelScrollsHoveredPane(t *testing.T) {
	m := newTestManager(t)
	content := strings.Repeat("line\n", 50)
	a := openAt(t, m, "a.txt", pane.Rect{X: 0, Y: 1, W: 20, H: 10}, content)
	b := openAt(t, m, "b.txt", pane.Rect{X: 30, Y: 1, W: 20, H: 10}, content)

	steps(m, Input{Pointer: Point{5, 5}, Wheel: Point{Y: 2}})
	if a.Offset().Y != 6 || b.Offset().Y != 0 {
		t.Fatalf("offsets A=%d B=%d, want 6 and 0", a.Offset().Y, b.Offset().Y)
	}

	steps(m, Input{Pointer: Point{5, 5}, Wheel: Point{Y: -100}})
	if a.Offset().Y != 0 {
		t.Fatalf("offset %d, want clamp to 0", a.Offset().Y)
	}

	steps(m, Input{Pointer: Point{100, 100}, Wheel: Point{Y: 1}})
	if a.Offset().Y != 0 || b.Offset().Y != 0 {
		t.Fatal("wheel outside any pane scrolled something")
	}
}

func TestTitleDragMovesOnePane(t *testing.T) {
	m := newTestManager(t)
	a := openAt(t, m, "a.txt", pane.Rect{X: 10, Y: 5, W: 20, H: 5}, "")
	b := openAt(t, m, "b.txt", pane.Rect{X: 50, Y: 5, W: 20, H: 5}, "")

	title := Point{12, 4}
	steps(m, Input{Pointer: title})
	if m.DragTarget() != a.ID {
		t.Fatalf("hovering the title bar should arm A, got %q", m.DragTarget())
	}

	steps(m,
		Input{Pointer: title, ButtonPressed: true, ButtonHeld: true},
		Input{Pointer: Point{15, 6}, PointerDelta: Point{3, 2}, ButtonHeld: true, Char: 'x', HasChar: true},
	)
	if a.Window != (pane.Rect{X: 13, Y: 7, W: 20, H: 5}) {
		t.Fatalf("A window %+v", a.Window)
	}
	if b.Window != (pane.Rect{X: 50, Y: 5, W: 20, H: 5}) {
		t.Fatalf("B moved: %+v", b.Window)
	}
	if a.Text() != "" {
		t.Fatalf("typing during a drag reached the pane: %q", a.Text())
	}
	if m.Panning() {
		t.Fatal("title drag should not pan")
	}

	// Release over the body: target disarms.
	steps(m, Input{Pointer: Point{15, 9}})
	if m.DragTarget() != "" {
		t.Fatalf("drag target %q after release over body", m.DragTarget())
	}
}

func TestBodyDragPansWorkspace(t *testing.T) {
	m := newTestManager(t)
	a := openAt(t, m, "a.txt", pane.Rect{X: 10, Y: 5, W: 20, H: 5}, "")
	b := openAt(t, m, "b.txt", pane.Rect{X: 50, Y: 5, W: 20, H: 5}, "")

	steps(m,
		Input{Pointer: Point{12, 6}},
		Input{Pointer: Point{12, 6}, ButtonPressed: true, ButtonHeld: true},
		Input{Pointer: Point{8, 7}, PointerDelta: Point{-4, 1}, ButtonHeld: true},
	)
	if a.Window.X != 6 || a.Window.Y != 6 || b.Window.X != 46 || b.Window.Y != 6 {
		t.Fatalf("pan: A %+v B %+v", a.Window, b.Window)
	}
	if !m.Panning() {
		t.Fatal("pan anchor not set")
	}

	steps(m, Input{Pointer: Point{8, 7}})
	if m.Panning() {
		t.Fatal("pan anchor not cleared on release")
	}
}

func TestFocusRaisesPane(t *testing.T) {
	m := newTestManager(t)
	a := openAt(t, m, "a.txt", pane.Rect{X: 0, Y: 1, W: 20, H: 10}, "")
	b := openAt(t, m, "b.txt", pane.Rect{X: 10, Y: 3, W: 20, H: 10}, "")

	// Overlap at (15, 5): B is on top.
	steps(m, Input{Pointer: Point{15, 5}, ButtonPressed: true, ButtonHeld: true})
	if focusedID(m) != b.ID {
		t.Fatal("overlap should hit the top pane")
	}

	steps(m, Input{Pointer: Point{2, 2}, ButtonPressed: true, ButtonHeld: true})
	panes := m.Panes()
	if focusedID(m) != a.ID || panes[len(panes)-1].ID != a.ID {
		t.Fatal("focused pane should be drawn last")
	}
	steps(m, Input{Pointer: Point{15, 5}, ButtonPressed: true, ButtonHeld: true})
	if focusedID(m) != a.ID {
		t.Fatal("raised pane should win the overlap")
	}
}

func TestRouteDoesNotMutate(t *testing.T) {
	m := newTestManager(t)
	openAt(t, m, "a.txt", pane.Rect{X: 0, Y: 1, W: 20, H: 10}, "")
	in := Input{Pointer: Point{2, 0}, Pressed: []string{"down"}, Char: 'a', HasChar: true}
	first := m.Route(in)
	second := m.Route(in)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Route changed state: %#v vs %#v", first, second)
	}
}

func TestSaveAndSaveAs(t *testing.T) {
	m := newTestManager(t)
	p := openAt(t, m, "notes.txt", pane.Rect{X: 0, Y: 1, W: 20, H: 10}, "one\n")

	steps(m, Input{Pressed: []string{"right", "right", "right"}})
	steps(m, chars("\rtwo")...)
	m.Save()
	data, err := os.ReadFile(p.Path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "one\ntwo\n" {
		t.Fatalf("file %q", data)
	}
	if !strings.Contains(m.Status(), "+1 -0") {
		t.Fatalf("status %q", m.Status())
	}

	other := filepath.Join(t.TempDir(), "copy.go")
	m.SaveAs(other)
	if p.Path != other || p.Title != other || p.Language != "go" {
		t.Fatalf("save as did not rebind: %+v", p)
	}
	if !strings.Contains(m.Status(), "new, +2") {
		t.Fatalf("status %q", m.Status())
	}

	m.Save()
	if want := "saved " + other + " (no changes)"; m.Status() != want {
		t.Fatalf("status %q, want %q", m.Status(), want)
	}
}

func TestCommandsWithoutActivePane(t *testing.T) {
	m := newTestManager(t)
	for _, run := range []func(){m.Close, m.Save, func() { m.SaveAs("x") }} {
		m.SetStatus("")
		run()
		if m.Status() != StatusNoActivePane {
			t.Fatalf("status %q", m.Status())
		}
	}
}

func TestSaveUntitled(t *testing.T) {
	m := newTestManager(t)
	m.Help()
	m.Save()
	if m.Status() != StatusNoFileName {
		t.Fatalf("status %q", m.Status())
	}
}

func TestCloseForgetsPane(t *testing.T) {
	m := newTestManager(t)
	a := openAt(t, m, "a.txt", pane.Rect{X: 10, Y: 5, W: 20, H: 5}, "")
	steps(m, Input{Pointer: Point{12, 4}})
	m.Close()
	if _, ok := m.Pane(a.ID); ok {
		t.Fatal("pane still present")
	}
	if _, ok := m.Focused(); ok || m.DragTarget() != "" {
		t.Fatal("stale focus or drag target after close")
	}
	if len(m.Panes()) != 0 {
		t.Fatal("closed pane still drawn")
	}
}

func TestOpenDirectoryFails(t *testing.T) {
	m := newTestManager(t)
	if _, ok := m.Open(t.TempDir()); ok {
		t.Fatal("opening a directory should fail")
	}
	if !strings.Contains(m.Status(), "is a directory") || len(m.Panes()) != 0 {
		t.Fatalf("status %q, panes %d", m.Status(), len(m.Panes()))
	}
}

func TestOpenCascades(t *testing.T) {
	m := newTestManager(t)
	dir := t.TempDir()
	first, _ := m.Open(filepath.Join(dir, "1"))
	second, _ := m.Open(filepath.Join(dir, "2"))
	p1, _ := m.Pane(first)
	p2, _ := m.Pane(second)
	if p1.Window == p2.Window {
		t.Fatal("panes opened on top of each other")
	}
	if p1.Window.W != 40 || p1.Window.H != 10 {
		t.Fatalf("default size %+v", p1.Window)
	}
}

func TestHelpListsRecentFiles(t *testing.T) {
	j, err := store.Open(filepath.Join(t.TempDir(), "journal.db"), time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { j.Close() })

	m := newTestManager(t)
	m.journal = j
	p := openAt(t, m, "recent.txt", pane.Rect{X: 0, Y: 1, W: 20, H: 10}, "")
	m.Save()

	m.Help()
	help, ok := m.Focused()
	if !ok || help.Title != "[help]" {
		t.Fatal("help pane not focused")
	}
	text := help.Text()
	for _, want := range []string{"ctrl+p", "save <path>", "Recent files", p.Path} {
		if !strings.Contains(text, want) {
			t.Errorf("help missing %q", want)
		}
	}
}
