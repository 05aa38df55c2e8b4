package highlight

import (
	"errors"
	"strings"
	"testing"
)

func TestDetectLanguage(t *testing.T) {
	cases := map[string]string{
		"main.go":         "go",
		"foo.py":          "python",
		"DIR/README.MD":   "markdown",
		"Makefile":        "make",
		"notes":           PlainText,
		"weird.xyz":       PlainText,
		"":                PlainText,
		"/a/b/Dockerfile": "docker",
	}
	for path, want := range cases {
		if got := DetectLanguage(path); got != want {
			t.Errorf("DetectLanguage(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestChromaPlainText(t *testing.T) {
	events, err := Chroma{}.Highlight(PlainText, "hello\nworld")
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 || events[0] != Range(0, 11) {
		t.Fatalf("got %+v, want a single unstyled range", events)
	}
}

func TestChromaGoEventsAreWellFormed(t *testing.T) {
	src := "package main\n\n// hi\nfunc main() { x := \"s\" }"
	events, err := Chroma{}.Highlight("go", src)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) == 0 {
		t.Fatal("no events")
	}

	prevEnd := 0
	open := false
	sawKeyword := false
	var active string
	for i, ev := range events {
		switch ev.Kind {
		case StyleStart:
			if open {
				t.Fatalf("event %d: nested start", i)
			}
			open = true
			active = ev.Style
		case StyleEnd:
			if !open {
				t.Fatalf("event %d: end without start", i)
			}
			open = false
			active = ""
		case Source:
			if ev.Start != prevEnd {
				t.Fatalf("event %d: gap or overlap: start %d, previous end %d", i, ev.Start, prevEnd)
			}
			if ev.End > len(src) || ev.Start >= ev.End {
				t.Fatalf("event %d: bad range [%d,%d)", i, ev.Start, ev.End)
			}
			if strings.HasPrefix(active, "Keyword") && src[ev.Start:ev.End] == "package" {
				sawKeyword = true
			}
			prevEnd = ev.End
		}
	}
	if prevEnd != len(src) {
		t.Fatalf("ranges end at %d, want %d", prevEnd, len(src))
	}
	if !sawKeyword {
		t.Fatal("expected `package` to be emitted under a Keyword style")
	}
}

func TestRouterDispatch(t *testing.T) {
	errBoom := errors.New("boom")
	r := NewRouter(HighlighterFunc(func(lang, text string) ([]Event, error) {
		return []Event{Range(0, 1)}, nil
	}))
	r.Register("go", HighlighterFunc(func(lang, text string) ([]Event, error) {
		return nil, errBoom
	}))

	if _, err := r.Highlight("go", "x"); !errors.Is(err, errBoom) {
		t.Fatalf("go: err = %v, want boom", err)
	}
	events, err := r.Highlight("python", "x")
	if err != nil || len(events) != 1 {
		t.Fatalf("python: %v %v", events, err)
	}
}

func TestThemeColor(t *testing.T) {
	th := NewTheme(DefaultTheme)
	c, ok := th.Color("Keyword")
	if !ok {
		t.Fatal("Keyword should be colored in the default theme")
	}
	if len(c) != 7 || c[0] != '#' {
		t.Fatalf("color %q is not #rrggbb", c)
	}
	if _, ok := th.Color("NotAToken"); ok {
		t.Fatal("unknown style names must not resolve")
	}
	if th.Palette.Fg == "" || th.Palette.Bg == "" {
		t.Fatalf("palette incomplete: %+v", th.Palette)
	}
}

func TestLerpHex(t *testing.T) {
	if got := lerpHex("#000000", "#ffffff", 0.5); got != "#808080" {
		t.Fatalf("got %s", got)
	}
	if got := lerpHex("#102030", "#102030", 0.3); got != "#102030" {
		t.Fatalf("got %s", got)
	}
}
