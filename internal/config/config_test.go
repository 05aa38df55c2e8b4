package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xonecas/bench/internal/highlight"
	"github.com/xonecas/bench/internal/keymap"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BENCH_THEME", "")
	t.Setenv("BENCH_LOG_LEVEL", "")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.UI.SyntaxThemeOrDefault(); got != highlight.DefaultTheme {
		t.Errorf("theme %q", got)
	}
	if cfg.UI.LineHeightOrDefault() != 1 || cfg.UI.WheelStepOrDefault() != 3 {
		t.Errorf("ui defaults %+v", cfg.UI)
	}
	if cfg.Keys.PromptToggleOrDefault() != keymap.DefaultPromptToggle {
		t.Errorf("prompt toggle %q", cfg.Keys.PromptToggleOrDefault())
	}
	if cfg.Highlight.EngineOrDefault() != EngineChroma {
		t.Errorf("engine %q", cfg.Highlight.EngineOrDefault())
	}
	if w, h := cfg.Pane.SizeOrDefault(); w != 60 || h != 16 {
		t.Errorf("pane size %dx%d", w, h)
	}
	if cfg.Log.LevelOrDefault() != "info" {
		t.Errorf("log level %q", cfg.Log.LevelOrDefault())
	}
	if cfg.Journal.RetentionOrDefault() != 30*24*time.Hour {
		t.Errorf("retention %v", cfg.Journal.RetentionOrDefault())
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("BENCH_THEME", "")
	t.Setenv("BENCH_LOG_LEVEL", "")
	path := writeConfig(t, `
[ui]
syntax_theme = "monokai"
line_height = 2

[keys]
prompt_toggle = "ctrl+o"

[highlight]
engine = "treesitter"

[[panes]]
path = "main.go"
x = 4
y = 2

[[panes]]
path = "README.md"
x = 70
width = 40

[journal]
disabled = true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.SyntaxTheme != "monokai" || cfg.UI.LineHeightOrDefault() != 2 {
		t.Errorf("ui %+v", cfg.UI)
	}
	if cfg.Keys.PromptToggleOrDefault() != "ctrl+o" {
		t.Errorf("keys %+v", cfg.Keys)
	}
	if cfg.Highlight.EngineOrDefault() != EngineTreeSitter {
		t.Errorf("engine %q", cfg.Highlight.Engine)
	}
	if len(cfg.Panes) != 2 || cfg.Panes[0].Path != "main.go" || cfg.Panes[1].Width != 40 {
		t.Errorf("panes %+v", cfg.Panes)
	}
	if !cfg.Journal.Disabled {
		t.Error("journal should be disabled")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BENCH_THEME", "dracula")
	t.Setenv("BENCH_LOG_LEVEL", "debug")
	path := writeConfig(t, "[ui]\nsyntax_theme = \"monokai\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.SyntaxTheme != "dracula" || cfg.Log.Level != "debug" {
		t.Errorf("overrides not applied: %+v %+v", cfg.UI, cfg.Log)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Setenv("BENCH_THEME", "")
	t.Setenv("BENCH_LOG_LEVEL", "")
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Load(writeConfig(t, "[ui\n")); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		UI:        UIConfig{SyntaxTheme: "no-such-style", LineHeight: 9, WheelStep: -1},
		Highlight: HighlightConfig{Engine: "vim"},
		Pane:      PaneConfig{Width: -1},
		Panes:     []InitialPane{{Path: "a", Height: -2}},
		Log:       LogConfig{Level: "loud"},
		Journal:   JournalConfig{RetentionDays: -1},
	}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	for _, want := range []string{
		"ui.syntax_theme", "ui.line_height", "ui.wheel_step", "highlight.engine",
		"pane size", "panes[0]", "log.level", "journal.retention_days",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error missing %q:\n%v", want, err)
		}
	}

	if err := (&Config{}).Validate(); err != nil {
		t.Errorf("zero config invalid: %v", err)
	}
}
