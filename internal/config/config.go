// Package config handles configuration loading from TOML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/rs/zerolog"

	"github.com/xonecas/bench/internal/highlight"
	"github.com/xonecas/bench/internal/keymap"
)

// Highlighter engines.
const (
	EngineChroma     = "chroma"
	EngineTreeSitter = "treesitter"
)

// Config is the root configuration structure.
type Config struct {
	UI        UIConfig        `toml:"ui"`
	Keys      KeysConfig      `toml:"keys"`
	Highlight HighlightConfig `toml:"highlight"`
	Pane      PaneConfig      `toml:"pane"`
	Panes     []InitialPane   `toml:"panes"`
	Log       LogConfig       `toml:"log"`
	Journal   JournalConfig   `toml:"journal"`
}

// UIConfig holds user-interface settings.
type UIConfig struct {
	// SyntaxTheme is the Chroma style used for glyph colors. Pane chrome
	// colors are derived from it via highlight.ThemePalette.
	SyntaxTheme string `toml:"syntax_theme"`
	// LineHeight is the number of terminal rows per buffer line.
	LineHeight int `toml:"line_height"`
	// WheelStep is the number of rows scrolled per wheel notch.
	WheelStep int `toml:"wheel_step"`
}

// SyntaxThemeOrDefault returns the configured syntax theme or highlight.DefaultTheme.
func (u UIConfig) SyntaxThemeOrDefault() string {
	if u.SyntaxTheme == "" {
		return highlight.DefaultTheme
	}
	return u.SyntaxTheme
}

// LineHeightOrDefault returns the configured line height or 1.
func (u UIConfig) LineHeightOrDefault() int {
	if u.LineHeight <= 0 {
		return 1
	}
	return u.LineHeight
}

// WheelStepOrDefault returns the configured wheel step or 3.
func (u UIConfig) WheelStepOrDefault() int {
	if u.WheelStep <= 0 {
		return 3
	}
	return u.WheelStep
}

// KeysConfig holds rebindable keys.
type KeysConfig struct {
	PromptToggle string `toml:"prompt_toggle"`
}

// PromptToggleOrDefault returns the prompt toggle keystroke.
func (k KeysConfig) PromptToggleOrDefault() string {
	if k.PromptToggle == "" {
		return keymap.DefaultPromptToggle
	}
	return k.PromptToggle
}

// HighlightConfig selects the highlighter used for Go sources.
type HighlightConfig struct {
	Engine string `toml:"engine"`
}

// EngineOrDefault returns the configured engine or EngineChroma.
func (h HighlightConfig) EngineOrDefault() string {
	if h.Engine == "" {
		return EngineChroma
	}
	return h.Engine
}

// PaneConfig holds the default size of new panes.
type PaneConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// SizeOrDefault returns the default pane width and height.
func (p PaneConfig) SizeOrDefault() (int, int) {
	w, h := p.Width, p.Height
	if w <= 0 {
		w = 60
	}
	if h <= 0 {
		h = 16
	}
	return w, h
}

// InitialPane is a pane opened at startup. Zero sizes fall back to [pane].
type InitialPane struct {
	Path   string `toml:"path"`
	X      int    `toml:"x"`
	Y      int    `toml:"y"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// LevelOrDefault returns the configured level or "info".
func (l LogConfig) LevelOrDefault() string {
	if l.Level == "" {
		return "info"
	}
	return l.Level
}

// JournalConfig controls the recent-files journal.
type JournalConfig struct {
	Path          string `toml:"path"`
	Disabled      bool   `toml:"disabled"`
	RetentionDays int    `toml:"retention_days"`
}

// RetentionOrDefault returns how long journal entries are kept (30 days if unset).
func (j JournalConfig) RetentionOrDefault() time.Duration {
	days := j.RetentionDays
	if days <= 0 {
		days = 30
	}
	return time.Duration(days) * 24 * time.Hour
}

// Load reads configuration from a TOML file and applies environment
// variable overrides. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	var errs []error

	if c.UI.SyntaxTheme != "" {
		if _, ok := styles.Registry[c.UI.SyntaxTheme]; !ok {
			errs = append(errs, fmt.Errorf("ui.syntax_theme=%q is not a known chroma style", c.UI.SyntaxTheme))
		}
	}
	if c.UI.LineHeight < 0 || c.UI.LineHeight > 8 {
		errs = append(errs, fmt.Errorf("ui.line_height=%d must be between 1 and 8", c.UI.LineHeight))
	}
	if c.UI.WheelStep < 0 {
		errs = append(errs, fmt.Errorf("ui.wheel_step=%d must not be negative", c.UI.WheelStep))
	}

	switch c.Highlight.Engine {
	case "", EngineChroma, EngineTreeSitter:
	default:
		errs = append(errs, fmt.Errorf("highlight.engine=%q must be %q or %q", c.Highlight.Engine, EngineChroma, EngineTreeSitter))
	}

	if c.Pane.Width < 0 || c.Pane.Height < 0 {
		errs = append(errs, fmt.Errorf("pane size %dx%d must not be negative", c.Pane.Width, c.Pane.Height))
	}
	for i, p := range c.Panes {
		if p.Width < 0 || p.Height < 0 {
			errs = append(errs, fmt.Errorf("panes[%d] size %dx%d must not be negative", i, p.Width, p.Height))
		}
	}

	if c.Log.Level != "" {
		if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
			errs = append(errs, fmt.Errorf("log.level=%q is invalid: %v", c.Log.Level, err))
		}
	}

	if c.Journal.RetentionDays < 0 {
		errs = append(errs, fmt.Errorf("journal.retention_days=%d must not be negative", c.Journal.RetentionDays))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	for _, setter := range []struct {
		env   string
		apply func(string)
	}{
		{"BENCH_THEME", func(v string) {
			if v != "" {
				cfg.UI.SyntaxTheme = v
			}
		}},
		{"BENCH_LOG_LEVEL", func(v string) {
			if v != "" {
				cfg.Log.Level = v
			}
		}},
	} {
		setter.apply(os.Getenv(setter.env))
	}
}

// DataDir returns the path to the bench data directory (~/.config/bench).
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "bench"), nil
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", err
	}
	return dir, nil
}

// DefaultPath returns the config file in the data directory if it exists,
// or "" so Load falls back to defaults.
func DefaultPath() string {
	dir, err := DataDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
