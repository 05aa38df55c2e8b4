package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/bench/internal/config"
	"github.com/xonecas/bench/internal/highlight"
	"github.com/xonecas/bench/internal/keymap"
	"github.com/xonecas/bench/internal/pane"
	"github.com/xonecas/bench/internal/store"
	"github.com/xonecas/bench/internal/treesitter"
	"github.com/xonecas/bench/internal/tui"
	"github.com/xonecas/bench/internal/workspace"
)

func main() {
	configPath := flag.String("config", "", "path to config.toml (default ~/.config/bench/config.toml)")
	flag.Parse()

	if err := run(*configPath, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "bench: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, files []string) error {
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	dataDir, err := config.EnsureDataDir()
	if err != nil {
		return fmt.Errorf("data dir: %w", err)
	}

	logFile, err := setupLogging(cfg.Log, dataDir)
	if err != nil {
		return err
	}
	defer logFile.Close()

	journal := openJournal(cfg.Journal, dataDir)
	defer journal.Close()

	keys := keymap.Default(cfg.Keys.PromptToggleOrDefault())
	theme := highlight.NewTheme(cfg.UI.SyntaxThemeOrDefault())
	width, height := cfg.Pane.SizeOrDefault()

	ws := workspace.New(workspace.Options{
		Pane: pane.Options{
			Highlighter: newHighlighter(cfg.Highlight),
			Theme:       theme,
			Keys:        keys,
			LineHeight:  cfg.UI.LineHeightOrDefault(),
		},
		WheelStep:  cfg.UI.WheelStepOrDefault(),
		PaneWidth:  width,
		PaneHeight: height,
		Journal:    journal,
	})

	for _, p := range cfg.Panes {
		ws.OpenAt(p.Path, pane.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height})
	}
	for _, f := range files {
		ws.Open(f)
	}
	if len(cfg.Panes) == 0 && len(files) == 0 {
		ws.Help()
	}

	log.Info().Str("theme", theme.Name).Int("panes", len(ws.Panes())).Msg("starting")

	p := tea.NewProgram(
		tui.New(ws, keys, theme),
		tea.WithFilter(tui.MouseEventFilter),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running bench: %w", err)
	}
	return nil
}

// setupLogging points the global logger at a file; the terminal belongs to
// the TUI.
func setupLogging(cfg config.LogConfig, dataDir string) (*os.File, error) {
	level, err := zerolog.ParseLevel(cfg.LevelOrDefault())
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	path := cfg.File
	if path == "" {
		path = filepath.Join(dataDir, "bench.log")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return f, nil
}

// openJournal opens the recent-files journal. Failure is logged and the
// editor runs without one.
func openJournal(cfg config.JournalConfig, dataDir string) *store.Journal {
	if cfg.Disabled {
		return nil
	}
	path := cfg.Path
	if path == "" {
		path = filepath.Join(dataDir, "journal.db")
	}
	j, err := store.Open(path, cfg.RetentionOrDefault())
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("journal unavailable")
		return nil
	}
	return j
}

// newHighlighter returns chroma for every language, with tree-sitter taking
// over Go sources when configured.
func newHighlighter(cfg config.HighlightConfig) highlight.Highlighter {
	r := highlight.NewRouter(highlight.Chroma{})
	if cfg.EngineOrDefault() == config.EngineTreeSitter {
		r.Register("go", treesitter.Highlighter{})
	}
	return r
}
