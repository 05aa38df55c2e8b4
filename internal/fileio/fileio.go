// Package fileio reads and writes the files panes are bound to.
package fileio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"mvdan.cc/sh/v3/shell"
)

// ErrIsDir is returned when a path names a directory.
var ErrIsDir = errors.New("is a directory")

// Expand resolves a leading ~ and any $VAR references in path. Command
// substitution is never run.
func Expand(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand %q: %w", path, err)
		}
		path = home + path[1:]
	}
	out, err := shell.Expand(path, nil)
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", path, err)
	}
	return out, nil
}

// Read returns the lines of the file at path. A missing file is reported
// with an error matching fs.ErrNotExist.
func Read(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("read %s: %w", path, ErrIsDir)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n"), nil
}

// ReadString returns the raw content at path, or "" when it does not exist.
func ReadString(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), true, nil
}

// Write stores text at path followed by a newline, creating parent
// directories as needed. Existing file permissions are kept. Write and Read
// round-trip: Read(path) after Write(path, text) yields text's lines.
func Write(path, text string) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("write %s: %w", path, ErrIsDir)
		}
		mode = info.Mode().Perm()
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, []byte(text+"\n"), mode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
