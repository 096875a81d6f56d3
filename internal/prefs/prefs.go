// Package prefs persists user preferences between runs. Preferences live in
// a small TOML file, by default ~/.config/zeroscope/prefs.toml. Reading is
// forgiving: a missing or unreadable file yields defaults so the dashboard
// always starts.
package prefs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	defaultPrefsPath = "~/.config/zeroscope/prefs.toml"
	defaultSortField = "name"
)

// Prefs holds everything zeroscope remembers between runs.
type Prefs struct {
	SortField string `toml:"sort_field"`
	SortDesc  bool   `toml:"sort_desc"`
}

// Default returns the preferences used when nothing is saved yet.
func Default() Prefs {
	return Prefs{SortField: defaultSortField}
}

// Load reads preferences from path, or the default location when path is
// empty. Missing or corrupt files degrade to defaults; only an unresolvable
// path is an error.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Default(), err
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return Default(), nil
	}
	p := Default()
	if err := toml.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	if strings.TrimSpace(p.SortField) == "" {
		p.SortField = defaultSortField
	}
	return p, nil
}

// Save writes preferences to path, or the default location when path is
// empty, creating parent directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(resolved); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := toml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(resolved, data, 0o644)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.New("cannot resolve home directory for " + path)
		}
		if path == "~" {
			return home, nil
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
