package config

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Prefs are the player preferences that survive restarts.
// On disk they are a flat file with one "key = value" pair per line.
type Prefs struct {
	Locale     int        `toml:"locale"`
	Difficulty Difficulty `toml:"difficulty"`
}

// prefsLine is one decoded line of the preferences file.
type prefsLine struct {
	Locale     *int `toml:"locale"`
	Difficulty *int `toml:"difficulty"`
}

// PrefsStore loads and saves preferences.
type PrefsStore interface {
	// Load returns the stored preferences and whether any were stored.
	Load() (Prefs, bool)
	// Save overwrites the stored preferences.
	Save(p Prefs) error
}

// FilePrefs stores preferences in a file.
type FilePrefs struct {
	Path string
}

// NewFilePrefs creates a file-backed store. "~" is expanded to the home directory.
func NewFilePrefs(path string) *FilePrefs {
	return &FilePrefs{Path: expandHome(path)}
}

// Load reads the preferences file. A missing or unreadable file yields
// defaults and false. Malformed lines are skipped.
func (f *FilePrefs) Load() (Prefs, bool) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return Prefs{}, false
	}
	return ParsePrefs(data), true
}

// Save writes the whole preferences file, creating parent directories.
func (f *FilePrefs) Save(p Prefs) error {
	if dir := filepath.Dir(f.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("prefs: cannot create directory %s: %w", dir, err)
		}
	}
	data, err := EncodePrefs(p)
	if err != nil {
		return err
	}
	if err := os.WriteFile(f.Path, data, 0o644); err != nil {
		return fmt.Errorf("prefs: cannot write %s: %w", f.Path, err)
	}
	return nil
}

// MemoryPrefs keeps preferences in memory only.
type MemoryPrefs struct {
	prefs  Prefs
	stored bool
}

// Load returns the last saved preferences.
func (m *MemoryPrefs) Load() (Prefs, bool) {
	return m.prefs, m.stored
}

// Save replaces the stored preferences.
func (m *MemoryPrefs) Save(p Prefs) error {
	m.prefs = p
	m.stored = true
	return nil
}

// ParsePrefs decodes preferences line by line. Lines that are not a valid
// key/value pair, unknown keys and out-of-range difficulties are ignored.
func ParsePrefs(data []byte) Prefs {
	var p Prefs
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		var line prefsLine
		if _, err := toml.Decode(text, &line); err != nil {
			continue
		}
		if line.Locale != nil && *line.Locale >= 0 {
			p.Locale = *line.Locale
		}
		if line.Difficulty != nil {
			if d := Difficulty(*line.Difficulty); d.Valid() {
				p.Difficulty = d
			}
		}
	}
	return p
}

// EncodePrefs renders preferences as "key = value" lines.
func EncodePrefs(p Prefs) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(p); err != nil {
		return nil, fmt.Errorf("prefs: cannot encode: %w", err)
	}
	return buf.Bytes(), nil
}

// DefaultPrefsPath returns $XDG_CONFIG_HOME/numbers/settings.cfg.
func DefaultPrefsPath() string {
	return filepath.Join(xdgConfigHome(), "numbers", "settings.cfg")
}

// xdgConfigHome returns the XDG config home or a default fallback.
func xdgConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// expandHome expands a leading ~ to the home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
