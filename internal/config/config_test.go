package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultNumbersYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded defaults differ from DefaultConfig():\n%+v\n%+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numbers.yaml")
	yamlText := "grid:\n  rows: 4\n  cols: 5\ndurations:\n  debug:\n    hard: 5s\n"
	if err := os.WriteFile(path, []byte(yamlText), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.Tiles() != 20 {
		t.Errorf("Tiles() = %d, expected 20", cfg.Grid.Tiles())
	}
	if cfg.Grid.TileWidth != 100 {
		t.Errorf("unspecified fields should keep defaults, TileWidth = %v", cfg.Grid.TileWidth)
	}
	if cfg.Durations.Debug.Hard != 5*time.Second {
		t.Errorf("Debug.Hard = %v, expected 5s", cfg.Durations.Debug.Hard)
	}
	if cfg.Durations.Debug.Medium != time.Minute {
		t.Errorf("Debug.Medium = %v, expected 1m", cfg.Durations.Debug.Medium)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("grid:\n  rows: 1\n  cols: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(bad)
	if err == nil || !strings.Contains(err.Error(), "2x2") {
		t.Errorf("1x1 grid should fail validation, got %v", err)
	}
}

func TestDurationTableFor(t *testing.T) {
	release := DefaultConfig().Durations.Release
	debug := DefaultConfig().Durations.Debug

	tests := []struct {
		table    DurationTable
		d        Difficulty
		expected time.Duration
	}{
		{release, DifficultyEasy, 3 * time.Minute},
		{release, DifficultyMedium, 2 * time.Minute},
		{release, DifficultyHard, 2 * time.Minute},
		{debug, DifficultyEasy, 3 * time.Minute},
		{debug, DifficultyMedium, time.Minute},
		{debug, DifficultyHard, 10 * time.Second},
	}

	for _, tc := range tests {
		if got := tc.table.For(tc.d); got != tc.expected {
			t.Errorf("For(%v) = %v, expected %v", tc.d, got, tc.expected)
		}
	}
}

func TestDifficultyCycle(t *testing.T) {
	tests := []struct {
		from, to Difficulty
	}{
		{DifficultyEasy, DifficultyMedium},
		{DifficultyMedium, DifficultyHard},
		{DifficultyHard, DifficultyEasy},
	}
	for _, tc := range tests {
		if got := tc.from.Next(); got != tc.to {
			t.Errorf("%v.Next() = %v, expected %v", tc.from, got, tc.to)
		}
	}

	// Three steps from any difficulty come back to it.
	for _, d := range Difficulties {
		if got := d.Next().Next().Next(); got != d {
			t.Errorf("%v cycled to %v", d, got)
		}
	}
}
