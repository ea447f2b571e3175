package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GATEWAY_CONFIG_DIR", dir)

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Theme != ThemeDark {
		t.Fatalf("expected default theme %q, got %q", ThemeDark, s.Theme)
	}
	if _, err := os.Stat(filepath.Join(dir, "settings.json")); err != nil {
		t.Fatalf("expected settings file to be created: %v", err)
	}
}

func TestSaveThenLoadRoundTripsTheme(t *testing.T) {
	t.Setenv("GATEWAY_CONFIG_DIR", t.TempDir())

	if err := Save(&Settings{Theme: ThemeLight}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Theme != ThemeLight {
		t.Fatalf("expected %q, got %q", ThemeLight, s.Theme)
	}
}

func TestLoadReplacesInvalidValues(t *testing.T) {
	tests := map[string]string{
		"bad theme":    `{"theme": "sepia"}`,
		"invalid json": `{"theme":`,
		"unknown key":  `{"theme": "neon", "stars": false}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			t.Setenv("GATEWAY_CONFIG_DIR", dir)
			if err := os.WriteFile(filepath.Join(dir, "settings.json"), []byte(body), 0644); err != nil {
				t.Fatal(err)
			}
			s, err := Load()
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if s.Theme != ThemeDark {
				t.Fatalf("expected fallback theme %q, got %q", ThemeDark, s.Theme)
			}
		})
	}
}

func TestKnownKeys(t *testing.T) {
	keys := knownKeys(&Settings{})
	if !keys["theme"] || len(keys) != 1 {
		t.Fatalf("expected only theme key, got %v", keys)
	}
}
