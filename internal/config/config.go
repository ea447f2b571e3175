package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Settings is the persisted user state. Only the theme survives restarts.
type Settings struct {
	Theme string `json:"theme"`
}

// Default returns the settings used when no file exists.
func Default() *Settings {
	return &Settings{Theme: ThemeDark}
}

// Dir returns the configuration directory, creating it if needed.
// GATEWAY_CONFIG_DIR overrides the default of ~/.config/gateway.
func Dir() (string, error) {
	dir := os.Getenv("GATEWAY_CONFIG_DIR")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".config", "gateway")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

func settingsPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.json"), nil
}

// Load reads the settings file, writing defaults when it does not exist.
// A malformed file is reported and replaced by defaults in memory.
func Load() (*Settings, error) {
	path, err := settingsPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Creating default settings file at %s", path)
			if err := write(path, Default()); err != nil {
				log.Printf("Failed to create default settings file: %v", err)
			}
			return Default(), nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return Default(), nil
	}
	known := knownKeys(Settings{})
	for key := range raw {
		if !known[key] {
			log.Printf("Warning: unrecognised setting key '%s' in settings file", key)
		}
	}

	settings := &Settings{}
	if err := json.Unmarshal(data, settings); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return Default(), nil
	}
	if settings.Theme != ThemeLight && settings.Theme != ThemeDark {
		log.Printf("Invalid theme %q, must be %q or %q, using %q",
			settings.Theme, ThemeLight, ThemeDark, Default().Theme)
		settings.Theme = Default().Theme
	}
	return settings, nil
}

// Save persists s to the settings file.
func Save(s *Settings) error {
	path, err := settingsPath()
	if err != nil {
		return err
	}
	if err := write(path, s); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func write(path string, s *Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func knownKeys(v any) map[string]bool {
	keys := make(map[string]bool)
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		if tag := t.Field(i).Tag.Get("json"); tag != "" {
			name := strings.Split(tag, ",")[0]
			if name != "-" {
				keys[name] = true
			}
		}
	}
	return keys
}
