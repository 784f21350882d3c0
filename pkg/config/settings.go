package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings are optional UI preferences read from settings.yaml next to the
// preference store. They tune presentation only; the saver works without the
// file.
type Settings struct {
	// MaxMessages bounds the status message log kept in memory.
	MaxMessages int `yaml:"max_messages"`

	// ShowHidden makes the file pickers list dotfiles.
	ShowHidden bool `yaml:"show_hidden"`

	// StartDir is where the select-game picker opens when no live save has
	// been selected yet. Defaults to the user's home directory.
	StartDir string `yaml:"start_dir"`
}

// DefaultSettings returns the settings used when no settings file exists.
func DefaultSettings() Settings {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Settings{
		MaxMessages: 500,
		ShowHidden:  false,
		StartDir:    home,
	}
}

// LoadSettings reads settings from path, filling unset fields from defaults.
// A missing file yields the defaults without error; a malformed file is an
// error so a typo doesn't silently reset the UI.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to parse settings file: %w", err)
	}

	if settings.MaxMessages <= 0 {
		settings.MaxMessages = DefaultSettings().MaxMessages
	}
	if settings.StartDir == "" {
		settings.StartDir = DefaultSettings().StartDir
	}

	return settings, nil
}

// SettingsPath returns the settings file path inside configDir, or the
// default ~/.cogsaver location when configDir is empty.
func SettingsPath(configDir string) string {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		configDir = filepath.Join(home, ".cogsaver")
	}
	return filepath.Join(configDir, "settings.yaml")
}
