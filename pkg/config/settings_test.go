package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettings(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		settings, err := LoadSettings(filepath.Join(t.TempDir(), "settings.yaml"))
		if err != nil {
			t.Fatalf("LoadSettings failed: %v", err)
		}

		defaults := DefaultSettings()
		if settings.MaxMessages != defaults.MaxMessages {
			t.Errorf("Expected default MaxMessages %d, got %d", defaults.MaxMessages, settings.MaxMessages)
		}
		if settings.StartDir == "" {
			t.Error("Expected a non-empty default StartDir")
		}
	})

	t.Run("reads values from the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		content := "max_messages: 50\nshow_hidden: true\nstart_dir: /games\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write settings: %v", err)
		}

		settings, err := LoadSettings(path)
		if err != nil {
			t.Fatalf("LoadSettings failed: %v", err)
		}

		if settings.MaxMessages != 50 {
			t.Errorf("Expected MaxMessages 50, got %d", settings.MaxMessages)
		}
		if !settings.ShowHidden {
			t.Error("Expected ShowHidden true")
		}
		if settings.StartDir != "/games" {
			t.Errorf("Expected StartDir /games, got %s", settings.StartDir)
		}
	})

	t.Run("partial file keeps defaults for unset fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		if err := os.WriteFile(path, []byte("show_hidden: true\n"), 0o644); err != nil {
			t.Fatalf("Failed to write settings: %v", err)
		}

		settings, err := LoadSettings(path)
		if err != nil {
			t.Fatalf("LoadSettings failed: %v", err)
		}

		if settings.MaxMessages != DefaultSettings().MaxMessages {
			t.Errorf("Expected default MaxMessages, got %d", settings.MaxMessages)
		}
		if !settings.ShowHidden {
			t.Error("Expected ShowHidden true")
		}
	})

	t.Run("malformed file is an error with safe defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		if err := os.WriteFile(path, []byte("max_messages: [oops\n"), 0o644); err != nil {
			t.Fatalf("Failed to write settings: %v", err)
		}

		settings, err := LoadSettings(path)
		if err == nil {
			t.Fatal("Expected an error for malformed settings")
		}
		if settings.MaxMessages != DefaultSettings().MaxMessages {
			t.Error("Expected defaults alongside the error")
		}
	})

	t.Run("non-positive max_messages is normalized", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		if err := os.WriteFile(path, []byte("max_messages: -3\n"), 0o644); err != nil {
			t.Fatalf("Failed to write settings: %v", err)
		}

		settings, err := LoadSettings(path)
		if err != nil {
			t.Fatalf("LoadSettings failed: %v", err)
		}
		if settings.MaxMessages <= 0 {
			t.Errorf("Expected normalized MaxMessages, got %d", settings.MaxMessages)
		}
	})
}

func TestSettingsPath(t *testing.T) {
	if got := SettingsPath("/etc/cogsaver"); got != filepath.Join("/etc/cogsaver", "settings.yaml") {
		t.Errorf("Unexpected settings path: %s", got)
	}

	home, _ := os.UserHomeDir()
	if got := SettingsPath(""); got != filepath.Join(home, ".cogsaver", "settings.yaml") {
		t.Errorf("Unexpected default settings path: %s", got)
	}
}
