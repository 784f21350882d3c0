package logging

import (
	"os"
	"strings"
	"sync"
	"testing"
)

// setupTestDir points the package at a temp log directory and resets the
// session globals, restoring everything on cleanup.
func setupTestDir(t *testing.T) {
	t.Helper()

	tempDir := t.TempDir()

	origLogDir := logDir
	origInitErr := initErr
	origInitOnce := initOnce
	origSessionID := sessionID
	origSessionIDOnce := sessionIDOnce

	initOnce = sync.Once{}
	initOnce.Do(func() {}) // burn the once so initLogDirectory keeps our dir
	logDir = tempDir
	initErr = nil
	sessionID = ""
	sessionIDOnce = sync.Once{}

	t.Cleanup(func() {
		logDir = origLogDir
		initErr = origInitErr
		initOnce = origInitOnce
		sessionID = origSessionID
		sessionIDOnce = origSessionIDOnce
	})
}

func TestNewLogger(t *testing.T) {
	setupTestDir(t)

	logger, err := NewLogger("session")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	if logger.SessionID() == "" {
		t.Error("Expected non-empty session ID")
	}
	if logger.LogPath() == "" {
		t.Error("Expected non-empty log path")
	}
	if !strings.Contains(logger.LogPath(), logger.SessionID()) {
		t.Error("Expected the session ID in the log file name")
	}
}

func TestLoggerWritesLeveledEntries(t *testing.T) {
	setupTestDir(t)

	logger, err := NewLogger("transfer")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	logger.Debugf("copied %d bytes", 42)
	logger.Infof("selection changed")
	logger.Warnf("archive dir missing")
	logger.Errorf("copy failed: %v", os.ErrPermission)
	logger.Close()

	data, err := os.ReadFile(logger.LogPath())
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	content := string(data)

	for _, want := range []string{
		"[transfer] [DEBUG] copied 42 bytes",
		"[transfer] [INFO] selection changed",
		"[transfer] [WARN] archive dir missing",
		"[transfer] [ERROR] copy failed: permission denied",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("Log missing entry %q.\nGot:\n%s", want, content)
		}
	}
}

func TestLoggersShareOneSessionFile(t *testing.T) {
	setupTestDir(t)

	first, err := NewLogger("main")
	if err != nil {
		t.Fatalf("Failed to create first logger: %v", err)
	}
	second, err := NewLogger("tui")
	if err != nil {
		t.Fatalf("Failed to create second logger: %v", err)
	}

	if first.LogPath() != second.LogPath() {
		t.Errorf("Expected a shared log file, got %s and %s", first.LogPath(), second.LogPath())
	}
	if first.SessionID() != second.SessionID() {
		t.Error("Expected a shared session ID")
	}

	first.Close()
	second.Close()
}

func TestCloseIsIdempotent(t *testing.T) {
	setupTestDir(t)

	logger, err := NewLogger("main")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	if err := logger.Close(); err != nil {
		t.Errorf("First close failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Second close failed: %v", err)
	}
}
