package tui

import (
	"regexp"
	"strings"
	"testing"
)

var timestampPrefix = regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] `)

func TestMessageLog_Append(t *testing.T) {
	t.Run("prefixes a timestamp", func(t *testing.T) {
		log := newMessageLog(10)
		log.Append("Quicksaved")

		lines := log.Lines()
		if len(lines) != 1 {
			t.Fatalf("Expected 1 line, got %d", len(lines))
		}
		if !timestampPrefix.MatchString(lines[0]) {
			t.Errorf("Expected [HH:MM:SS] prefix, got %q", lines[0])
		}
		if !strings.HasSuffix(lines[0], "Quicksaved") {
			t.Errorf("Expected message text, got %q", lines[0])
		}
	})

	t.Run("flattens newlines into one line", func(t *testing.T) {
		log := newMessageLog(10)
		log.Append("ERROR: bad file\nPlease pick another\none")

		lines := log.Lines()
		if len(lines) != 1 {
			t.Fatalf("Expected 1 line, got %d", len(lines))
		}
		if strings.Contains(lines[0], "\n") {
			t.Errorf("Expected flattened message, got %q", lines[0])
		}
		if !strings.Contains(lines[0], "bad file Please pick another one") {
			t.Errorf("Expected joined text, got %q", lines[0])
		}
	})

	t.Run("drops the oldest lines past the limit", func(t *testing.T) {
		log := newMessageLog(3)
		for _, msg := range []string{"one", "two", "three", "four"} {
			log.Append(msg)
		}

		lines := log.Lines()
		if len(lines) != 3 {
			t.Fatalf("Expected 3 lines, got %d", len(lines))
		}
		if !strings.HasSuffix(lines[0], "two") {
			t.Errorf("Expected oldest surviving line to be 'two', got %q", lines[0])
		}
		if !strings.HasSuffix(lines[2], "four") {
			t.Errorf("Expected newest line to be 'four', got %q", lines[2])
		}
	})

	t.Run("zero limit falls back to a sane default", func(t *testing.T) {
		log := newMessageLog(0)
		log.Append("hello")
		if log.Len() != 1 {
			t.Errorf("Expected 1 line, got %d", log.Len())
		}
	})
}

func TestMessageLog_LinesReturnsACopy(t *testing.T) {
	log := newMessageLog(10)
	log.Append("original")

	lines := log.Lines()
	lines[0] = "tampered"

	if got := log.Lines()[0]; strings.HasSuffix(got, "tampered") {
		t.Error("Lines must return a copy, not the backing slice")
	}
}
