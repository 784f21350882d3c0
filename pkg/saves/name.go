package saves

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"
)

// timestampLayout is the layout for suggested save names: YY.MM.DD HH.MM.
// Dots rather than colons keep the result a valid filename everywhere.
const timestampLayout = "06.01.02 15.04"

// ChoiceScript state is JSON, but we deliberately do not parse it. The two
// fields we care about are plucked out with narrow structural patterns; the
// captured value is taken literally, so a value containing an escaped quote
// is truncated at the escape. Accepted limitation for a naming heuristic.
var (
	characterNamePattern = regexp.MustCompile(`"(?:name|firstname)"\s*:\s*"([^"]+)"`)
	sceneNamePattern     = regexp.MustCompile(`"sceneName"\s*:\s*"([^"]+)"`)
)

// SuggestName derives a human-meaningful archive filename from the live save
// content: the character name (if found), a timestamp, and the current scene
// (if found), space-separated in that order.
//
// The returned string is always usable. When livePath is empty or unreadable
// the result degrades to the bare timestamp and the advisory error says why;
// callers report it as a status message, never as a failure.
func SuggestName(livePath string, now time.Time) (string, error) {
	timestamp := now.Format(timestampLayout)
	if livePath == "" {
		return timestamp, ErrNoLiveSave
	}

	content, err := os.ReadFile(livePath)
	if err != nil {
		return timestamp, fmt.Errorf("failed to read save content: %w", err)
	}

	parts := make([]string, 0, 3)
	if m := characterNamePattern.FindSubmatch(content); m != nil {
		parts = append(parts, string(m[1]))
	}
	parts = append(parts, timestamp)
	if m := sceneNamePattern.FindSubmatch(content); m != nil {
		parts = append(parts, string(m[1]))
	}

	return strings.Join(parts, " "), nil
}
