package tui

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// messageLog is a bounded, timestamped status message buffer. It is the
// Notifier sink for the session: every core operation narrates itself here
// and the viewport renders the result.
type messageLog struct {
	mu    sync.Mutex
	limit int
	lines []string
}

func newMessageLog(limit int) *messageLog {
	if limit <= 0 {
		limit = 500
	}
	return &messageLog{limit: limit}
}

// Append records a message with an HH:MM:SS timestamp. Newlines are
// flattened to spaces so one message stays one log line.
func (l *messageLog) Append(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	flattened := strings.Join(strings.Fields(strings.ReplaceAll(msg, "\n", " ")), " ")
	line := fmt.Sprintf("[%s] %s", time.Now().Format("15:04:05"), flattened)

	l.lines = append(l.lines, line)
	if len(l.lines) > l.limit {
		l.lines = l.lines[len(l.lines)-l.limit:]
	}
}

// Lines returns a copy of the buffered log lines, oldest first.
func (l *messageLog) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Len returns the number of buffered lines.
func (l *messageLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.lines)
}
