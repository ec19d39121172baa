package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the log file used when none is configured, relative to the working directory.
const DefaultPath = "logs/metaballs.txt"

// DefaultMaxLines bounds the in-memory history shown by the console.
const DefaultMaxLines = 500

// Logger keeps recent lines in memory (for the on-screen console) and appends every line to a
// file on disk. Each entry is prefixed with [timestamp] using computer time.
// File errors are ignored.
type Logger struct {
	mu       sync.Mutex
	path     string
	lines    []string
	maxLines int
	now      func() time.Time
}

// New returns a Logger writing to path and ensures its directory exists.
// An empty path keeps lines in memory only.
func New(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{
		path:     path,
		lines:    make([]string, 0),
		maxLines: DefaultMaxLines,
		now:      time.Now,
	}
}

// Path returns the log file path ("" when memory only).
func (l *Logger) Path() string {
	return l.path
}

// Log appends a timestamped line to the history and to the log file.
func (l *Logger) Log(line string) {
	stamped := "[" + l.now().Format("2006-01-02 15:04:05") + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	if over := len(l.lines) - l.maxLines; over > 0 {
		l.lines = append(l.lines[:0], l.lines[over:]...)
	}
	l.mu.Unlock()

	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats according to format and logs the result.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of the stored lines, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
