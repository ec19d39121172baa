package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLogWritesFileAndHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "log.txt")
	l := New(path)
	l.now = func() time.Time { return time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC) }

	l.Log("hello")
	l.Logf("blob %d added", 3)

	lines := l.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "[2025-03-04 05:06:07] hello" {
		t.Errorf("unexpected line %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "blob 3 added") {
		t.Errorf("unexpected line %q", lines[1])
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if got := strings.Count(string(data), "\n"); got != 2 {
		t.Errorf("expected 2 lines on disk, got %d", got)
	}
}

func TestMemoryOnly(t *testing.T) {
	l := New("")
	l.Log("x")
	if len(l.Lines()) != 1 || l.Path() != "" {
		t.Errorf("expected one in-memory line and no path")
	}
}

func TestHistoryBounded(t *testing.T) {
	l := New("")
	l.maxLines = 3
	for i := 0; i < 10; i++ {
		l.Logf("%d", i)
	}
	lines := l.Lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.HasSuffix(lines[0], "] 7") || !strings.HasSuffix(lines[2], "] 9") {
		t.Errorf("expected the newest lines to be kept, got %v", lines)
	}
}

func TestLinesIsCopy(t *testing.T) {
	l := New("")
	l.Log("a")
	lines := l.Lines()
	lines[0] = "changed"
	if l.Lines()[0] == "changed" {
		t.Errorf("Lines must return a copy")
	}
}
