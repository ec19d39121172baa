package env

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("expected nil for a missing file, got %v", err)
	}
}

func TestLoadKeepsExistingValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	data := "# metaballs\nMETABALLS_TEST_SEED=7\nMETABALLS_TEST_LOG=\"logs/run.txt\"\n\nMETABALLS_TEST_BLOBS=12\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("METABALLS_TEST_BLOBS", "3")
	t.Setenv("METABALLS_TEST_SEED", "")
	os.Unsetenv("METABALLS_TEST_SEED")
	t.Setenv("METABALLS_TEST_LOG", "")
	os.Unsetenv("METABALLS_TEST_LOG")

	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := os.Getenv("METABALLS_TEST_SEED"); got != "7" {
		t.Errorf("expected seed 7, got %q", got)
	}
	if got := os.Getenv("METABALLS_TEST_LOG"); got != "logs/run.txt" {
		t.Errorf("expected quotes stripped, got %q", got)
	}
	if got := os.Getenv("METABALLS_TEST_BLOBS"); got != "3" {
		t.Errorf("expected the existing value to win, got %q", got)
	}
}
