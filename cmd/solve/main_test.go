package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeMap(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.txt")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestRunSolvesAndExitsZero(t *testing.T) {
	path := writeMap(t, "0 G\n")
	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Fatalf("open devnull: %v", err)
	}
	defer devNull.Close()

	code := run([]string{"-algo", "1", path}, devNull, devNull)
	if code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
}

func TestRunMissingArgExitsTwo(t *testing.T) {
	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Fatalf("open devnull: %v", err)
	}
	defer devNull.Close()

	code := run(nil, devNull, devNull)
	if code != 2 {
		t.Fatalf("run() = %d, want 2", code)
	}
}

func TestRunLoadFailureExitsOne(t *testing.T) {
	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Fatalf("open devnull: %v", err)
	}
	defer devNull.Close()

	code := run([]string{filepath.Join(t.TempDir(), "missing.txt")}, devNull, devNull)
	if code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
}
