package logging

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestDisabledLoggerWritesNothing(t *testing.T) {
	dir := t.TempDir()
	logger := New(Config{Debug: false, Dir: dir, App: "test"})

	logger.Info("should vanish")
	logger.Error("also nothing")
	logger.Sync()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no log files when disabled, found %d", len(entries))
	}
}

func TestDebugLoggerWritesToFile(t *testing.T) {
	dir := t.TempDir()
	logger := New(Config{Debug: true, Dir: dir, App: "test"})

	logger.Info("frame loop started", zap.Int("width", 80))
	logger.Sync()

	path := filepath.Join(dir, "test.log")
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected log file at %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Error("expected log content, file is empty")
	}
}

func TestErrorsAlsoLandInErrorFile(t *testing.T) {
	dir := t.TempDir()
	logger := New(Config{Debug: true, Dir: dir, App: "test"})

	logger.Error("state save failed")
	logger.Sync()

	for _, name := range []string{"test.log", "test_error.log"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("expected %s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("expected content in %s", name)
		}
	}
}
