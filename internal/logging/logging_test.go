package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")

	logger, closer, err := New(path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("goal", "p1", 1, "p2", 0)
	if err := closer.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "msg=goal") || !strings.Contains(out, "p1=1") {
		t.Errorf("expected goal record, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record should be filtered at info level, got %q", out)
	}
}

func TestNew_Discard(t *testing.T) {
	logger, closer, err := New("", slog.LevelDebug)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info("nothing")
	if err := closer.Close(); err != nil {
		t.Errorf("close failed: %v", err)
	}
}

func TestNew_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "game.log")
	if _, _, err := New(path, slog.LevelInfo); err == nil {
		t.Error("expected error for unwritable path")
	}
}
