package actionlog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/partwm/partwm/internal/config"
)

func TestDisabledLoggerDoesNotCreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actions.log")
	l, err := New(config.LoggingConfig{Enabled: false, File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.LogAction("map_request", "window", 1)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no file to be created, stat err = %v", err)
	}
}

func TestEnabledLoggerWritesLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actions.log")
	l, err := New(config.LoggingConfig{Enabled: true, Level: "info", File: path, MaxSizeMB: 10, MaxFiles: 3})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.LogAction("map_request", "window", 1)
	l.LogAction("unmap_notify", "window", 1)
	l.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty log file")
	}
}

func TestRotationCapsFileSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actions.log")
	l, err := New(config.LoggingConfig{Enabled: true, Level: "info", File: path, MaxSizeMB: 1, MaxFiles: 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.maxBytes = 200 // force rotation quickly without writing megabytes in a test
	for i := 0; i < 50; i++ {
		l.LogAction("spawn", "argv", []string{"xterm", "-e", "vim"})
	}
	l.Close()

	if _, err := os.Stat(rotatedName(path, 1)); err != nil {
		t.Fatalf("expected at least one rotated file, got err: %v", err)
	}
}
