// Package actionlog provides a size-capped rotating file logger for the
// window manager's audit trail of dispatched commands and events,
// independent of the operational log/slog logger used for diagnostics.
package actionlog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/partwm/partwm/internal/config"
	"github.com/partwm/partwm/internal/runtimepath"
)

// Logger writes one structured line per action to a rotating file. It
// implements wm.ActionLogger's LogAction(action string, attrs ...any).
type Logger struct {
	mu       sync.Mutex
	file     *os.File
	path     string
	maxBytes int64
	maxFiles int
	written  int64
	slog     *slog.Logger
	enabled  bool
}

// New opens (creating if necessary) the action log described by cfg,
// defaulting an empty cfg.File to runtimepath.ActionLogPath(). A
// disabled config returns a Logger whose LogAction is a no-op.
func New(cfg config.LoggingConfig) (*Logger, error) {
	l := &Logger{
		path:     cfg.File,
		maxBytes: int64(cfg.MaxSizeMB) * 1024 * 1024,
		maxFiles: cfg.MaxFiles,
		enabled:  cfg.Enabled,
	}
	if !cfg.Enabled {
		return l, nil
	}
	if l.path == "" {
		p, err := runtimepath.ActionLogPath()
		if err != nil {
			return nil, err
		}
		l.path = p
	}
	if err := l.open(); err != nil {
		return nil, err
	}
	level := parseLevel(cfg.Level)
	l.slog = slog.New(slog.NewTextHandler(l, &slog.HandlerOptions{Level: level}))
	return l, nil
}

func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func (l *Logger) open() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("actionlog: creating directory: %w", err)
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("actionlog: opening %s: %w", l.path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("actionlog: stat %s: %w", l.path, err)
	}
	l.file = f
	l.written = info.Size()
	return nil
}

// Write implements io.Writer for the underlying slog.TextHandler, rotating
// the file first if appending p would exceed maxBytes.
func (l *Logger) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.maxBytes > 0 && l.written+int64(len(p)) > l.maxBytes {
		if err := l.rotateLocked(); err != nil {
			return 0, err
		}
	}
	n, err := l.file.Write(p)
	l.written += int64(n)
	return n, err
}

func (l *Logger) rotateLocked() error {
	if l.file != nil {
		l.file.Close()
	}
	for i := l.maxFiles - 1; i >= 1; i-- {
		src := rotatedName(l.path, i)
		dst := rotatedName(l.path, i+1)
		if _, err := os.Stat(src); err == nil {
			os.Rename(src, dst)
		}
	}
	if l.maxFiles > 0 {
		os.Rename(l.path, rotatedName(l.path, 1))
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("actionlog: reopening after rotation: %w", err)
	}
	l.file = f
	l.written = 0
	return nil
}

func rotatedName(path string, n int) string {
	return fmt.Sprintf("%s.%d", path, n)
}

// LogAction records one action with its attributes, timestamped at call
// time. A disabled logger does nothing.
func (l *Logger) LogAction(action string, attrs ...any) {
	if !l.enabled || l.slog == nil {
		return
	}
	l.slog.Info(action, append(attrs, "ts", time.Now().UTC().Format(time.RFC3339))...)
}

// Close flushes and closes the underlying file, if open.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
