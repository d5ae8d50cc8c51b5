package daemon

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/partwm/partwm/internal/client"
	"github.com/partwm/partwm/internal/server"
)

type fakeBackend struct {
	server.Backend
	windows []client.WindowID
	err     error
}

func (f *fakeBackend) AllWindows() ([]client.WindowID, error) { return f.windows, f.err }

type fakeManager struct {
	known    []client.WindowID
	injected []server.WindowEvent
}

func (f *fakeManager) KnownWindows() []client.WindowID { return f.known }
func (f *fakeManager) InjectEvent(event server.WindowEvent) {
	f.injected = append(f.injected, event)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discardWriter{}, nil))
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestReconcileOnceAdoptsDriftedWindow(t *testing.T) {
	backend := &fakeBackend{windows: []client.WindowID{1, 2}}
	manager := &fakeManager{known: []client.WindowID{1}}
	r := New(backend, manager, 0, discardLogger())

	r.ReconcileNow()

	if len(manager.injected) != 1 {
		t.Fatalf("expected 1 injected event, got %d", len(manager.injected))
	}
	ev := manager.injected[0]
	if ev.Kind != server.EventMapRequest || ev.Window != 2 {
		t.Errorf("got %+v, want MapRequest for window 2", ev)
	}
}

func TestReconcileOnceRemovesVanishedWindow(t *testing.T) {
	backend := &fakeBackend{windows: []client.WindowID{1}}
	manager := &fakeManager{known: []client.WindowID{1, 2}}
	r := New(backend, manager, 0, discardLogger())

	r.ReconcileNow()

	if len(manager.injected) != 1 {
		t.Fatalf("expected 1 injected event, got %d", len(manager.injected))
	}
	ev := manager.injected[0]
	if ev.Kind != server.EventUnmapNotify || ev.Window != 2 {
		t.Errorf("got %+v, want UnmapNotify for window 2", ev)
	}
}

func TestReconcileOnceNoDriftInjectsNothing(t *testing.T) {
	backend := &fakeBackend{windows: []client.WindowID{1, 2}}
	manager := &fakeManager{known: []client.WindowID{1, 2}}
	r := New(backend, manager, 0, discardLogger())

	r.ReconcileNow()

	if len(manager.injected) != 0 {
		t.Errorf("expected no injected events, got %d", len(manager.injected))
	}
}

func TestReconcileOnceBackendErrorSkipsReconciliation(t *testing.T) {
	backend := &fakeBackend{err: errors.New("boom")}
	manager := &fakeManager{known: []client.WindowID{1}}
	r := New(backend, manager, 0, discardLogger())

	r.ReconcileNow()

	if len(manager.injected) != 0 {
		t.Errorf("expected no injected events on backend error, got %d", len(manager.injected))
	}
}

func TestRunDisabledWhenIntervalNonPositive(t *testing.T) {
	backend := &fakeBackend{windows: []client.WindowID{1}}
	manager := &fakeManager{}
	r := New(backend, manager, 0, discardLogger())

	// interval<=0 must return before ctx is ever touched; if it didn't,
	// this call would panic on the nil context and fail the test.
	r.Run(nil) //nolint:staticcheck
}
