// Package daemon runs the background drift reconciler that keeps the
// window manager's client store in sync with the X server on a ticker.
package daemon

import (
	"context"
	"log/slog"
	"time"

	"github.com/partwm/partwm/internal/client"
	"github.com/partwm/partwm/internal/server"
)

// Manager is the subset of wm.Manager the reconciler needs: it never
// mutates the store directly, only injects synthetic events.
type Manager interface {
	KnownWindows() []client.WindowID
	InjectEvent(event server.WindowEvent)
}

// Reconciler periodically diffs the backend's live window list against
// the core's client store and folds any drift through the normal
// MapRequest/UnmapNotify path.
type Reconciler struct {
	backend  server.Backend
	manager  Manager
	interval time.Duration
	logger   *slog.Logger
}

// New constructs a Reconciler. A non-positive interval disables periodic
// reconciliation; Run returns immediately in that case.
func New(backend server.Backend, manager Manager, interval time.Duration, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{backend: backend, manager: manager, interval: interval, logger: logger}
}

// Run ticks every r.interval until ctx is canceled, reconciling drift on
// each tick. Intended to run on its own goroutine.
func (r *Reconciler) Run(ctx context.Context) {
	if r.interval <= 0 {
		return
	}
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("reconciler started", "interval", r.interval)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("reconciler stopped")
			return
		case <-ticker.C:
			r.reconcileOnce()
		}
	}
}

// ReconcileNow triggers an immediate reconciliation pass, useful in
// tests. The RELOAD control-plane command does not call it.
func (r *Reconciler) ReconcileNow() {
	r.reconcileOnce()
}

func (r *Reconciler) reconcileOnce() {
	defer func() {
		if err := recover(); err != nil {
			r.logger.Error("reconciler panic recovered", "error", err)
		}
	}()

	live, err := r.backend.AllWindows()
	if err != nil {
		r.logger.Warn("reconciler: listing windows failed", "error", err)
		return
	}

	liveSet := make(map[client.WindowID]struct{}, len(live))
	for _, id := range live {
		liveSet[id] = struct{}{}
	}

	known := r.manager.KnownWindows()
	knownSet := make(map[client.WindowID]struct{}, len(known))
	for _, id := range known {
		knownSet[id] = struct{}{}
	}

	for _, id := range live {
		if _, ok := knownSet[id]; !ok {
			r.logger.Debug("reconciler: adopting drifted window", "window", id)
			r.manager.InjectEvent(server.WindowEvent{Kind: server.EventMapRequest, Window: id})
		}
	}
	for _, id := range known {
		if _, ok := liveSet[id]; !ok {
			r.logger.Debug("reconciler: removing vanished window", "window", id)
			r.manager.InjectEvent(server.WindowEvent{Kind: server.EventUnmapNotify, Window: id})
		}
	}
}
