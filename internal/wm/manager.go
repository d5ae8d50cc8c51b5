// Package wm implements the window manager core: the event dispatcher
// that mutates the client store and workspace set in response to
// backend events and user commands, and drives the layout engine to
// keep on-screen geometry in sync.
package wm

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/partwm/partwm/internal/client"
	"github.com/partwm/partwm/internal/geometry"
	"github.com/partwm/partwm/internal/server"
	"github.com/partwm/partwm/internal/store"
	"github.com/partwm/partwm/internal/workspace"
)

// Config holds the construction-time settings of the core. It is
// immutable after NewManager except for Gap, BorderWidth and the two
// border colors, which CmdReloadConfig replaces. The master fraction and
// the effective border width (zeroed by fullscreen) live on Manager.
type Config struct {
	NumWorkspaces       int
	ModKey              server.Modifier
	Gap                 int
	BorderWidth         int
	ActiveBorderColor   string
	InactiveBorderColor string
	TerminalCommand     []string
	KillClientsOnExit   bool
}

// ActionLogger receives one line per dispatched command or event, for
// the optional action audit log (internal/actionlog implements it).
type ActionLogger interface {
	LogAction(action string, attrs ...any)
}

type noopActionLogger struct{}

func (noopActionLogger) LogAction(string, ...any) {}

// Manager is the window manager core. It owns the only ClientStore and
// WorkspaceSet in the process; every mutation flows through its
// methods, called from the single-threaded event loop in Run.
type Manager struct {
	store      *store.Store
	workspaces *workspace.Set
	backend    server.Backend
	logger     *slog.Logger
	actionLog  ActionLogger

	cfg Config

	masterFrac float64
	border     int // effective border; set to 0 when a client enters fullscreen, back to cfg.BorderWidth when one leaves it
	screenSize geometry.Size
	moveResize moveResizeState

	bindings map[binding]Command
	quitCh   chan struct{}
	quitOnce sync.Once

	// mu guards every state-reading call made from outside the run loop
	// (the GetStatus, KnownWindows, ListClients and ListWorkspaces
	// snapshots), so the single-threaded core only ever has one critical
	// section active at a time: Run's own loop also holds mu for the
	// duration of each event/command it handles. Submit and InjectEvent
	// do not take mu; they queue onto cmdCh and events.
	mu     sync.Mutex
	cmdCh  chan Command
	events chan server.WindowEvent
	start  time.Time
}

// NewManager constructs a Manager bound to backend, with cfg applied
// and masterFrac defaulted to 1.0 (each stack gets half the screen).
func NewManager(backend server.Backend, cfg Config, logger *slog.Logger) (*Manager, error) {
	if cfg.NumWorkspaces < 1 {
		return nil, fmt.Errorf("wm: num_workspaces must be >= 1, got %d", cfg.NumWorkspaces)
	}

	ws, err := workspace.NewSet(cfg.NumWorkspaces)
	if err != nil {
		return nil, err
	}

	screen, err := backend.ScreenSize()
	if err != nil {
		return nil, fmt.Errorf("wm: querying screen size: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	if cfg.ActiveBorderColor != "" {
		if err := backend.SetActiveBorderColor(cfg.ActiveBorderColor); err != nil {
			return nil, fmt.Errorf("wm: setting active border color: %w", err)
		}
	}
	if cfg.InactiveBorderColor != "" {
		if err := backend.SetInactiveBorderColor(cfg.InactiveBorderColor); err != nil {
			return nil, fmt.Errorf("wm: setting inactive border color: %w", err)
		}
	}

	m := &Manager{
		store:      store.New(ws),
		workspaces: ws,
		backend:    backend,
		logger:     logger,
		actionLog:  noopActionLogger{},
		cfg:        cfg,
		masterFrac: 1.0,
		border:     cfg.BorderWidth,
		screenSize: screen,
		moveResize: moveResizeState{mode: moveResizeNone},
		bindings:   make(map[binding]Command),
		quitCh:     make(chan struct{}),
		cmdCh:      make(chan Command, 32),
		events:     make(chan server.WindowEvent, 32),
		start:      time.Now(),
	}
	return m, nil
}

// Submit enqueues cmd to be dispatched from the run loop. IPC and other
// external callers use this instead of calling Dispatch directly,
// preserving the single-mutator-at-a-time guarantee via the channel
// rather than by racing on the mutex.
func (m *Manager) Submit(cmd Command) {
	select {
	case m.cmdCh <- cmd:
	case <-m.quitCh:
	}
}

// InjectEvent enqueues a synthetic backend event to be handled from the
// run loop, used by internal/daemon's reconciler to fold drift-detected
// adopt/remove operations through the normal MapRequest/UnmapNotify path
// instead of mutating the store directly.
func (m *Manager) InjectEvent(event server.WindowEvent) {
	select {
	case m.events <- event:
	case <-m.quitCh:
	}
}

// Status is a point-in-time, read-only snapshot for the control plane,
// built under the same mutex the run loop holds while mutating state.
type Status struct {
	CurrentWorkspace int
	NumWorkspaces    int
	MasterFraction   float64
	TiledCount       int
	FloatingCount    int
	FocusedWindow    *client.WindowID
	Uptime           time.Duration
}

// GetStatus returns a Status snapshot, safe to call concurrently with Run.
func (m *Manager) GetStatus() Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := Status{
		CurrentWorkspace: m.workspaces.CurrentIndex(),
		NumWorkspaces:    m.workspaces.Len(),
		MasterFraction:   m.masterFrac,
		TiledCount:       len(m.store.CurrentScreenTiled()),
		FloatingCount:    len(m.store.Floating()),
		Uptime:           time.Since(m.start),
	}
	if id, ok := m.store.Focused(); ok {
		st.FocusedWindow = &id
	}
	return st
}

// KnownWindows returns every window currently tracked by the store, for
// the reconciler to diff against the backend's live window list.
func (m *Manager) KnownWindows() []client.WindowID {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := m.store.All()
	out := make([]client.WindowID, len(all))
	for i, c := range all {
		out[i] = c.ID
	}
	return out
}

// ClientInfo describes one managed window, for the control plane's
// list-clients query.
type ClientInfo struct {
	ID         client.WindowID
	Kind       string
	Floating   bool
	Fullscreen bool
	Position   geometry.Point
	Size       geometry.Size
}

// ListClients returns a snapshot of every managed window.
func (m *Manager) ListClients() []ClientInfo {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := m.store.All()
	out := make([]ClientInfo, len(all))
	for i, c := range all {
		out[i] = ClientInfo{
			ID:         c.ID,
			Kind:       c.Kind.String(),
			Floating:   m.store.IsFloating(c.ID),
			Fullscreen: c.Fullscreen,
			Position:   c.Position,
			Size:       c.Size,
		}
	}
	return out
}

// WorkspaceStatus describes one workspace's occupancy, for the control
// plane's list-workspaces query.
type WorkspaceStatus struct {
	Index     int
	MasterLen int
	AuxLen    int
	IsCurrent bool
}

// ListWorkspaces returns a snapshot of every workspace's stack lengths.
func (m *Manager) ListWorkspaces() []WorkspaceStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]WorkspaceStatus, m.workspaces.Len())
	current := m.workspaces.CurrentIndex()
	for i := range out {
		ws := m.workspaces.At(i)
		out[i] = WorkspaceStatus{
			Index:     i,
			MasterLen: len(ws.Master),
			AuxLen:    len(ws.Aux),
			IsCurrent: i == current,
		}
	}
	return out
}

// SetActionLogger installs an audit logger; nil restores the no-op.
func (m *Manager) SetActionLogger(l ActionLogger) {
	if l == nil {
		l = noopActionLogger{}
	}
	m.actionLog = l
}

// Adopt queries the backend for already-mapped windows and adds each
// one to the store, mirroring what MapRequest would do. Called once at
// startup before entering Run.
func (m *Manager) Adopt() error {
	ids, err := m.backend.AllWindows()
	if err != nil {
		return fmt.Errorf("wm: listing existing windows: %w", err)
	}
	for _, id := range ids {
		if err := m.adopt(id); err != nil {
			m.logger.Warn("failed to adopt existing window", "window", id, "error", err)
		}
	}
	m.relayout()
	return nil
}

// Run drains events from the backend and commands submitted via Submit
// until ctx is canceled or the backend returns a fatal error. Exactly
// one event or command is handled at a time: Submit and InjectEvent
// (queued onto channels) and the mutex-guarded snapshot queries are the
// only ways another goroutine touches the core.
func (m *Manager) Run(ctx context.Context) error {
	pumpErrCh := make(chan error, 1)
	go m.pumpEvents(ctx, pumpErrCh)

	for {
		select {
		case <-m.quitCh:
			return nil
		case <-ctx.Done():
			return nil
		case err := <-pumpErrCh:
			return err
		case cmd := <-m.cmdCh:
			m.mu.Lock()
			m.Dispatch(cmd)
			m.mu.Unlock()
		case event := <-m.events:
			m.mu.Lock()
			m.HandleEvent(event)
			m.mu.Unlock()
		}
	}
}

// pumpEvents repeatedly blocks on backend.NextEvent and forwards each
// event onto m.events, the single channel Run's select loop reads from.
func (m *Manager) pumpEvents(ctx context.Context, errCh chan<- error) {
	for {
		event, err := m.backend.NextEvent(ctx)
		if err != nil {
			if ctx.Err() != nil {
				errCh <- nil
			} else {
				errCh <- fmt.Errorf("wm: backend event stream: %w", err)
			}
			return
		}
		select {
		case m.events <- event:
		case <-ctx.Done():
			return
		}
	}
}

// Done returns a channel closed once a Quit command has been dispatched.
func (m *Manager) Done() <-chan struct{} {
	return m.quitCh
}

// HandleEvent dispatches a single backend event to its handler. It
// never panics across this boundary: a recovered panic is logged and
// treated as an unknown event.
func (m *Manager) HandleEvent(event server.WindowEvent) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("recovered panic handling event", "kind", event.Kind, "panic", r)
		}
	}()

	switch event.Kind {
	case server.EventMapRequest:
		m.handleMapRequest(event)
	case server.EventUnmapNotify, server.EventDestroyNotify:
		m.handleUnmap(event)
	case server.EventEnterNotify:
		m.handleEnter(event)
	case server.EventConfigureRequest:
		m.handleConfigureRequest(event)
	case server.EventMotionNotify:
		m.handleMotion(event)
	case server.EventButtonPress:
		m.handleButtonPress(event)
	case server.EventButtonRelease:
		m.handleButtonRelease(event)
	case server.EventFullscreen:
		m.handleFullscreen(event)
	case server.EventKeyPress:
		m.handleKeyPress(event)
	default:
		// UnknownEvent: ignored locally.
	}

	if err := m.backend.HandleEvent(event); err != nil {
		m.logger.Debug("backend housekeeping for event failed", "kind", event.Kind, "error", err)
	}
}

func (m *Manager) handleMapRequest(event server.WindowEvent) {
	if m.store.Contains(event.Window) {
		return
	}
	if err := m.adopt(event.Window); err != nil {
		m.logger.Warn("failed to adopt mapped window", "window", event.Window, "error", err)
		return
	}
	m.actionLog.LogAction("map_request", "window", event.Window)
	m.relayout()
	m.focus(event.Window, true)
}

// adopt queries the backend for a window's kind/parent/size and inserts
// the resulting Client record into the store.
func (m *Manager) adopt(id client.WindowID) error {
	kind, err := m.backend.GetWindowType(id)
	if err != nil {
		return fmt.Errorf("querying window type: %w", err)
	}
	size, err := m.backend.GetWindowSize(id)
	if err != nil {
		return fmt.Errorf("querying window size: %w", err)
	}
	var parent *client.WindowID
	if p, ok, err := m.backend.GetParentWindow(id); err == nil && ok {
		parent = &p
	}

	c := client.New(id, kind, size, parent, m.screenSize, m.border)
	m.store.Insert(c)
	return nil
}

func (m *Manager) handleUnmap(event server.WindowEvent) {
	if !m.store.Contains(event.Window) {
		return
	}
	m.store.Remove(event.Window)
	m.actionLog.LogAction("unmap_notify", "window", event.Window)
	m.relayout()
}

func (m *Manager) handleEnter(event server.WindowEvent) {
	m.focus(event.Window, false)
}

func (m *Manager) handleConfigureRequest(event server.WindowEvent) {
	c, ok := m.store.Get(event.Window)
	if !ok {
		_ = m.backend.ConfigureWindow(event.Window, event.RequestedSize, event.RequestedPos, m.border)
		return
	}
	// Clobber the client-requested geometry with what the store holds.
	_ = m.backend.ConfigureWindow(c.ID, c.Size, c.Position, m.border)
}

func (m *Manager) handleFullscreen(event server.WindowEvent) {
	c, ok := m.store.Get(event.Window)
	if !ok {
		return
	}

	var target bool
	switch event.FullscreenAction {
	case server.FullscreenOn:
		target = true
	case server.FullscreenOff:
		target = false
	default:
		target = !c.Fullscreen
	}

	if !m.store.SetFullscreen(event.Window, target, m.screenSize) {
		return
	}
	if target {
		m.border = 0
	} else {
		m.border = m.cfg.BorderWidth
	}
	m.actionLog.LogAction("set_fullscreen", "window", event.Window, "on", target)
	m.relayout()
}

func (m *Manager) handleKeyPress(event server.WindowEvent) {
	cmd, ok := m.bindings[binding{key: event.Key, mods: event.Modifiers}]
	if !ok {
		return
	}
	m.Dispatch(cmd)
}
