// Command partwm is the window manager daemon: connecting to the X
// server, adopting any already-mapped windows, registering hotkeys and
// starting the IPC control-plane server and drift reconciler before
// entering the event loop.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/partwm/partwm/internal/actionlog"
	"github.com/partwm/partwm/internal/backend/x11"
	"github.com/partwm/partwm/internal/config"
	"github.com/partwm/partwm/internal/daemon"
	"github.com/partwm/partwm/internal/hotkeys"
	"github.com/partwm/partwm/internal/ipc"
	"github.com/partwm/partwm/internal/launcher"
	"github.com/partwm/partwm/internal/mcpserver"
	"github.com/partwm/partwm/internal/statusui"
	"github.com/partwm/partwm/internal/wm"
)

func main() {
	if len(os.Args) < 2 {
		os.Exit(runDaemon())
	}

	switch os.Args[1] {
	case "daemon", "":
		os.Exit(runDaemon())
	case "status":
		os.Exit(runStatus())
	case "mcp":
		os.Exit(runMCP())
	case "help", "-h", "--help":
		printUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage(os.Stderr)
		os.Exit(2)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: partwm [command]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  daemon   Run the window manager (default)")
	fmt.Fprintln(w, "  status   Show a live status dashboard")
	fmt.Fprintln(w, "  mcp      Run the introspection MCP server on stdio")
}

func runDaemon() int {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("loading configuration", "error", err)
		return 1
	}
	if cfg.TerminalCommand.Program == "" {
		if path, ok := launcher.Detect(); ok {
			logger.Info("no terminal_command configured, detected one on $PATH", "terminal", path)
			cfg.TerminalCommand = config.Command{Program: path}
		}
	}

	backend, err := x11.New()
	if err != nil {
		logger.Error("connecting to X server", "error", err)
		return 1
	}
	defer backend.Close()

	wmCfg := wm.Config{
		NumWorkspaces:       cfg.NumWorkspaces,
		ModKey:              hotkeys.ModifierFor(cfg.ModKey),
		Gap:                 cfg.Gap,
		BorderWidth:         cfg.BorderWidth,
		ActiveBorderColor:   cfg.ActiveWindowBorderColor,
		InactiveBorderColor: cfg.InactiveWindowBorderColor,
		TerminalCommand:     cfg.TerminalCommand.Argv(),
		KillClientsOnExit:   cfg.KillClientsOnExit,
	}

	manager, err := wm.NewManager(backend, wmCfg, logger)
	if err != nil {
		logger.Error("constructing window manager core", "error", err)
		return 1
	}

	if cfg.Logging.Enabled {
		actionLogger, err := actionlog.New(cfg.Logging)
		if err != nil {
			logger.Warn("action log disabled", "error", err)
		} else {
			defer actionLogger.Close()
			manager.SetActionLogger(actionLogger)
		}
	}

	if err := hotkeys.RegisterAll(cfg, manager, backend); err != nil {
		logger.Error("registering hotkeys", "error", err)
		return 1
	}

	if err := manager.Adopt(); err != nil {
		logger.Error("adopting existing windows", "error", err)
		return 1
	}

	ipcServer, err := ipc.NewServer(manager, logger)
	if err != nil {
		logger.Error("starting IPC server", "error", err)
		return 1
	}
	if err := ipcServer.Start(); err != nil {
		logger.Error("starting IPC server", "error", err)
		return 1
	}
	defer ipcServer.Stop()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	interval := time.Duration(cfg.ReconcileIntervalSeconds) * time.Second
	reconciler := daemon.New(backend, manager, interval, logger)
	go reconciler.Run(ctx)

	logger.Info("partwm daemon started", "workspaces", cfg.NumWorkspaces)
	if err := manager.Run(ctx); err != nil {
		logger.Error("window manager stopped", "error", err)
		return 1
	}
	return 0
}

func runStatus() int {
	if err := statusui.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runMCP() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := mcpserver.NewServer().Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
