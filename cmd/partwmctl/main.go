// Command partwmctl is a thin IPC client for driving the partwm daemon
// from scripts or a shell, with one flag.FlagSet per subcommand.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/partwm/partwm/internal/ipc"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(2)
	}

	switch os.Args[1] {
	case "status":
		os.Exit(runStatus(os.Args[2:]))
	case "workspaces":
		os.Exit(runWorkspaces(os.Args[2:]))
	case "clients":
		os.Exit(runClients(os.Args[2:]))
	case "goto":
		os.Exit(runGoTo(os.Args[2:]))
	case "rotate":
		os.Exit(runRotate(os.Args[2:]))
	case "master":
		os.Exit(runMaster(os.Args[2:]))
	case "float":
		os.Exit(runFloat(os.Args[2:]))
	case "reload":
		os.Exit(runReload(os.Args[2:]))
	case "quit":
		os.Exit(runQuit(os.Args[2:]))
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
	fmt.Fprintln(w, "Usage: partwmctl <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  status               Show daemon status")
	fmt.Fprintln(w, "  workspaces           List workspace occupancy")
	fmt.Fprintln(w, "  clients              List every managed window")
	fmt.Fprintln(w, "  goto <index>         Switch to workspace <index>")
	fmt.Fprintln(w, "  rotate [east|west]   Rotate the current workspace")
	fmt.Fprintln(w, "  master <delta>       Nudge the master fraction by <delta>")
	fmt.Fprintln(w, "  float                Toggle floating on the focused window")
	fmt.Fprintln(w, "  reload               Ask the daemon to reload configuration")
	fmt.Fprintln(w, "  quit [--kill]        Shut down the daemon")
}

func runStatus(args []string) int {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return exitCode(err)
	}

	status, err := ipc.NewClient().GetStatus()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("current_workspace: %d\n", status.CurrentWorkspace)
	fmt.Printf("num_workspaces:    %d\n", status.NumWorkspaces)
	fmt.Printf("master_fraction:   %.2f\n", status.MasterFraction)
	fmt.Printf("tiled_count:       %d\n", status.TiledCount)
	fmt.Printf("floating_count:    %d\n", status.FloatingCount)
	if status.FocusedWindow != nil {
		fmt.Printf("focused_window:    %#x\n", *status.FocusedWindow)
	} else {
		fmt.Printf("focused_window:    (none)\n")
	}
	fmt.Printf("uptime_seconds:    %d\n", status.UptimeSeconds)
	return 0
}

func runWorkspaces(args []string) int {
	fs := flag.NewFlagSet("workspaces", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return exitCode(err)
	}

	data, err := ipc.NewClient().ListWorkspaces()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	for _, ws := range data.Workspaces {
		marker := " "
		if ws.IsCurrent {
			marker = "*"
		}
		fmt.Printf("%s %2d  master=%d aux=%d\n", marker, ws.Index, ws.MasterLen, ws.AuxLen)
	}
	return 0
}

func runClients(args []string) int {
	fs := flag.NewFlagSet("clients", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return exitCode(err)
	}

	data, err := ipc.NewClient().ListClients()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	for _, c := range data.Clients {
		state := "tiled"
		if c.Floating {
			state = "floating"
		}
		if c.Fullscreen {
			state += "+fullscreen"
		}
		fmt.Printf("%#x  %-8s %-8s %dx%d+%d+%d\n", c.Window, c.Kind, state, c.Width, c.Height, c.X, c.Y)
	}
	return 0
}

func runGoTo(args []string) int {
	fs := flag.NewFlagSet("goto", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return exitCode(err)
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: partwmctl goto <index>")
		return 2
	}
	var index int
	if _, err := fmt.Sscanf(fs.Arg(0), "%d", &index); err != nil {
		fmt.Fprintf(os.Stderr, "invalid workspace index %q\n", fs.Arg(0))
		return 2
	}
	if err := ipc.NewClient().GoToWorkspace(index); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runRotate(args []string) int {
	fs := flag.NewFlagSet("rotate", flag.ContinueOnError)
	n := fs.Int("n", 1, "number of workspaces to rotate")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return exitCode(err)
	}
	direction := "east"
	if fs.NArg() > 0 {
		direction = fs.Arg(0)
	}
	if direction != "east" && direction != "west" {
		fmt.Fprintln(os.Stderr, "direction must be \"east\" or \"west\"")
		return 2
	}
	if err := ipc.NewClient().RotateWorkspace(direction, *n); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runMaster(args []string) int {
	fs := flag.NewFlagSet("master", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return exitCode(err)
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: partwmctl master <delta>")
		return 2
	}
	var delta float64
	if _, err := fmt.Sscanf(fs.Arg(0), "%g", &delta); err != nil {
		fmt.Fprintf(os.Stderr, "invalid delta %q\n", fs.Arg(0))
		return 2
	}
	if err := ipc.NewClient().SetMasterFraction(delta); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runFloat(args []string) int {
	fs := flag.NewFlagSet("float", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return exitCode(err)
	}
	if err := ipc.NewClient().ToggleFloating(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runReload(args []string) int {
	fs := flag.NewFlagSet("reload", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return exitCode(err)
	}
	if err := ipc.NewClient().Reload(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runQuit(args []string) int {
	fs := flag.NewFlagSet("quit", flag.ContinueOnError)
	killClients := fs.Bool("kill", false, "kill all clients before shutting down")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return exitCode(err)
	}
	if err := ipc.NewClient().Quit(*killClients); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func exitCode(err error) int {
	if err == flag.ErrHelp {
		return 0
	}
	return 2
}
