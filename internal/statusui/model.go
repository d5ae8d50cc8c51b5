// Package statusui renders a read-only terminal dashboard of the
// daemon's live state, polling internal/ipc on a timer.
package statusui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/partwm/partwm/internal/ipc"
)

const pollInterval = time.Second

var (
	connectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true)
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62")).Bold(true).Padding(0, 1)
	currentWSStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62")).Padding(0, 1)
	otherWSStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")).Padding(0, 1)
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
)

type tickMsg time.Time

type statusMsg struct {
	status     *ipc.StatusData
	workspaces *ipc.WorkspacesData
	err        error
}

// Model is the bubbletea model for the status dashboard.
type Model struct {
	client *ipc.Client

	connected  bool
	lastErr    error
	status     *ipc.StatusData
	workspaces []ipc.WorkspaceSummary

	width  int
	height int
}

// New constructs a status dashboard model backed by the default IPC socket.
func New() Model {
	return Model{client: ipc.NewClient()}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.poll(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) poll() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		status, err := client.GetStatus()
		if err != nil {
			return statusMsg{err: err}
		}
		workspaces, err := client.ListWorkspaces()
		if err != nil {
			return statusMsg{err: err}
		}
		return statusMsg{status: status, workspaces: workspaces}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.poll(), tick())

	case statusMsg:
		if msg.err != nil {
			m.connected = false
			m.lastErr = msg.err
			return m, nil
		}
		m.connected = true
		m.lastErr = nil
		m.status = msg.status
		m.workspaces = msg.workspaces.Workspaces
		return m, nil
	}
	return m, nil
}
