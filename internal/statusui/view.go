package statusui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := headerStyle.Width(m.width).Render("partwm status")

	var body string
	switch {
	case !m.connected && m.lastErr != nil:
		body = errorStyle.Render(fmt.Sprintf("daemon unreachable: %v", m.lastErr))
	case m.status == nil:
		body = dimStyle.Render("connecting...")
	default:
		body = m.renderStatus()
	}

	help := helpStyle.Width(m.width).Render("q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", help)
}

func (m Model) renderStatus() string {
	s := m.status
	var b strings.Builder

	conn := errorStyle.Render("disconnected")
	if m.connected {
		conn = connectedStyle.Render("connected")
	}
	fmt.Fprintf(&b, "daemon: %s   uptime: %s\n", conn, formatUptime(s.UptimeSeconds))
	fmt.Fprintf(&b, "master fraction: %.2f   tiled: %d   floating: %d\n", s.MasterFraction, s.TiledCount, s.FloatingCount)
	if s.FocusedWindow != nil {
		fmt.Fprintf(&b, "focused window: %#x\n", *s.FocusedWindow)
	} else {
		fmt.Fprintf(&b, "focused window: (none)\n")
	}
	b.WriteString("\n")

	var row strings.Builder
	for _, ws := range m.workspaces {
		label := fmt.Sprintf(" %d [%d|%d] ", ws.Index, ws.MasterLen, ws.AuxLen)
		if ws.IsCurrent {
			row.WriteString(currentWSStyle.Render(label))
		} else {
			row.WriteString(otherWSStyle.Render(label))
		}
		row.WriteString(" ")
	}
	b.WriteString(row.String())

	return b.String()
}

func formatUptime(seconds int64) string {
	d := seconds
	h := d / 3600
	m := (d % 3600) / 60
	s := d % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
