package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Vladimirbabic/vibestatus/internal/format"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Margin(0, 0, 1, 0)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Margin(1, 0, 0, 0)

	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	soundStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
)

// View renders the entire live view.
func (m Model) View() string {
	var b strings.Builder

	title := fmt.Sprintf("vibestatus · %s", format.Aggregate(m.snapshot.Aggregate))
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	if m.snapshot.ActiveSessionCount == 0 {
		b.WriteString(messageStyle.Render("No active sessions."))
		b.WriteString("\n")
	} else {
		for _, s := range m.snapshot.Sessions {
			line := fmt.Sprintf("%s %s %s",
				format.Pad(s.Project, 24),
				format.PadStyled(format.SessionStatus(s.Status), 16),
				format.Activity(s.LastSeen))
			b.WriteString(line)
			if s.Message != "" {
				b.WriteString("  " + messageStyle.Render(truncate(s.Message, 48)))
			}
			b.WriteString("\n")
		}
	}

	if m.lastSound != "" && time.Since(m.lastSoundAt) < 5*time.Second {
		b.WriteString(soundStyle.Render(fmt.Sprintf("♪ %s", m.lastSound)))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("r refresh · q quit"))
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
