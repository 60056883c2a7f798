// Package format renders statuses and times for terminal output. It is
// shared by the one-shot status command and the live view.
package format

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Vladimirbabic/vibestatus/internal/types"
)

var (
	workingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	idleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	needsInputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	notRunningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// SessionStatus renders a session state with its icon and color.
func SessionStatus(s types.SessionState) string {
	switch s {
	case types.StateWorking:
		return workingStyle.Render("● working")
	case types.StateIdle:
		return idleStyle.Render("● idle")
	case types.StateNeedsInput:
		return needsInputStyle.Render("● needs input")
	default:
		return notRunningStyle.Render("● unknown")
	}
}

// Aggregate renders the overall status line.
func Aggregate(a types.AggregateStatus) string {
	switch a {
	case types.AggregateWorking:
		return workingStyle.Render("working")
	case types.AggregateIdle:
		return idleStyle.Render("idle")
	case types.AggregateNeedsInput:
		return needsInputStyle.Render("needs input")
	default:
		return notRunningStyle.Render("not running")
	}
}

// Activity formats how long ago a session was last seen.
func Activity(lastSeen time.Time) string {
	if lastSeen.IsZero() {
		return "never"
	}
	return Duration(time.Since(lastSeen)) + " ago"
}

// Duration formats a duration in a human-readable way.
func Duration(d time.Duration) string {
	if d < time.Minute {
		return "just now"
	} else if d < time.Hour {
		minutes := int(d.Minutes())
		if minutes == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", minutes)
	} else if d < 24*time.Hour {
		hours := int(d.Hours())
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}
	days := int(d.Hours() / 24)
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

// Pad pads or truncates plain text to the given visual width, respecting
// wide runes. Not safe for styled strings; use PadStyled for those.
func Pad(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w > width {
		return runewidth.Truncate(s, width, "…")
	}
	return s + fmt.Sprintf("%*s", width-w, "")
}

// PadStyled pads an already-styled string to the given visual width,
// measuring through the embedded ANSI sequences.
func PadStyled(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + fmt.Sprintf("%*s", width-w, "")
}
