package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Vladimirbabic/vibestatus/internal/engine"
)

// Run starts the live status view on top of a started engine and blocks
// until the user quits.
func Run(eng *engine.Engine) error {
	p := tea.NewProgram(
		NewModel(eng),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("status view error: %w", err)
	}
	return nil
}
