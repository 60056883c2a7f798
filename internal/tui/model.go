package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Vladimirbabic/vibestatus/internal/engine"
	"github.com/Vladimirbabic/vibestatus/internal/events"
	"github.com/Vladimirbabic/vibestatus/internal/types"
)

// Model is the bubbletea model for the live view. All state lives in the
// engine; the model just mirrors the latest published snapshot.
type Model struct {
	eng      *engine.Engine
	eventCh  <-chan events.Event
	snapshot types.Snapshot

	lastSound   string
	lastSoundAt time.Time

	width  int
	height int
}

type engineEventMsg struct {
	event events.Event
}

type engineClosedMsg struct{}

type tickMsg time.Time

// NewModel creates the view model, already subscribed to the engine.
func NewModel(eng *engine.Engine) Model {
	return Model{
		eng:      eng,
		eventCh:  eng.Subscribe(),
		snapshot: eng.Snapshot(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.listenForEvents(), tick())
}

// listenForEvents blocks on the engine's event channel.
func (m Model) listenForEvents() tea.Cmd {
	return func() tea.Msg {
		event, ok := <-m.eventCh
		if !ok {
			return engineClosedMsg{}
		}
		return engineEventMsg{event: event}
	}
}

// tick refreshes the relative timestamps once a second.
func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.eng.Refresh()
			return m, nil
		}
		return m, nil

	case engineEventMsg:
		switch event := msg.event.(type) {
		case events.StatusChanged:
			m.snapshot = event.Snapshot
		case events.SoundRequested:
			m.lastSound = event.Sound
			m.lastSoundAt = time.Now()
		}
		return m, m.listenForEvents()

	case engineClosedMsg:
		return m, tea.Quit

	case tickMsg:
		// Snapshot may have moved without a change event (lastSeen only).
		m.snapshot = m.eng.Snapshot()
		return m, tick()
	}

	return m, nil
}
