package sound

import (
	"fmt"
	"os/exec"
	"runtime"
	"sync"
)

// Player plays a named notification sound. Playback is fire-and-forget:
// callers never learn whether it succeeded.
type Player interface {
	Play(name string)
}

// ExecPlayer implements Player by shelling out to the platform's sound
// command (afplay on macOS, paplay elsewhere).
type ExecPlayer struct{}

// NewExecPlayer creates a new ExecPlayer.
func NewExecPlayer() *ExecPlayer {
	return &ExecPlayer{}
}

// Play starts playback of a system sound by name and returns immediately.
func (p *ExecPlayer) Play(name string) {
	if name == "" {
		return
	}

	var cmd *exec.Cmd
	if runtime.GOOS == "darwin" {
		cmd = exec.Command("afplay", fmt.Sprintf("/System/Library/Sounds/%s.aiff", name))
	} else {
		cmd = exec.Command("paplay", fmt.Sprintf("/usr/share/sounds/freedesktop/stereo/%s.oga", name))
	}

	// Errors are ignored; a missing sound file or player is not worth
	// interrupting the status loop for.
	_ = cmd.Start()
	if cmd.Process != nil {
		go cmd.Wait()
	}
}

// MockPlayer implements Player for testing and records every request.
type MockPlayer struct {
	mu     sync.Mutex
	Played []string
}

// NewMockPlayer creates a new MockPlayer.
func NewMockPlayer() *MockPlayer {
	return &MockPlayer{}
}

func (m *MockPlayer) Play(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Played = append(m.Played, name)
}

// Names returns a copy of the sounds played so far.
func (m *MockPlayer) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.Played...)
}
