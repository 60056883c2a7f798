package aggregate

import "github.com/Vladimirbabic/vibestatus/internal/types"

// Transitions reports which notification sounds the current cycle asks
// for. Both flags can be set when different sessions transitioned in the
// same cycle; the engine gives needs_input priority for the single sound
// it actually requests.
type Transitions struct {
	PlayIdleSound       bool
	PlayNeedsInputSound bool
}

// DetectTransitions compares the previous per-session statuses against
// the current ones. Only a transition away from working fires: a session
// that appears directly as idle or needs_input, or that flips between
// those two without passing through working, stays silent.
func DetectTransitions(previous, current map[string]types.SessionState) Transitions {
	var t Transitions
	for id, status := range current {
		prev, seen := previous[id]
		if !seen || prev != types.StateWorking {
			continue
		}
		switch status {
		case types.StateIdle:
			t.PlayIdleSound = true
		case types.StateNeedsInput:
			t.PlayNeedsInputSound = true
		}
	}
	return t
}
