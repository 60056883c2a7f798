// Package aggregate holds the pure reductions of the status core: the
// many-sessions-to-one-status rule and the transition-to-sound rule.
package aggregate

import "github.com/Vladimirbabic/vibestatus/internal/types"

// Aggregate reduces a session set to the single overall status, in
// strict priority order: needs_input beats working beats idle. An empty
// set means no worker is running at all.
func Aggregate(sessions map[string]types.Session) types.AggregateStatus {
	if len(sessions) == 0 {
		return types.AggregateNotRunning
	}

	anyWorking := false
	for _, s := range sessions {
		switch s.Status {
		case types.StateNeedsInput:
			// Nothing outranks a session asking the user to act.
			return types.AggregateNeedsInput
		case types.StateWorking:
			anyWorking = true
		}
	}
	if anyWorking {
		return types.AggregateWorking
	}
	return types.AggregateIdle
}
