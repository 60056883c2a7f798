package types

// SessionState represents the activity state a session reports in its
// status file.
type SessionState string

const (
	StateWorking    SessionState = "working"     // actively processing or using tools
	StateIdle       SessionState = "idle"        // finished, ready for a new task
	StateNeedsInput SessionState = "needs_input" // waiting on the user to act
)

// IsValid reports whether s is one of the recognized session states.
func (s SessionState) IsValid() bool {
	switch s {
	case StateWorking, StateIdle, StateNeedsInput:
		return true
	}
	return false
}

// AggregateStatus is the single overall status derived from all sessions.
type AggregateStatus string

const (
	AggregateWorking    AggregateStatus = "working"
	AggregateIdle       AggregateStatus = "idle"
	AggregateNeedsInput AggregateStatus = "needs_input"
	AggregateNotRunning AggregateStatus = "not_running" // no sessions at all
)
