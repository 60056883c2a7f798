package types

import "time"

// Session is the in-memory view of one tracked worker instance. Identity
// is the source file's name, which stays stable across polls for as long
// as the file exists under that name.
type Session struct {
	ID       string       `json:"id"`
	Status   SessionState `json:"status"`
	Project  string       `json:"project"`
	Message  string       `json:"message,omitempty"`
	LastSeen time.Time    `json:"last_seen"`
	OwnerPID int          `json:"owner_pid,omitempty"`
}

// Snapshot is the state published after each engine cycle: the aggregate
// status plus the session list sorted by project then id.
type Snapshot struct {
	Aggregate          AggregateStatus `json:"aggregate"`
	Sessions           []Session       `json:"sessions"`
	ActiveSessionCount int             `json:"active_session_count"`
	ScanErrors         int             `json:"scan_errors,omitempty"`
}

// Changed reports whether s differs from prev in a way a presentation
// layer cares about. LastSeen and Message move on every hook write, so
// they are deliberately excluded to keep redraw churn down.
func (s Snapshot) Changed(prev Snapshot) bool {
	if s.Aggregate != prev.Aggregate || len(s.Sessions) != len(prev.Sessions) {
		return true
	}
	for i, sess := range s.Sessions {
		p := prev.Sessions[i]
		if sess.ID != p.ID || sess.Status != p.Status || sess.Project != p.Project {
			return true
		}
	}
	return false
}
