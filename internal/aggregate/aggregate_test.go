package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Vladimirbabic/vibestatus/internal/types"
)

func sessions(states ...types.SessionState) map[string]types.Session {
	out := make(map[string]types.Session, len(states))
	for i, s := range states {
		id := string(rune('a'+i)) + ".json"
		out[id] = types.Session{ID: id, Status: s}
	}
	return out
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]types.Session
		want types.AggregateStatus
	}{
		{"empty set", sessions(), types.AggregateNotRunning},
		{"single working", sessions(types.StateWorking), types.AggregateWorking},
		{"single idle", sessions(types.StateIdle), types.AggregateIdle},
		{"single needs input", sessions(types.StateNeedsInput), types.AggregateNeedsInput},
		{"needs input beats working", sessions(types.StateWorking, types.StateNeedsInput), types.AggregateNeedsInput},
		{"needs input beats everything", sessions(types.StateIdle, types.StateWorking, types.StateNeedsInput), types.AggregateNeedsInput},
		{"working beats idle", sessions(types.StateIdle, types.StateWorking, types.StateIdle), types.AggregateWorking},
		{"all idle", sessions(types.StateIdle, types.StateIdle), types.AggregateIdle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Aggregate(tt.in))
		})
	}
}
