package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotChanged(t *testing.T) {
	base := Snapshot{
		Aggregate: AggregateWorking,
		Sessions: []Session{
			{ID: "a.json", Status: StateWorking, Project: "alpha"},
		},
		ActiveSessionCount: 1,
	}

	t.Run("identical", func(t *testing.T) {
		assert.False(t, base.Changed(base))
	})

	t.Run("lastSeen movement is not a change", func(t *testing.T) {
		next := base
		next.Sessions = []Session{
			{ID: "a.json", Status: StateWorking, Project: "alpha", LastSeen: time.Now()},
		}
		assert.False(t, next.Changed(base))
	})

	t.Run("status change", func(t *testing.T) {
		next := base
		next.Aggregate = AggregateIdle
		next.Sessions = []Session{
			{ID: "a.json", Status: StateIdle, Project: "alpha"},
		}
		assert.True(t, next.Changed(base))
	})

	t.Run("session added", func(t *testing.T) {
		next := base
		next.Sessions = append([]Session{}, base.Sessions...)
		next.Sessions = append(next.Sessions, Session{ID: "b.json", Status: StateIdle, Project: "beta"})
		assert.True(t, next.Changed(base))
	})
}
