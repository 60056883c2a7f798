package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecord(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("full record", func(t *testing.T) {
		data := []byte(`{
			"state": "working",
			"message": "editing files",
			"timestamp": "2025-06-01T11:59:30Z",
			"project": "vibestatus",
			"owner_pid": 4242
		}`)

		record, err := DecodeRecord(data, now)
		require.NoError(t, err)
		assert.Equal(t, StateWorking, record.State)
		assert.Equal(t, "editing files", record.Message)
		assert.Equal(t, time.Date(2025, 6, 1, 11, 59, 30, 0, time.UTC), record.Timestamp)
		assert.Equal(t, "vibestatus", record.Project)
		assert.Equal(t, 4242, record.OwnerPID)
	})

	t.Run("defaults for optional fields", func(t *testing.T) {
		record, err := DecodeRecord([]byte(`{"state": "idle"}`), now)
		require.NoError(t, err)
		assert.Equal(t, StateIdle, record.State)
		assert.Equal(t, now, record.Timestamp)
		assert.Equal(t, DefaultProject, record.Project)
		assert.Zero(t, record.OwnerPID)
	})

	t.Run("unknown fields ignored", func(t *testing.T) {
		record, err := DecodeRecord([]byte(`{"state": "needs_input", "extra": true, "color": "red"}`), now)
		require.NoError(t, err)
		assert.Equal(t, StateNeedsInput, record.State)
	})

	t.Run("bad timestamp treated as absent", func(t *testing.T) {
		record, err := DecodeRecord([]byte(`{"state": "working", "timestamp": "yesterday at noon"}`), now)
		require.NoError(t, err)
		assert.Equal(t, now, record.Timestamp)
	})

	t.Run("offset timestamp treated as absent", func(t *testing.T) {
		// Only the canonical Z form is accepted, even when the offset
		// would parse to the same instant.
		for _, raw := range []string{
			`{"state": "working", "timestamp": "2025-06-01T13:59:30+02:00"}`,
			`{"state": "working", "timestamp": "2025-06-01T11:59:30+00:00"}`,
		} {
			record, err := DecodeRecord([]byte(raw), now)
			require.NoError(t, err)
			assert.Equal(t, now, record.Timestamp)
		}
	})

	t.Run("empty input rejected", func(t *testing.T) {
		_, err := DecodeRecord(nil, now)
		assert.Error(t, err)
	})

	t.Run("malformed JSON rejected", func(t *testing.T) {
		_, err := DecodeRecord([]byte(`{"state": "work`), now)
		assert.Error(t, err)
	})

	t.Run("unrecognized state rejected", func(t *testing.T) {
		_, err := DecodeRecord([]byte(`{"state": "sleeping"}`), now)
		assert.Error(t, err)
	})

	t.Run("missing state rejected", func(t *testing.T) {
		_, err := DecodeRecord([]byte(`{"message": "hi"}`), now)
		assert.Error(t, err)
	})
}

func TestRecordRoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	original := StatusRecord{
		State:     StateNeedsInput,
		Message:   "waiting for permission",
		Timestamp: time.Date(2025, 6, 1, 11, 58, 0, 0, time.UTC),
		Project:   "demo",
		OwnerPID:  99,
	}

	data, err := EncodeRecord(original)
	require.NoError(t, err)

	decoded, err := DecodeRecord(data, now)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestSessionStateIsValid(t *testing.T) {
	assert.True(t, StateWorking.IsValid())
	assert.True(t, StateIdle.IsValid())
	assert.True(t, StateNeedsInput.IsValid())
	assert.False(t, SessionState("").IsValid())
	assert.False(t, SessionState("complete").IsValid())
}
