package events

import "github.com/Vladimirbabic/vibestatus/internal/types"

// Event is anything the engine can announce to subscribers.
type Event interface {
	EventType() string
}

// StatusChanged is emitted when a cycle produces a snapshot that differs
// from the last published one.
type StatusChanged struct {
	Snapshot types.Snapshot `json:"snapshot"`
}

func (e StatusChanged) EventType() string { return "status_changed" }

// SoundRequested is emitted when a session transition asks for a sound.
// Subscribers decide whether and how to play it.
type SoundRequested struct {
	Sound string `json:"sound"`
}

func (e SoundRequested) EventType() string { return "sound_requested" }
