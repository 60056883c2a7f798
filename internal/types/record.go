package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DefaultProject is used when a status file carries no project label.
const DefaultProject = "Unknown"

// StatusRecord is the decoded content of one on-disk status file.
// One file is written per session, by the session's hook process.
type StatusRecord struct {
	State     SessionState
	Message   string
	Timestamp time.Time
	Project   string
	OwnerPID  int
}

// rawRecord mirrors the JSON wire shape. Timestamp stays a string so a
// malformed value can be treated as absent rather than failing the whole
// record.
type rawRecord struct {
	State     string `json:"state"`
	Message   string `json:"message,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Project   string `json:"project,omitempty"`
	OwnerPID  int    `json:"owner_pid,omitempty"`
}

// DecodeRecord parses one status file's bytes. Empty input, malformed
// JSON, and an unrecognized state are decode errors. Optional fields fall
// back to their defaults: timestamp to now, project to DefaultProject.
func DecodeRecord(data []byte, now time.Time) (StatusRecord, error) {
	if len(data) == 0 {
		return StatusRecord{}, fmt.Errorf("empty status record")
	}

	var raw rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return StatusRecord{}, fmt.Errorf("malformed status record: %w", err)
	}

	state := SessionState(raw.State)
	if !state.IsValid() {
		return StatusRecord{}, fmt.Errorf("unknown session state %q", raw.State)
	}

	record := StatusRecord{
		State:     state,
		Message:   raw.Message,
		Project:   raw.Project,
		OwnerPID:  raw.OwnerPID,
		Timestamp: now,
	}
	if record.Project == "" {
		record.Project = DefaultProject
	}

	// Only the canonical Z-suffixed RFC3339 UTC format is accepted; a
	// numeric offset form or anything else counts as "timestamp absent",
	// not as a decode failure.
	if strings.HasSuffix(raw.Timestamp, "Z") {
		if ts, err := time.Parse(time.RFC3339, raw.Timestamp); err == nil {
			record.Timestamp = ts.UTC()
		}
	}

	return record, nil
}

// EncodeRecord serializes a record back to the on-disk JSON shape. The
// engine itself never writes status files; this is used by the hook
// command that seeds them.
func EncodeRecord(r StatusRecord) ([]byte, error) {
	raw := rawRecord{
		State:    string(r.State),
		Message:  r.Message,
		Project:  r.Project,
		OwnerPID: r.OwnerPID,
	}
	if !r.Timestamp.IsZero() {
		raw.Timestamp = r.Timestamp.UTC().Format(time.RFC3339)
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal status record: %w", err)
	}
	return data, nil
}
