package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Vladimirbabic/vibestatus/internal/types"
)

// newHookCmd creates the hidden hook command that Claude Code invokes.
func newHookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "__hook [event-type]",
		Aliases: []string{"hook"}, // alias for troubleshooting by hand
		Hidden:  true,
		Short:   "Internal hook handler for Claude Code events",
		Long: `This is an internal command wired into Claude Code's hook settings by
'vibestatus install-hooks'. It receives hook events on stdin and writes
the per-session status file the engine watches.

It should not need to be called manually.`,
		Args: cobra.ExactArgs(1),
		RunE: runHookCmd,
	}

	return cmd
}

// hookPayload is the part of Claude's hook JSON the status file needs.
type hookPayload struct {
	SessionID string `json:"session_id"`
	CWD       string `json:"cwd"`
	Message   string `json:"message"`
}

func runHookCmd(cmd *cobra.Command, args []string) error {
	eventType := args[0]

	var payload hookPayload
	if err := json.NewDecoder(os.Stdin).Decode(&payload); err != nil {
		// Some events carry no JSON body; proceed with what we have.
		payload = hookPayload{}
	}
	if payload.SessionID == "" {
		return fmt.Errorf("hook event %q carried no session_id", eventType)
	}

	record := types.StatusRecord{
		State:     stateForEvent(eventType, payload.Message),
		Message:   payload.Message,
		Timestamp: time.Now().UTC(),
		Project:   projectLabel(payload.CWD),
		OwnerPID:  os.Getppid(), // the Claude process that ran this hook
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := filepath.Join(cfg.Directory, cfg.FilePrefix+payload.SessionID+cfg.FileSuffix)
	return writeStatusFile(path, record)
}

// stateForEvent maps a Claude hook event to the session state it implies.
func stateForEvent(eventType, message string) types.SessionState {
	switch eventType {
	case "user_prompt_submit", "pre_tool_use", "post_tool_use", "pre_compact":
		return types.StateWorking
	case "notification":
		// Notifications are how Claude asks for permission or input.
		return types.StateNeedsInput
	case "stop", "subagent_stop":
		return types.StateIdle
	default:
		if strings.Contains(strings.ToLower(message), "permission") {
			return types.StateNeedsInput
		}
		return types.StateIdle
	}
}

// projectLabel derives the display label from the session's working
// directory.
func projectLabel(cwd string) string {
	if cwd == "" {
		return ""
	}
	return filepath.Base(cwd)
}

// writeStatusFile writes the record atomically so the engine never reads
// a half-written file as anything but empty or malformed-and-skipped.
func writeStatusFile(path string, record types.StatusRecord) error {
	data, err := types.EncodeRecord(record)
	if err != nil {
		return err
	}

	tempFile := path + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp status file: %w", err)
	}
	if err := os.Rename(tempFile, path); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to rename temp status file: %w", err)
	}
	return nil
}
