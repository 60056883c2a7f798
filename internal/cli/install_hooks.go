package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// hookEvents lists the Claude Code hook points the status engine feeds on,
// keyed by Claude's setting name with the event name passed to __hook.
var hookEvents = map[string]string{
	"UserPromptSubmit": "user_prompt_submit",
	"PreToolUse":       "pre_tool_use",
	"PostToolUse":      "post_tool_use",
	"Notification":     "notification",
	"Stop":             "stop",
	"SubagentStop":     "subagent_stop",
}

// newInstallHooksCmd creates the 'vibestatus install-hooks' command.
func newInstallHooksCmd() *cobra.Command {
	var settingsPath string

	cmd := &cobra.Command{
		Use:   "install-hooks",
		Short: "Wire vibestatus into Claude Code's hook settings",
		Long: `Merge vibestatus hook entries into Claude Code's settings.json so every
session reports its activity. Existing settings are preserved; only the
vibestatus hook entries are added or updated.

Re-run this after moving the vibestatus binary.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := settingsPath
			if path == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					return fmt.Errorf("cannot locate home directory: %w", err)
				}
				path = filepath.Join(home, ".claude", "settings.json")
			}

			if err := installHooks(path); err != nil {
				return err
			}
			fmt.Printf("Installed vibestatus hooks into %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&settingsPath, "settings", "", "Claude settings.json path (default ~/.claude/settings.json)")

	return cmd
}

func installHooks(settingsPath string) error {
	settings := make(map[string]interface{})
	if data, err := os.ReadFile(settingsPath); err == nil {
		if err := json.Unmarshal(data, &settings); err != nil {
			return fmt.Errorf("existing settings file is not valid JSON: %w", err)
		}
	}

	hooks, _ := settings["hooks"].(map[string]interface{})
	if hooks == nil {
		hooks = make(map[string]interface{})
	}

	executable := executablePath()
	for settingName, eventName := range hookEvents {
		hooks[settingName] = []map[string]interface{}{
			{
				"matcher": "",
				"hooks": []map[string]interface{}{
					{
						"type":    "command",
						"command": fmt.Sprintf("%s __hook %s", executable, eventName),
					},
				},
			},
		}
	}
	settings["hooks"] = hooks

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(settingsPath), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	tempFile := settingsPath + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp settings file: %w", err)
	}
	if err := os.Rename(tempFile, settingsPath); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to replace settings file: %w", err)
	}
	return nil
}

// executablePath resolves the command hooks should invoke: the installed
// binary if one is on PATH, otherwise this process's own executable.
func executablePath() string {
	if path, err := exec.LookPath("vibestatus"); err == nil {
		return path
	}

	if execPath, err := os.Executable(); err == nil {
		// A go-build temp path would break the moment the cache is
		// cleared; fall through to the bare name instead.
		if !strings.Contains(execPath, "go-build") && !strings.Contains(execPath, os.TempDir()) {
			return execPath
		}
	}

	return "vibestatus"
}
