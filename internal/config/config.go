package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds every tunable of the status engine. All fields have
// working defaults; a TOML file at ~/.config/vibestatus/config.toml can
// override any of them, and CLI flags override the file.
type Config struct {
	Directory  string `toml:"directory"`
	FilePrefix string `toml:"file_prefix"`
	FileSuffix string `toml:"file_suffix"`

	PollIntervalMS         int `toml:"poll_interval_ms"`
	ProcessCheckIntervalMS int `toml:"process_check_interval_ms"`
	DebounceMS             int `toml:"debounce_ms"`
	SessionTimeoutSeconds  int `toml:"session_timeout_seconds"`

	IdleSound       string `toml:"idle_sound"`
	NeedsInputSound string `toml:"needs_input_sound"`

	// ProcessPattern identifies the worker process family for the
	// not_running fallback probe.
	ProcessPattern string `toml:"process_pattern"`
}

// Default returns the built-in configuration.
func Default() Config {
	idleSound, needsInputSound := defaultSounds()
	return Config{
		Directory:              os.TempDir(),
		FilePrefix:             "vibestatus-",
		FileSuffix:             ".json",
		PollIntervalMS:         500,
		ProcessCheckIntervalMS: 2000,
		DebounceMS:             100,
		SessionTimeoutSeconds:  300,
		IdleSound:              idleSound,
		NeedsInputSound:        needsInputSound,
		ProcessPattern:         "claude",
	}
}

// defaultSounds picks ids that exist on the platform's sound theme:
// macOS system sounds, or the freedesktop stereo theme elsewhere.
func defaultSounds() (idle, needsInput string) {
	if runtime.GOOS == "darwin" {
		return "Glass", "Funk"
	}
	return "complete", "bell"
}

// Load returns the defaults overlaid with the user's config file, if one
// exists. A missing file is not an error; an unreadable one is.
func Load() (Config, error) {
	cfg := Default()

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil
	}

	path := filepath.Join(home, ".config", "vibestatus", "config.toml")
	if _, err := os.Stat(path); err != nil {
		return cfg, nil
	}
	return LoadFile(path)
}

// LoadFile returns the defaults overlaid with the given TOML file.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

func (c Config) ProcessCheckInterval() time.Duration {
	return time.Duration(c.ProcessCheckIntervalMS) * time.Millisecond
}

func (c Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

func (c Config) SessionTimeout() time.Duration {
	return time.Duration(c.SessionTimeoutSeconds) * time.Second
}
