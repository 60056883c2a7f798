package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// levelEnvVar overrides the default log level, e.g. VIBESTATUS_LOG_LEVEL=debug.
const levelEnvVar = "VIBESTATUS_LOG_LEVEL"

var base = newBase()

func newBase() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: false,
		FullTimestamp:    true,
	})

	// Quiet by default so the TUI and status output stay clean.
	log.SetLevel(logrus.WarnLevel)
	if raw := os.Getenv(levelEnvVar); raw != "" {
		if level, err := logrus.ParseLevel(raw); err == nil {
			log.SetLevel(level)
		}
	}
	return log
}

// ForComponent returns a logger entry tagged with the component name.
func ForComponent(name string) *logrus.Entry {
	return base.WithField("component", name)
}

// SetLevel adjusts the global log level, used by the --verbose flag.
func SetLevel(level logrus.Level) {
	base.SetLevel(level)
}
