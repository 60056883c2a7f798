package scanner

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Vladimirbabic/vibestatus/internal/clients/proc"
	"github.com/Vladimirbabic/vibestatus/internal/logging"
	"github.com/Vladimirbabic/vibestatus/internal/types"
)

// Scanner reads candidate status files from the shared directory and
// turns them into a session snapshot. It is the only core component
// that touches the filesystem: besides reading, it deletes files whose
// session is provably dead or stale, so the directory never accumulates
// orphans and a rescan of an unchanged directory is idempotent.
type Scanner struct {
	Dir     string
	Prefix  string
	Suffix  string
	Timeout time.Duration

	Proc proc.Checker
	log  *logrus.Entry
}

// New creates a Scanner. A nil checker defaults to the real one.
func New(dir, prefix, suffix string, timeout time.Duration, checker proc.Checker) *Scanner {
	if checker == nil {
		checker = proc.NewRealChecker()
	}
	return &Scanner{
		Dir:     dir,
		Prefix:  prefix,
		Suffix:  suffix,
		Timeout: timeout,
		Proc:    checker,
		log:     logging.ForComponent("scanner"),
	}
}

// Scan returns the live sessions found under the directory at time now,
// plus a count of files that failed to decode. Scan never returns an
// error: an unlistable directory yields an empty map and errorCount 1,
// and the caller's next cycle retries naturally.
func (s *Scanner) Scan(now time.Time) (map[string]types.Session, int) {
	sessions := make(map[string]types.Session)

	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		s.log.WithError(err).Debug("failed to list status directory")
		return sessions, 1
	}

	errorCount := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, s.Prefix) || !strings.HasSuffix(name, s.Suffix) {
			continue
		}

		path := filepath.Join(s.Dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			// Transient read failure; the next poll resolves it.
			errorCount++
			continue
		}

		// An empty file is a writer caught mid-write, not an error.
		if len(data) == 0 {
			continue
		}

		record, err := types.DecodeRecord(data, now)
		if err != nil {
			// Left on disk: the writer may still be finishing it.
			s.log.WithError(err).WithField("file", name).Debug("skipping undecodable status file")
			errorCount++
			continue
		}

		// A dead writer means the session crashed without a final update.
		// No owner_pid means assume alive.
		if record.OwnerPID > 0 && !s.Proc.IsAlive(record.OwnerPID) {
			s.remove(path, "owner process is gone")
			continue
		}

		if now.Sub(record.Timestamp) >= s.Timeout {
			s.remove(path, "session timed out")
			continue
		}

		sessions[name] = types.Session{
			ID:       name,
			Status:   record.State,
			Project:  record.Project,
			Message:  record.Message,
			LastSeen: record.Timestamp,
			OwnerPID: record.OwnerPID,
		}
	}

	return sessions, errorCount
}

// remove deletes a reclaimed status file. A repeat delete of an
// already-gone file is fine, so the error only gets logged.
func (s *Scanner) remove(path, reason string) {
	s.log.WithField("file", filepath.Base(path)).Debug("removing status file: " + reason)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.log.WithError(err).Debug("failed to remove status file")
	}
}
