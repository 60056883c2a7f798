package proc

import (
	"os"
	"strings"
	"syscall"

	"github.com/shirou/gopsutil/v3/process"
)

// Checker defines the process liveness operations the engine needs.
type Checker interface {
	// IsAlive reports whether a process with the given PID is running.
	IsAlive(pid int) bool
	// IsFamilyRunning reports whether any process whose name or command
	// line contains pattern is currently running.
	IsFamilyRunning(pattern string) bool
}

// RealChecker implements Checker against the local machine.
type RealChecker struct{}

// NewRealChecker creates a new RealChecker.
func NewRealChecker() *RealChecker {
	return &RealChecker{}
}

// IsAlive checks a PID by sending signal 0. EPERM means the process
// exists but belongs to someone else, which still counts as alive.
func (r *RealChecker) IsAlive(pid int) bool {
	if pid <= 0 {
		return false
	}

	// On Unix FindProcess never fails for a valid-looking PID.
	p, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	err = p.Signal(syscall.Signal(0))
	return err == nil || os.IsPermission(err)
}

// IsFamilyRunning scans the process table for pattern in the process
// name or command line. A scan failure is treated as "not running"; the
// caller polls, so the next probe gets another chance.
func (r *RealChecker) IsFamilyRunning(pattern string) bool {
	if pattern == "" {
		return false
	}

	procs, err := process.Processes()
	if err != nil {
		return false
	}

	for _, p := range procs {
		if name, err := p.Name(); err == nil && strings.Contains(name, pattern) {
			return true
		}
		if cmdline, err := p.Cmdline(); err == nil && strings.Contains(cmdline, pattern) {
			return true
		}
	}
	return false
}

// MockChecker implements Checker for testing.
type MockChecker struct {
	AlivePIDs     map[int]bool
	FamilyRunning bool
}

// NewMockChecker creates a MockChecker with no live processes.
func NewMockChecker() *MockChecker {
	return &MockChecker{AlivePIDs: make(map[int]bool)}
}

func (m *MockChecker) IsAlive(pid int) bool {
	return m.AlivePIDs[pid]
}

func (m *MockChecker) IsFamilyRunning(pattern string) bool {
	return m.FamilyRunning
}
