package proc

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRealChecker_IsAlive(t *testing.T) {
	checker := NewRealChecker()

	assert.True(t, checker.IsAlive(os.Getpid()), "our own process is alive")
	assert.False(t, checker.IsAlive(0))
	assert.False(t, checker.IsAlive(-1))

	// PIDs near the typical pid_max are very unlikely to exist.
	assert.False(t, checker.IsAlive(4194000))
}

func TestRealChecker_IsFamilyRunning_EmptyPattern(t *testing.T) {
	checker := NewRealChecker()
	assert.False(t, checker.IsFamilyRunning(""))
}

func TestMockChecker(t *testing.T) {
	checker := NewMockChecker()

	assert.False(t, checker.IsAlive(42))
	checker.AlivePIDs[42] = true
	assert.True(t, checker.IsAlive(42))

	assert.False(t, checker.IsFamilyRunning("claude"))
	checker.FamilyRunning = true
	assert.True(t, checker.IsFamilyRunning("claude"))
}
