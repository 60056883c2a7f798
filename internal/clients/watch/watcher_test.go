package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFSWatcher_NotifiesOnFileCreate(t *testing.T) {
	dir := t.TempDir()
	w, err := NewFSWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "vibestatus-a.json"), []byte("{}"), 0644))

	select {
	case <-w.Events():
	case <-time.After(2 * time.Second):
		t.Fatal("no notification within 2s of file creation")
	}
}

func TestFSWatcher_MissingDirectory(t *testing.T) {
	_, err := NewFSWatcher(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestMockWatcher_CoalescesNotifies(t *testing.T) {
	m := NewMockWatcher()
	for i := 0; i < 100; i++ {
		m.Notify() // must never block
	}
	select {
	case <-m.Events():
	default:
		t.Fatal("expected at least one pending event")
	}
}
