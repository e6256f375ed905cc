package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitReload(t *testing.T, ch <-chan Reload) Reload {
	t.Helper()
	select {
	case r, ok := <-ch:
		require.True(t, ok, "channel closed")
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
		return Reload{}
	}
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tui:\n  start_path: /\n"), 0o644))

	w, err := NewWatcher(path, "/data")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.NoError(t, os.WriteFile(path, []byte("tui:\n  start_path: /grader\n"), 0o644))

	r := waitReload(t, w.Changes())
	require.NoError(t, r.Err)
	require.NotNil(t, r.Config)
	assert.Equal(t, "/grader", r.Config.TUI.StartPath)
	assert.Equal(t, "/data", r.Config.DataDir)
}

func TestWatcher_ReportsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	w, err := NewWatcher(path, "/data")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.NoError(t, os.WriteFile(path, []byte("tui:\n  theme: neon\n"), 0o644))

	r := waitReload(t, w.Changes())
	require.Error(t, r.Err)
	assert.Nil(t, r.Config)
}

func TestWatcher_ClosesOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	w, err := NewWatcher(path, "/data")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	_, ok := <-w.Changes()
	assert.False(t, ok)
}

func TestNewWatcher_MissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "config.yaml"), "/data")
	require.Error(t, err)
}
