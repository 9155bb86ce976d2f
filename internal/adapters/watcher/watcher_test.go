package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/arduino2nix/internal/adapters/watcher"
	"go.trai.ch/arduino2nix/internal/core/domain"
	"go.trai.ch/arduino2nix/internal/core/ports"
)

func TestWatcher_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, domain.SketchFileName)
	require.NoError(t, os.WriteFile(path, []byte("profiles: {}\n"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := watcher.NewWatcher(nil)
	require.NoError(t, w.Start(ctx, dir))
	t.Cleanup(func() { _ = w.Stop() })

	require.NoError(t, os.WriteFile(path, []byte("profiles: {}\n# changed\n"), 0o600))

	got := make(chan ports.WatchEvent, 1)
	go func() {
		for event := range w.Events() {
			if event.Path == path {
				got <- event
				return
			}
		}
	}()

	select {
	case event := <-got:
		assert.Contains(t, []ports.WatchOp{ports.OpWrite, ports.OpCreate}, event.Operation)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for sketch.yaml")
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := watcher.NewWatcher(nil)

	err := w.Start(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, domain.ErrWatchFailed)
	assert.NoError(t, w.Stop())
}

func TestWatcher_StartTwice(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := watcher.NewWatcher(nil)
	require.NoError(t, w.Start(ctx, t.TempDir()))
	t.Cleanup(func() { _ = w.Stop() })

	require.ErrorIs(t, w.Start(ctx, t.TempDir()), domain.ErrWatchFailed)
}

func TestWatcher_EventsEndOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	w := watcher.NewWatcher(nil)
	require.NoError(t, w.Start(ctx, t.TempDir()))
	t.Cleanup(func() { _ = w.Stop() })

	done := make(chan struct{})
	go func() {
		for range w.Events() {
		}
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("events did not end after cancellation")
	}
}
