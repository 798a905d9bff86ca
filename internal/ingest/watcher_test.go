package ingest

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartWatcherRequiresRoots(t *testing.T) {
	_, _, err := StartWatcher(context.Background(), WatchConfig{}, nil)
	require.Error(t, err)
}

func TestStartWatcherInitialScan(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.pdf"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.exe"), []byte("c"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	evCh, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{dir}, InitialScan: true}, logger)
	require.NoError(t, err)

	// Initial-scan events are buffered during StartWatcher itself.
	var got []string
	timeout := time.After(2 * time.Second)
	for len(got) < 2 {
		select {
		case p := <-evCh:
			got = append(got, filepath.Base(p))
		case <-timeout:
			t.Fatalf("timed out; got %v", got)
		}
	}
	sort.Strings(got)
	assert.Equal(t, []string{"a.txt", "b.pdf"}, got)
}

func TestStartWatcherDebouncedBurst(t *testing.T) {
	dir := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	evCh, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: 25 * time.Millisecond,
	}, logger)
	require.NoError(t, err)

	// A rapid write burst on one file should coalesce into a delivery
	// after the debounce window.
	path := filepath.Join(dir, "doc.txt")
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("rev"), 0o644))
		time.Sleep(3 * time.Millisecond)
	}

	select {
	case p := <-evCh:
		assert.Equal(t, path, p)
	case <-time.After(2 * time.Second):
		t.Fatal("no event after debounce window")
	}
}

func TestWatcherAllowed(t *testing.T) {
	exts := map[string]struct{}{"txt": {}, "pdf": {}}
	assert.True(t, allowed("/in/doc.txt", exts))
	assert.True(t, allowed("/in/DOC.PDF", exts))
	assert.False(t, allowed("/in/doc.exe", exts))
	assert.False(t, allowed("/in/README", exts))
}
