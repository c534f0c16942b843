package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, cfg Config) (*Watcher, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	w := NewWatcher(cfg)
	require.NoError(t, w.Start(ctx))
	t.Cleanup(cancel)
	return w, cancel
}

func nextEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case e, ok := <-w.Events():
		require.True(t, ok, "events channel closed")
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestWatcherReportsMatchingChanges(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "figures"), 0755))
	manifest := filepath.Join(root, "aastex.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte("title: a\n"), 0644))

	w, _ := startWatcher(t, Config{
		Root:     root,
		Patterns: []string{"aastex.yaml", "figures/**/*.png"},
	})

	// Ignored: does not match.
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(manifest, []byte("title: b\n"), 0644))

	e := nextEvent(t, w)
	assert.Equal(t, "aastex.yaml", e.Path)
	assert.Equal(t, EventModify, e.Type)
	assert.Equal(t, "MODIFY aastex.yaml", e.String())

	require.NoError(t, os.WriteFile(filepath.Join(root, "figures", "a.png"), []byte("png"), 0644))
	e = nextEvent(t, w)
	assert.Equal(t, "figures/a.png", e.Path)
}

func TestWatcherFollowsNewDirectories(t *testing.T) {
	root := t.TempDir()
	w, _ := startWatcher(t, Config{Root: root, Patterns: []string{"**/*.pdf"}})

	sub := filepath.Join(root, "figures", "run1")
	require.NoError(t, os.MkdirAll(sub, 0755))
	// Give the watcher time to register the new directories.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(sub, "plot.pdf"), []byte("%PDF"), 0644))

	assert.Equal(t, "figures/run1/plot.pdf", nextEvent(t, w).Path)
}

func TestWatcherDebounces(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "aastex.yaml")
	w, _ := startWatcher(t, Config{Root: root, Debounce: 200 * time.Millisecond})

	for i := range 5 {
		require.NoError(t, os.WriteFile(target, []byte{byte('a' + i)}, 0644))
	}

	assert.Equal(t, "aastex.yaml", nextEvent(t, w).Path)
	select {
	case e := <-w.Events():
		t.Fatalf("unexpected second event %v", e)
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatcherStops(t *testing.T) {
	root := t.TempDir()
	w, cancel := startWatcher(t, Config{Root: root})
	cancel()

	select {
	case _, ok := <-w.Events():
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("events channel not closed after cancel")
	}
}

func TestWatcherRejectsBadPattern(t *testing.T) {
	w := NewWatcher(Config{Root: t.TempDir(), Patterns: []string{"[unclosed"}})
	assert.Error(t, w.Start(context.Background()))
}

func TestWatcherIgnoresAtomicTempFiles(t *testing.T) {
	w := NewWatcher(Config{Root: t.TempDir()})
	assert.False(t, w.match("aastex-write-12345"))
	assert.True(t, w.match("paper.tex"))
}

func TestDebouncerStopDropsPending(t *testing.T) {
	d := newDebouncer(time.Hour)
	fired := false
	d.add(Event{Path: "a"}, func(Event) { fired = true })
	d.stopAndWait(time.Second)
	d.add(Event{Path: "b"}, func(Event) { fired = true })
	assert.False(t, fired)
}
