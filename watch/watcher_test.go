package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func newTestWatcher(t *testing.T, paths []string) *Watcher {
	t.Helper()
	w, err := New(paths, 20*time.Millisecond, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { w.Stop() })
	return w
}

func waitForEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case event, ok := <-w.Events():
		require.True(t, ok, "events channel closed unexpectedly")
		return event
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watch event")
		return Event{}
	}
}

func TestWatcherDetectsModification(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records.csv")
	writeFile(t, path, "EID,Title\n1,a\n")

	w := newTestWatcher(t, []string{path})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	writeFile(t, path, "EID,Title\n1,a\n2,b\n")

	event := waitForEvent(t, w)
	assert.Equal(t, OpModify, event.Operation)
	assert.Equal(t, path, event.Path)
}

func TestWatcherIgnoresUnchangedContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bibgraph.yaml")
	writeFile(t, path, "base_uri: http://example.org/\n")

	w := newTestWatcher(t, []string{path})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	// Rewrite with identical bytes: the content hash suppresses the event.
	writeFile(t, path, "base_uri: http://example.org/\n")

	select {
	case event := <-w.Events():
		t.Fatalf("unexpected event for unchanged content: %+v", event)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "watched.csv")
	other := filepath.Join(dir, "other.csv")
	writeFile(t, watched, "a\n")

	w := newTestWatcher(t, []string{watched})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	writeFile(t, other, "b\n")

	select {
	case event := <-w.Events():
		t.Fatalf("unexpected event for unrelated file: %+v", event)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherDetectsDeletion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records.csv")
	writeFile(t, path, "EID\n1\n")

	w := newTestWatcher(t, []string{path})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	require.NoError(t, os.Remove(path))

	event := waitForEvent(t, w)
	assert.Equal(t, OpDelete, event.Operation)
}

func TestWatcherRejectsMissingFile(t *testing.T) {
	_, err := New([]string{filepath.Join(t.TempDir(), "absent.csv")}, 0, nil)
	require.Error(t, err)
}

func TestWatcherStopClosesEvents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records.csv")
	writeFile(t, path, "EID\n1\n")

	w := newTestWatcher(t, []string{path})
	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	cancel()

	select {
	case _, ok := <-w.Events():
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("events channel did not close after cancel")
	}
}
