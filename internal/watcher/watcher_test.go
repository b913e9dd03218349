package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingImporter counts imports and remembers the last payload.
type recordingImporter struct {
	mu       sync.Mutex
	payloads []string
}

func (r *recordingImporter) ImportConfigs(_ context.Context, payload string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payloads = append(r.payloads, payload)
	return payload != "not json"
}

func (r *recordingImporter) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.payloads)
}

func (r *recordingImporter) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.payloads) == 0 {
		return ""
	}
	return r.payloads[len(r.payloads)-1]
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func startWatcher(t *testing.T, path string, importer Importer) {
	t.Helper()

	w, err := New(path, 50*time.Millisecond, importer, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Start(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
}

func TestWatcher_ImportsExistingFileOnStart(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "integrations.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"stripe":{"enabled":true}}`), 0o644))

	importer := &recordingImporter{}
	startWatcher(t, path, importer)

	waitFor(t, func() bool { return importer.count() >= 1 })
	assert.Contains(t, importer.last(), "stripe")
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "integrations.json")

	importer := &recordingImporter{}
	startWatcher(t, path, importer)

	require.NoError(t, os.WriteFile(path, []byte(`{"sendgrid":{"enabled":true}}`), 0o644))

	waitFor(t, func() bool { return importer.count() >= 1 })
	assert.Contains(t, importer.last(), "sendgrid")
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "integrations.json")

	importer := &recordingImporter{}
	startWatcher(t, path, importer)

	// A burst of writes inside the debounce window settles into far
	// fewer imports than writes.
	for i := 0; i < 10; i++ {
		require.NoError(t, os.WriteFile(path, []byte(`{"deepl":{"enabled":true}}`), 0o644))
		time.Sleep(5 * time.Millisecond)
	}

	waitFor(t, func() bool { return importer.count() >= 1 })
	time.Sleep(200 * time.Millisecond)
	assert.Less(t, importer.count(), 5)
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "integrations.json")

	importer := &recordingImporter{}
	startWatcher(t, path, importer)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("unrelated"), 0o644))
	time.Sleep(200 * time.Millisecond)
	assert.Zero(t, importer.count())
}

func TestWatcher_MissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "integrations.json"), 0, &recordingImporter{}, nil)
	assert.Error(t, err)
}
