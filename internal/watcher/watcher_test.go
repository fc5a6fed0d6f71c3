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

func TestNewRequiresCallback(t *testing.T) {
	_, err := New("some.cfg", nil)
	require.Error(t, err)
}

func TestWatcherDeliversChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "autoexec.cfg")
	require.NoError(t, os.WriteFile(path, []byte("sensitivity 2.5\n"), 0o600))

	var mu sync.Mutex
	var got []string
	w, err := New(path, func(text string) {
		mu.Lock()
		got = append(got, text)
		mu.Unlock()
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	// Give the watcher a moment to register the directory.
	time.Sleep(200 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("sensitivity 1.5\n"), 0o600))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) > 0
	}, 3*time.Second, 50*time.Millisecond)

	mu.Lock()
	assert.Equal(t, "sensitivity 1.5\n", got[len(got)-1])
	mu.Unlock()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
	require.NoError(t, w.Close())
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "autoexec.cfg")
	require.NoError(t, os.WriteFile(path, []byte("x 1\n"), 0o600))

	var mu sync.Mutex
	calls := 0
	w, err := New(path, func(string) {
		mu.Lock()
		calls++
		mu.Unlock()
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Start(ctx) }()

	time.Sleep(200 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.cfg"), []byte("y 2\n"), 0o600))
	time.Sleep(400 * time.Millisecond)

	mu.Lock()
	assert.Zero(t, calls)
	mu.Unlock()
}
