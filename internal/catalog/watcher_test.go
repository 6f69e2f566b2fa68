package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("objects:\n  - {id: a, name: A}\n"), 0o600))

	reloaded := make(chan *Catalog, 16)
	w := NewWatcher(path, func(c *Catalog) {
		select {
		case reloaded <- c:
		default:
		}
	})
	w.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// give the watcher time to register
	time.Sleep(100 * time.Millisecond)

	// a broken edit is skipped
	require.NoError(t, os.WriteFile(path, []byte("objects: ["), 0o600))
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("objects:\n  - {id: a, name: A}\n  - {id: b, name: B}\n"), 0o600))

	// writes may surface as truncate+write, so wait for the final content
	deadline := time.After(3 * time.Second)
wait:
	for {
		select {
		case c := <-reloaded:
			if len(c.Objects) == 2 {
				break wait
			}
		case <-deadline:
			t.Fatal("catalog was not reloaded")
		}
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatcherRejectsBadPath(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "catalog.json"), func(*Catalog) {})
	err := w.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid catalog path")
}
