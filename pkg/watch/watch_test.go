// pkg/watch/watch_test.go
// TEST TYPE: Integration Tests
// DEPENDENCIES: Real filesystem (t.TempDir), fsnotify
// PURPOSE: Test batching, new directory pickup, ignored output and cancellation

package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/splice/pkg/errors"
	"github.com/arthur-debert/splice/pkg/watch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, root string, ignore ...string) (<-chan []string, context.CancelFunc, <-chan error) {
	t.Helper()

	w, err := watch.New(root, 50*time.Millisecond, ignore...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	batches := make(chan []string, 16)
	done := make(chan error, 1)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		done <- w.Run(ctx, func(_ context.Context, changed []string) {
			batches <- changed
		})
	}()
	return batches, cancel, done
}

func waitBatch(t *testing.T, batches <-chan []string, want string) []string {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case batch := <-batches:
			for _, p := range batch {
				if p == want {
					return batch
				}
			}
		case <-deadline:
			t.Fatalf("no batch containing %s", want)
			return nil
		}
	}
}

func TestWatcher_DeliversChanges(t *testing.T) {
	root := t.TempDir()
	batches, cancel, done := startWatcher(t, root)

	page := filepath.Join(root, "page.html")
	require.NoError(t, os.WriteFile(page, []byte("a"), 0644))
	waitBatch(t, batches, page)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWatcher_PicksUpNewDirectories(t *testing.T) {
	root := t.TempDir()
	batches, cancel, _ := startWatcher(t, root)
	defer cancel()

	dir := filepath.Join(root, "parts")
	require.NoError(t, os.Mkdir(dir, 0755))
	waitBatch(t, batches, dir)

	nested := filepath.Join(dir, "nav.html")
	require.NoError(t, os.WriteFile(nested, []byte("nav"), 0644))
	waitBatch(t, batches, nested)
}

func TestWatcher_FileRootWatchesItsDirectory(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "index.html")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	w, err := watch.New(file, 0)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()
	assert.Equal(t, root, w.Root())
}

func TestNew_MissingRoot(t *testing.T) {
	_, err := watch.New(filepath.Join(t.TempDir(), "missing"), 0)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
}

func TestWatcher_IgnoresOutputInsideRoot(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "out")
	require.NoError(t, os.Mkdir(out, 0755))
	later := filepath.Join(root, "gen")

	batches, cancel, _ := startWatcher(t, root, out, later)
	defer cancel()

	// what a rebuild would write: existing and newly created output dirs
	require.NoError(t, os.WriteFile(filepath.Join(out, "index.html"), []byte("built"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(out, "about"), 0755))
	require.NoError(t, os.Mkdir(later, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(later, "index.html"), []byte("built"), 0644))
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(later, "again.html"), []byte("built"), 0644))

	page := filepath.Join(root, "page.html")
	require.NoError(t, os.WriteFile(page, []byte("a"), 0644))

	select {
	case batch := <-batches:
		assert.Equal(t, []string{page}, batch)
	case <-time.After(5 * time.Second):
		t.Fatal("no batch for the source change")
	}
}

func TestWithin(t *testing.T) {
	sep := string(filepath.Separator)
	dir := filepath.Join(sep+"p", "src", "out")

	assert.True(t, watch.Within(dir, dir))
	assert.True(t, watch.Within(dir, filepath.Join(dir, "a", "b.html")))
	assert.False(t, watch.Within(dir, filepath.Join(sep+"p", "src", "outline.html")))
	assert.False(t, watch.Within(dir, filepath.Join(sep+"p", "src")))
	assert.False(t, watch.Within(dir, filepath.Join(sep+"p", "..out")))
}
