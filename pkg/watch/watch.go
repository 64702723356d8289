// Package watch reports settled batches of filesystem changes under a
// source location.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/arthur-debert/splice/pkg/errors"
	"github.com/arthur-debert/splice/pkg/logging"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce is the quiet period that closes a batch
const DefaultDebounce = 200 * time.Millisecond

// ChangeFunc receives the sorted, distinct paths of one batch
type ChangeFunc func(ctx context.Context, changed []string)

// Watcher watches a directory tree, or the directory of a single file
type Watcher struct {
	root     string
	debounce time.Duration
	ignore   []string
	fsw      *fsnotify.Watcher
	logger   zerolog.Logger
}

// New starts watching root. Directories created later are picked up as
// they appear. Nothing at or below an ignored directory is watched or
// reported, which keeps a build that writes inside root from retriggering
// itself.
func New(root string, debounce time.Duration, ignore ...string) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "cannot watch %s", root).WithDetail("path", root)
	}
	if !info.IsDir() {
		root = filepath.Dir(root)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrIO, "cannot create watcher")
	}

	cleaned := make([]string, 0, len(ignore))
	for _, dir := range ignore {
		if dir != "" {
			cleaned = append(cleaned, filepath.Clean(dir))
		}
	}

	w := &Watcher{
		root:     root,
		debounce: debounce,
		ignore:   cleaned,
		fsw:      fsw,
		logger:   logging.GetLogger("watch"),
	}
	if err := w.addTree(root); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

// Root returns the watched directory
func (w *Watcher) Root() string {
	return w.root
}

// Ignored reports whether path is at or below an ignored directory
func (w *Watcher) Ignored(path string) bool {
	for _, dir := range w.ignore {
		if Within(dir, path) {
			return true
		}
	}
	return false
}

// Within reports whether path is dir or lies below it
func Within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, errors.ErrIO, "cannot walk %s", path)
		}
		if !d.IsDir() {
			return nil
		}
		if w.Ignored(path) {
			w.logger.Trace().Str("dir", path).Msg("ignoring")
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return errors.Wrapf(err, errors.ErrIO, "cannot watch %s", path).WithDetail("path", path)
		}
		w.logger.Trace().Str("dir", path).Msg("watching")
		return nil
	})
}

// Run delivers batches to onChange until ctx is done. Batches are
// delivered one at a time on the calling goroutine.
func (w *Watcher) Run(ctx context.Context, onChange ChangeFunc) error {
	pending := make(map[string]struct{})
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if event.Op == fsnotify.Chmod || w.Ignored(event.Name) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(event.Name); err != nil {
						w.logger.Warn().Err(err).Str("dir", event.Name).Msg("cannot watch new directory")
					}
				}
			}

			pending[event.Name] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("watch error")

		case <-fire:
			fire = nil
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			sort.Strings(changed)
			pending = make(map[string]struct{})

			w.logger.Debug().Int("paths", len(changed)).Msg("change batch settled")
			onChange(ctx, changed)
		}
	}
}

// Close stops the underlying watcher
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
