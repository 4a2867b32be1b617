package profile

import (
	"context"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"

	"colobot.info/gold/internal/logging"
)

// DefaultDebounce groups the bursts of events editors produce on save.
const DefaultDebounce = 300 * time.Millisecond

// Watch reloads store when its file changes and calls onReload after each
// reload that changed the content. Saves made through the store itself do
// not trigger onReload. Watch blocks until ctx is done.
func Watch(ctx context.Context, store *Store, debounce time.Duration, onReload func()) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	path, err := filepath.Abs(store.Location())
	if err != nil {
		return errors.Wrap(err, "profile: watch")
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "profile: watcher")
	}
	defer w.Close()
	// Watch the directory: Save replaces the file by renaming over it.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return errors.Wrapf(err, "profile: watch %s", filepath.Dir(path))
	}

	log := logging.Component("profile")
	fire := make(chan struct{}, 1)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.AfterFunc(debounce, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})
			} else {
				timer.Reset(debounce)
			}
		case <-fire:
			changed, err := store.Reload()
			if err != nil {
				log.Warnw("profile reload failed", "path", path, "error", err)
				continue
			}
			if !changed {
				log.Debugw("profile watcher ignoring own write", "path", path)
				continue
			}
			log.Infow("profile reloaded", "path", path)
			if onReload != nil {
				onReload()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warnw("profile watcher error", "error", err)
		}
	}
}
