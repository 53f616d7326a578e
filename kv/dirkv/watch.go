package dirkv

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// Watch invokes fn after the value under key is replaced by another writer.
// Bursts of writes are debounced into a single call. Watch blocks until ctx
// is done and is meant to run in its own goroutine; the store itself has no
// notification contract, this is a substrate-level convenience for owners
// that want to reload a collection touched by another process.
func (s *Store) Watch(ctx context.Context, key string, fn func()) error {
	if err := validKey(key); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory, not the file: the data file is replaced by
	// rename on every write, which would drop a watch on the file itself.
	if err := watcher.Add(s.dir); err != nil {
		return err
	}

	var mu sync.Mutex
	var debounce *time.Timer
	defer func() {
		mu.Lock()
		if debounce != nil {
			debounce.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != key {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			mu.Lock()
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce, fn)
			mu.Unlock()

		case _, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
		}
	}
}
