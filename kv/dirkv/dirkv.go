// Package dirkv stores each key as a file in a directory. Writes go to a
// temp file and are renamed into place, so readers never observe a partial
// value; a sibling .lock file per key arbitrates cross-process access.
package dirkv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"github.com/arthur-debert/shelf/kv"
)

const (
	lockTimeout    = 3 * time.Second
	lockRetryDelay = 100 * time.Millisecond
)

// Store persists keys as files under a directory.
type Store struct {
	dir string
}

// New creates the directory if needed and returns a store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory backing the store.
func (s *Store) Dir() string { return s.dir }

// Path returns the file a key is stored in.
func (s *Store) Path(key string) string { return filepath.Join(s.dir, key) }

func validKey(key string) error {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return fmt.Errorf("dirkv: invalid key %q", key)
	}
	if strings.HasSuffix(key, ".lock") || strings.HasSuffix(key, ".tmp") {
		return fmt.Errorf("dirkv: reserved key suffix in %q", key)
	}
	return nil
}

// withLock runs fn while holding the cross-process lock for key. The lock
// lives in a sibling file because the data file itself is replaced by
// rename on every write.
func (s *Store) withLock(ctx context.Context, key string, fn func() error) error {
	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	fl := flock.New(s.Path(key) + ".lock")
	locked, err := fl.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("dirkv: acquire lock for %q: %w", key, err)
	}
	if !locked {
		return fmt.Errorf("dirkv: acquire lock for %q: timed out", key)
	}
	defer func() { _ = fl.Unlock() }()

	return fn()
}

// Get returns the value stored under key, or kv.ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}
	var value []byte
	err := s.withLock(ctx, key, func() error {
		data, err := os.ReadFile(s.Path(key))
		if err != nil {
			if os.IsNotExist(err) {
				return kv.ErrNotFound
			}
			return fmt.Errorf("dirkv: read %q: %w", key, err)
		}
		value = data
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set replaces the value stored under key atomically.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	return s.withLock(ctx, key, func() error {
		path := s.Path(key)
		tmp := path + ".tmp"
		if err := os.WriteFile(tmp, value, 0o644); err != nil {
			return fmt.Errorf("dirkv: write temp file for %q: %w", key, err)
		}
		// Rename is atomic on POSIX filesystems.
		if err := os.Rename(tmp, path); err != nil {
			_ = os.Remove(tmp)
			return fmt.Errorf("dirkv: rename %q: %w", key, err)
		}
		return nil
	})
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := validKey(key); err != nil {
		return err
	}
	return s.withLock(ctx, key, func() error {
		if err := os.Remove(s.Path(key)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("dirkv: delete %q: %w", key, err)
		}
		return nil
	})
}

// Close removes lock files left behind in the directory.
func (s *Store) Close() error {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*.lock"))
	if err != nil {
		return err
	}
	for _, m := range matches {
		_ = os.Remove(m)
	}
	return nil
}
