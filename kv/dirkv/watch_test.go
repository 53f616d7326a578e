package dirkv_test

import (
	"context"
	"testing"
	"time"
)

func TestWatchSeesReplacedValue(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := newStore(t)
	if err := s.Set(ctx, "notes", []byte("v1")); err != nil {
		t.Fatalf("set: %v", err)
	}

	fired := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- s.Watch(ctx, "notes", func() {
			select {
			case fired <- struct{}{}:
			default:
			}
		})
	}()

	// Give the watcher time to register before writing.
	time.Sleep(200 * time.Millisecond)

	if err := s.Set(ctx, "notes", []byte("v2")); err != nil {
		t.Fatalf("set: %v", err)
	}

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("watch callback never fired after a write")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("watch returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancellation")
	}
}

func TestWatchIgnoresOtherKeys(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := newStore(t)
	fired := make(chan struct{}, 1)
	go func() {
		_ = s.Watch(ctx, "notes", func() {
			select {
			case fired <- struct{}{}:
			default:
			}
		})
	}()

	time.Sleep(200 * time.Millisecond)

	if err := s.Set(ctx, "other", []byte("v")); err != nil {
		t.Fatalf("set: %v", err)
	}

	select {
	case <-fired:
		t.Fatal("watch fired for an unrelated key")
	case <-time.After(500 * time.Millisecond):
	}
}
