package memkv_test

import (
	"context"
	"errors"
	"testing"

	"github.com/arthur-debert/shelf/kv"
	"github.com/arthur-debert/shelf/kv/memkv"
)

func TestSetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := memkv.New()

	if _, err := s.Get(ctx, "k"); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected kv.ErrNotFound, got %v", err)
	}

	if err := s.Set(ctx, "k", []byte("v1")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(ctx, "k", []byte("v2")); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "v2" {
		t.Errorf("expected full replace, got %q", got)
	}

	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(ctx, "k"); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected kv.ErrNotFound after delete, got %v", err)
	}
}

func TestValuesAreCopied(t *testing.T) {
	ctx := context.Background()
	s := memkv.New()

	in := []byte("original")
	if err := s.Set(ctx, "k", in); err != nil {
		t.Fatalf("set: %v", err)
	}
	in[0] = 'X'

	out, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(out) != "original" {
		t.Errorf("stored value aliased the caller's slice: %q", out)
	}

	out[0] = 'Y'
	again, _ := s.Get(ctx, "k")
	if string(again) != "original" {
		t.Errorf("returned value aliased the stored slice: %q", again)
	}
}
