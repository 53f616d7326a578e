// Package testutil builds throwaway stores and seeded collections for
// tests.
package testutil

import (
	"context"
	"testing"

	"github.com/arthur-debert/shelf"
	"github.com/arthur-debert/shelf/codec"
	"github.com/arthur-debert/shelf/kv/dirkv"
	"github.com/arthur-debert/shelf/kv/memkv"
)

// Note is the record type fixtures are built from: an id plus the kind of
// scalar fields collections carry (a title, a completion flag, a favorite
// flag).
type Note struct {
	ID       string `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Done     bool   `json:"done" yaml:"done"`
	Favorite bool   `json:"favorite" yaml:"favorite"`
}

// RecordID implements shelf.Record.
func (n Note) RecordID() string { return n.ID }

// MemStore returns a store over a fresh in-memory substrate.
func MemStore(t *testing.T) *shelf.Store[Note] {
	t.Helper()
	return shelf.New[Note](memkv.New(), "notes", codec.JSON)
}

// DirStore returns a store backed by a temp directory, plus the substrate
// for direct inspection.
func DirStore(t *testing.T) (*shelf.Store[Note], *dirkv.Store) {
	t.Helper()
	sub, err := dirkv.New(t.TempDir())
	if err != nil {
		t.Fatalf("create dirkv store: %v", err)
	}
	t.Cleanup(func() { _ = sub.Close() })
	return shelf.New[Note](sub, "notes", codec.JSON), sub
}

// Seed saves a canned set of notes through the store and returns them.
func Seed(t *testing.T, store *shelf.Store[Note]) []Note {
	t.Helper()
	notes := []Note{
		{ID: "n1", Title: "buy groceries"},
		{ID: "n2", Title: "team meeting", Done: true},
		{ID: "n3", Title: "pack for trip", Favorite: true},
	}
	if err := store.Save(context.Background(), notes); err != nil {
		t.Fatalf("seed save: %v", err)
	}
	return notes
}
