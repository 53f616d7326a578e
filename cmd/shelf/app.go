package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/shelf"
	"github.com/arthur-debert/shelf/codec"
	"github.com/arthur-debert/shelf/kv"
	"github.com/arthur-debert/shelf/kv/boltkv"
	"github.com/arthur-debert/shelf/kv/dirkv"
	"github.com/arthur-debert/shelf/log"
)

// entriesKey is the one substrate key the CLI owns.
const entriesKey = "entries"

// Entry is the record the CLI manages: a titled item with a done flag and
// an optional note.
type Entry struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Note      string    `json:"note,omitempty" yaml:"note,omitempty"`
	Done      bool      `json:"done" yaml:"done"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// RecordID implements shelf.Record.
func (e Entry) RecordID() string { return e.ID }

// app wires a collection over the configured substrate and codec.
type app struct {
	cfg config
	sub kv.Store
	col *shelf.Collection[Entry]
	enc codec.Codec
}

func openApp(ctx context.Context) (*app, error) {
	cfg := loadConfig()

	enc, err := codec.ByName(cfg.Codec)
	if err != nil {
		return nil, err
	}

	var sub kv.Store
	switch cfg.Backend {
	case "dir":
		sub, err = dirkv.New(cfg.Data)
	case "bolt":
		if err = os.MkdirAll(cfg.Data, 0o755); err == nil {
			sub, err = boltkv.Open(filepath.Join(cfg.Data, "shelf.db"))
		}
	default:
		err = fmt.Errorf("unknown backend %q (want dir or bolt)", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	var logger log.Logger = log.Nop()
	if cfg.Verbose {
		logger = log.NewZerolog(os.Stderr)
	}

	store := shelf.New[Entry](sub, entriesKey, enc, shelf.WithLogger[Entry](logger))
	return &app{
		cfg: cfg,
		sub: sub,
		col: shelf.NewCollection(ctx, store),
		enc: enc,
	}, nil
}

func (a *app) Close() error { return a.sub.Close() }

// resolve expands an id or unique id prefix to a full record id.
func (a *app) resolve(prefix string) (string, error) {
	if _, ok := a.col.Get(prefix); ok {
		return prefix, nil
	}
	var match string
	for _, e := range a.col.Records() {
		if strings.HasPrefix(e.ID, prefix) {
			if match != "" {
				return "", fmt.Errorf("id %q is ambiguous", prefix)
			}
			match = e.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("no entry with id %q", prefix)
	}
	return match, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
