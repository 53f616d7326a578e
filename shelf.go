// Package shelf persists small ordered collections of records as a single
// encoded blob under one fixed key in a byte-oriented key-value substrate.
//
// A collection lives in the caller's memory; shelf mirrors it. Every save
// replaces the whole persisted value, every load returns the whole
// collection. There is no partial update, no query layer and no notification
// mechanism. The substrate (a directory of files, a bbolt database, an
// in-memory map) and the encoding (JSON, YAML) are pluggable via the kv and
// codec packages.
package shelf

import "github.com/google/uuid"

// Record is any value that can live in a persisted collection. The id is
// assigned by the caller when the record is constructed and never changes;
// it is the equality key for lookups, updates and deletes. Ids must be
// unique within a collection.
type Record interface {
	RecordID() string
}

// NewID returns a process-unique id for a new record. The store never
// generates ids on its own; callers use this (or any other unique string)
// at record construction time.
func NewID() string {
	return uuid.New().String()
}
