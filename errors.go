package shelf

import "errors"

var (
	// ErrEncode indicates the collection could not be represented in the
	// configured codec.
	ErrEncode = errors.New("shelf: encode failed")

	// ErrWrite indicates the substrate rejected the write. The persisted
	// copy is unchanged; the caller's in-memory collection is still the
	// source of truth.
	ErrWrite = errors.New("shelf: write failed")

	// ErrDecode indicates a stored blob could not be parsed, either because
	// it is corrupted or because it was written under a different schema
	// version. Load collapses this into an empty collection; LoadStrict
	// surfaces it.
	ErrDecode = errors.New("shelf: decode failed")

	// ErrInvalidRecord indicates a record violates the id invariant: ids
	// must be non-empty and unique within a collection.
	ErrInvalidRecord = errors.New("shelf: invalid record")

	// ErrNotFound indicates no record with the requested id exists in the
	// collection.
	ErrNotFound = errors.New("shelf: record not found")
)
