package shelf

import (
	"context"
	"fmt"
)

// Collection owns an in-memory ordered sequence of records and mirrors
// every mutation through a Store, the way a screen saves after each user
// action. The slice is the source of truth: when a save fails the mutation
// is kept in memory and the error is returned, leaving the persisted copy
// stale until the next successful save.
//
// A Collection is not safe for concurrent use; it belongs to a single
// owning context.
type Collection[T Record] struct {
	store *Store[T]
	recs  []T
}

// NewCollection loads the persisted contents of store into a new
// collection. A first run, and a blob that no longer decodes, both start
// empty.
func NewCollection[T Record](ctx context.Context, store *Store[T]) *Collection[T] {
	return &Collection[T]{store: store, recs: store.Load(ctx)}
}

// Records returns a copy of the collection in order.
func (c *Collection[T]) Records() []T {
	out := make([]T, len(c.recs))
	copy(out, c.recs)
	return out
}

// Len returns the number of records.
func (c *Collection[T]) Len() int { return len(c.recs) }

// Get returns the record with the given id.
func (c *Collection[T]) Get(id string) (T, bool) {
	for _, r := range c.recs {
		if r.RecordID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// Add appends rec and saves. The record's id must be non-empty and unique
// within the collection.
func (c *Collection[T]) Add(ctx context.Context, rec T) error {
	id := rec.RecordID()
	if id == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidRecord)
	}
	if _, exists := c.Get(id); exists {
		return fmt.Errorf("%w: duplicate id %q", ErrInvalidRecord, id)
	}
	c.recs = append(c.recs, rec)
	return c.store.Save(ctx, c.recs)
}

// RemoveIndices deletes the records at the given positions and saves.
// Positions outside the collection are ignored. Removing nothing is a
// no-op that skips the save.
func (c *Collection[T]) RemoveIndices(ctx context.Context, indices ...int) error {
	drop := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(c.recs) {
			drop[i] = struct{}{}
		}
	}
	if len(drop) == 0 {
		return nil
	}
	kept := make([]T, 0, len(c.recs)-len(drop))
	for i, r := range c.recs {
		if _, skip := drop[i]; !skip {
			kept = append(kept, r)
		}
	}
	c.recs = kept
	return c.store.Save(ctx, c.recs)
}

// Remove deletes the records with the given ids and saves, returning how
// many were removed. Unknown ids are ignored.
func (c *Collection[T]) Remove(ctx context.Context, ids ...string) (int, error) {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := make([]T, 0, len(c.recs))
	for _, r := range c.recs {
		if _, skip := drop[r.RecordID()]; !skip {
			kept = append(kept, r)
		}
	}
	removed := len(c.recs) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	c.recs = kept
	return removed, c.store.Save(ctx, c.recs)
}

// Update applies fn to the record with the given id in place and saves.
// The id is immutable: an update that changes it is rejected and rolled
// back.
func (c *Collection[T]) Update(ctx context.Context, id string, fn func(*T)) error {
	for i := range c.recs {
		if c.recs[i].RecordID() != id {
			continue
		}
		prev := c.recs[i]
		fn(&c.recs[i])
		if c.recs[i].RecordID() != id {
			c.recs[i] = prev
			return fmt.Errorf("%w: id changed during update", ErrInvalidRecord)
		}
		return c.store.Save(ctx, c.recs)
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Reload replaces the in-memory records with the persisted state,
// discarding any unsaved divergence. Useful after another owner of the
// same key has written (see dirkv.Store.Watch).
func (c *Collection[T]) Reload(ctx context.Context) {
	c.recs = c.store.Load(ctx)
}
