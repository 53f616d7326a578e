package shelf

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arthur-debert/shelf/codec"
	"github.com/arthur-debert/shelf/internal/validation"
	"github.com/arthur-debert/shelf/kv"
	"github.com/arthur-debert/shelf/log"
)

// schemaVersion tags every persisted envelope. A blob carrying a different
// version fails to decode, which Load treats like a first run.
const schemaVersion = 1

// envelope is the persisted representation of a collection.
type envelope[T Record] struct {
	Schema    int       `json:"schema" yaml:"schema"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
	Records   []T       `json:"records" yaml:"records"`
}

// Store persists a whole collection of T as one blob under a fixed key in a
// kv substrate. The store keeps no collection state of its own between
// calls; callers own the in-memory slice and treat the store as a
// best-effort mirror.
//
// A Store is safe for concurrent use within a process. Two independent
// owners saving under the same key still race (last writer wins); the dirkv
// and boltkv substrates serialize the writes themselves so the blob is never
// corrupted, but the earlier collection is silently replaced.
type Store[T Record] struct {
	kv    kv.Store
	key   string
	codec codec.Codec
	log   log.Logger
	lock  locker

	// now supplies timestamps for the envelope, overridable in tests.
	now func() time.Time

	// createdAt is carried across saves once the blob's creation time is
	// known. Only touched under the write lock.
	createdAt time.Time
}

// Option configures a Store.
type Option[T Record] func(*Store[T])

// WithLogger sets the logger decode failures and diagnostics are written
// to. The default is log.Nop.
func WithLogger[T Record](l log.Logger) Option[T] {
	return func(s *Store[T]) { s.log = l }
}

// WithClock overrides the envelope timestamp source.
func WithClock[T Record](now func() time.Time) Option[T] {
	return func(s *Store[T]) { s.now = now }
}

// New returns a store that persists collections of T under key in sub,
// encoded with c. The store is injected into whatever owns the collection;
// there is no shared global instance.
func New[T Record](sub kv.Store, key string, c codec.Codec, opts ...Option[T]) *Store[T] {
	s := &Store[T]{
		kv:    sub,
		key:   key,
		codec: c,
		log:   log.Nop(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the substrate key this store owns.
func (s *Store[T]) Key() string { return s.key }

// Save replaces the persisted collection with records. The write is
// all-or-nothing: the previous blob is entirely overwritten, and on failure
// it is left as it was. Failures are classified as ErrInvalidRecord (id
// invariant violated), ErrEncode (codec could not represent the collection)
// or ErrWrite (substrate rejected the write).
func (s *Store[T]) Save(ctx context.Context, records []T) error {
	return s.lock.run(writeOp, func() error {
		ids := make([]string, len(records))
		for i, r := range records {
			ids[i] = r.RecordID()
		}
		if err := validation.CheckIDs(ids); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
		}

		now := s.now()
		created := s.createdAt
		if created.IsZero() {
			created = s.priorCreatedAt(ctx)
		}
		if created.IsZero() {
			created = now
		}

		env := envelope[T]{
			Schema:    schemaVersion,
			CreatedAt: created,
			UpdatedAt: now,
			Records:   records,
		}
		if env.Records == nil {
			env.Records = []T{}
		}

		blob, err := s.codec.Marshal(env)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrEncode, err)
		}
		if err := s.kv.Set(ctx, s.key, blob); err != nil {
			return fmt.Errorf("%w: %v", ErrWrite, err)
		}
		s.createdAt = created
		return nil
	})
}

// priorCreatedAt recovers the creation timestamp from an existing blob so
// repeated saves through fresh Store values keep it stable. Any failure
// just means the timestamp starts over.
func (s *Store[T]) priorCreatedAt(ctx context.Context) time.Time {
	blob, err := s.kv.Get(ctx, s.key)
	if err != nil || len(blob) == 0 {
		return time.Time{}
	}
	var env envelope[T]
	if err := s.codec.Unmarshal(blob, &env); err != nil || env.Schema != schemaVersion {
		return time.Time{}
	}
	return env.CreatedAt
}

// Load returns the persisted collection in its saved order. A key that was
// never written yields an empty collection, and so does a blob that no
// longer decodes: corruption is collapsed into "no data yet". The failure
// is logged but otherwise indistinguishable from a first run, a trade-off
// acceptable only for easily recreated data. Callers that need to tell the
// two apart use LoadStrict.
func (s *Store[T]) Load(ctx context.Context) []T {
	records, err := s.LoadStrict(ctx)
	if err != nil {
		s.log.Warn("load failed, falling back to empty collection",
			log.String("key", s.key), log.Err(err))
		return []T{}
	}
	return records
}

// LoadStrict returns the persisted collection, surfacing read faults and
// decode failures (ErrDecode) instead of collapsing them. An absent key is
// still an empty collection, not an error.
func (s *Store[T]) LoadStrict(ctx context.Context) ([]T, error) {
	var records []T
	err := s.lock.run(readOp, func() error {
		blob, err := s.kv.Get(ctx, s.key)
		if err != nil {
			if errors.Is(err, kv.ErrNotFound) {
				records = []T{}
				return nil
			}
			return fmt.Errorf("read %q: %w", s.key, err)
		}
		if len(blob) == 0 {
			records = []T{}
			return nil
		}

		var env envelope[T]
		if err := s.codec.Unmarshal(blob, &env); err != nil {
			return fmt.Errorf("%w: %v", ErrDecode, err)
		}
		if env.Schema != schemaVersion {
			return fmt.Errorf("%w: unsupported schema version %d", ErrDecode, env.Schema)
		}
		if env.Records == nil {
			env.Records = []T{}
		}
		records = env.Records
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
