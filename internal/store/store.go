// Package store is the single entry point other components use for
// offline persistence. It owns key namespacing, the versioned record
// codec, and TTL-based invalidation on top of a kv.Store backing store.
//
// Error policy: reads fail soft (a missing, corrupted, stale, or
// unreadable record degrades to "absent" and is logged), writes fail
// loud (a backing store rejection propagates to the caller). Stale or
// missing cache is recoverable by refetching; silent write loss is not.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/leonardcser/offstore/internal/kv"
	"github.com/leonardcser/offstore/internal/logger"
	"github.com/leonardcser/offstore/internal/record"
)

// Store is the storage facade. It is the only component that touches
// the backing store directly; everything else goes through its methods.
type Store struct {
	kv    kv.Store
	clock func() time.Time
}

type Options struct {
	// Clock overrides the time source used for envelope timestamps and
	// staleness checks. Defaults to time.Now.
	Clock func() time.Time
}

func New(backing kv.Store, opts Options) *Store {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Store{kv: backing, clock: clock}
}

// write encodes payload into a versioned envelope and replaces whatever
// the key held before. Exactly one backing-store write per call.
func (s *Store) write(ctx context.Context, kind record.Kind, id string, payload any, ttl time.Duration) error {
	env, err := record.Wrap(payload, ttl, s.clock())
	if err != nil {
		return err
	}
	raw, err := record.Encode(kind, env)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, kind.Key(id), raw); err != nil {
		return fmt.Errorf("store: write %s: %w", kind.Key(id), err)
	}
	return nil
}

// read loads and decodes a record into out, reporting whether a usable
// value was found. Every failure mode degrades to false: absent key,
// undecodable record, schema mismatch, and (unless allowStale) an
// expired envelope. out is left untouched when read returns false.
func (s *Store) read(ctx context.Context, kind record.Kind, id string, out any, allowStale bool) bool {
	key := kind.Key(id)
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			logger.Warnf("store: read %s: %v", key, err)
		}
		return false
	}
	env, err := record.Decode(kind, raw)
	if err != nil {
		logger.Warnf("store: read %s: unusable record: %v", key, err)
		return false
	}
	if !allowStale && env.Stale(s.clock()) {
		return false
	}
	if err := env.Unwrap(out); err != nil {
		logger.Warnf("store: read %s: %v", key, err)
		return false
	}
	return true
}

// purge deletes every key in the given namespaces. Each delete is
// individually best-effort: a failure is logged and collected, and the
// sweep keeps going, since a leftover key is lower severity than an
// aborted sweep. Purging an already-empty namespace is a no-op.
func (s *Store) purge(ctx context.Context, kinds ...record.Kind) error {
	var errs []error
	for _, kind := range kinds {
		keys, err := s.kv.Keys(ctx, kind.Prefix())
		if err != nil {
			errs = append(errs, fmt.Errorf("store: list %s: %w", kind, err))
			continue
		}
		for _, key := range keys {
			if err := s.kv.Delete(ctx, key); err != nil {
				logger.Warnf("store: purge: %s not cleared: %v", key, err)
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
			}
		}
	}
	return errors.Join(errs...)
}

// Info reports how many records each namespace currently holds.
type Info struct {
	Sessions int `json:"sessions"`
	Cached   int `json:"cached"`
	Drafts   int `json:"drafts"`
	Settings int `json:"settings"`
}

func (s *Store) Info(ctx context.Context) (Info, error) {
	var info Info
	for _, e := range []struct {
		kind record.Kind
		n    *int
	}{
		{record.KindSession, &info.Sessions},
		{record.KindCache, &info.Cached},
		{record.KindDraft, &info.Drafts},
		{record.KindSetting, &info.Settings},
	} {
		keys, err := s.kv.Keys(ctx, e.kind.Prefix())
		if err != nil {
			return Info{}, fmt.Errorf("store: list %s: %w", e.kind, err)
		}
		*e.n = len(keys)
	}
	return info, nil
}
