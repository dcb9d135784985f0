// Package store holds one record domain in memory and writes the full sequence
// through to a blob bridge after every mutation.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"warehouse.GO/core/notify"
	"warehouse.GO/model/repository/blob"
)

var (
	ErrDuplicateKey = errors.New("store: duplicate key")
	ErrNotFound     = errors.New("store: record not found")
	ErrMissingKey   = errors.New("store: missing key")
	ErrKeyChanged   = errors.New("store: key cannot change")
	ErrStorage      = errors.New("store: storage failure")
)

// Domain describes how a record type is keyed, searched, seeded and prepared.
type Domain[T any] struct {
	Name       string
	StorageKey string
	Key        func(T) string
	// SetKey is set for domains whose records carry a store-assigned id.
	SetKey  func(*T, string)
	Fields  func(T) []string
	Seed    func() []T
	Prepare func(*T)
}

// Synthetic reports whether the store assigns record ids.
func (d Domain[T]) Synthetic() bool { return d.SetKey != nil }

func (d Domain[T]) seed() []T {
	if d.Seed == nil {
		return []T{}
	}
	return d.Seed()
}

// Change counts the effect of a bulk Merge or Replace.
type Change struct {
	Added   int `json:"added"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

type Store[T any] struct {
	domain   Domain[T]
	bridge   blob.Bridge
	notifier notify.Notifier
	newID    func() string

	mu      sync.RWMutex
	records []T

	lmu       sync.Mutex
	listeners []func(domain string)
}

func New[T any](d Domain[T], bridge blob.Bridge, n notify.Notifier) *Store[T] {
	if n == nil {
		n = notify.Discard
	}
	return &Store[T]{
		domain:   d,
		bridge:   bridge,
		notifier: n,
		newID:    uuid.NewString,
		records:  []T{},
	}
}

func (s *Store[T]) Name() string       { return s.domain.Name }
func (s *Store[T]) StorageKey() string { return s.domain.StorageKey }
func (s *Store[T]) Key(rec T) string   { return s.domain.Key(rec) }

// AssignKey sets the id of rec in synthetic domains and reports whether it did.
func (s *Store[T]) AssignKey(rec *T, key string) bool {
	if !s.domain.Synthetic() {
		return false
	}
	s.domain.SetKey(rec, key)
	return true
}

// OnChange registers fn to run after every successful mutation or load.
func (s *Store[T]) OnChange(fn func(domain string)) {
	s.lmu.Lock()
	defer s.lmu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Store[T]) changed() {
	s.lmu.Lock()
	fns := slices.Clone(s.listeners)
	s.lmu.Unlock()
	for _, fn := range fns {
		fn(s.domain.Name)
	}
}

func (s *Store[T]) notify(level notify.Level, format string, args ...interface{}) {
	notify.Send(s.notifier, level, s.domain.Name, format, args...)
}

// Load reads the persisted sequence. An absent or unparsable blob yields the
// seed sequence. A bridge read failure also yields the seed, and the error is returned.
func (s *Store[T]) Load(ctx context.Context) error {
	var (
		recs    []T
		loadErr error
	)
	data, err := s.bridge.Get(ctx, s.domain.StorageKey)
	switch {
	case errors.Is(err, blob.ErrNotFound):
		recs = s.domain.seed()
		s.notify(notify.LevelInfo, "no saved data, loaded %d sample records", len(recs))
	case err != nil:
		recs = s.domain.seed()
		loadErr = fmt.Errorf("%w: read %s: %w", ErrStorage, s.domain.StorageKey, err)
		s.notify(notify.LevelError, "read failed, showing sample records: %v", err)
	default:
		if err := json.Unmarshal(data, &recs); err != nil || recs == nil {
			recs = s.domain.seed()
			s.notify(notify.LevelWarning, "saved data unreadable, loaded %d sample records", len(recs))
		}
	}

	seen := make(map[string]bool, len(recs))
	for i := range recs {
		s.prepare(&recs[i])
		if s.domain.Synthetic() {
			if id := s.domain.Key(recs[i]); id == "" || seen[id] {
				s.domain.SetKey(&recs[i], s.newID())
			}
			seen[s.domain.Key(recs[i])] = true
		}
	}

	s.mu.Lock()
	s.records = recs
	s.mu.Unlock()
	s.changed()
	return loadErr
}

func (s *Store[T]) prepare(rec *T) {
	if s.domain.Prepare != nil {
		s.domain.Prepare(rec)
	}
}

// persist must be called with s.mu held.
func (s *Store[T]) persist(ctx context.Context, next []T) error {
	if next == nil {
		next = []T{}
	}
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", ErrStorage, s.domain.StorageKey, err)
	}
	if err := s.bridge.Set(ctx, s.domain.StorageKey, data); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrStorage, s.domain.StorageKey, err)
	}
	return nil
}

func (s *Store[T]) indexOf(key string) int {
	for i, r := range s.records {
		if s.domain.Key(r) == key {
			return i
		}
	}
	return -1
}

// Add appends rec. In synthetic domains a record without an id gets a new one.
// The stored record is returned.
func (s *Store[T]) Add(ctx context.Context, rec T) (T, error) {
	s.prepare(&rec)
	if s.domain.Synthetic() && s.domain.Key(rec) == "" {
		s.domain.SetKey(&rec, s.newID())
	}
	key := s.domain.Key(rec)
	if key == "" {
		s.notify(notify.LevelError, "add rejected: key is empty")
		return rec, ErrMissingKey
	}

	s.mu.Lock()
	if s.indexOf(key) >= 0 {
		s.mu.Unlock()
		s.notify(notify.LevelError, "%s already exists", key)
		return rec, fmt.Errorf("%w: %s", ErrDuplicateKey, key)
	}
	next := append(slices.Clone(s.records), rec)
	if err := s.persist(ctx, next); err != nil {
		s.mu.Unlock()
		s.notify(notify.LevelError, "add %s not saved: %v", key, err)
		return rec, err
	}
	s.records = next
	s.mu.Unlock()

	s.notify(notify.LevelSuccess, "%s added", key)
	s.changed()
	return rec, nil
}

// Update replaces the record sharing rec's key, keeping its position.
func (s *Store[T]) Update(ctx context.Context, rec T) (T, error) {
	s.prepare(&rec)
	key := s.domain.Key(rec)
	if key == "" {
		return rec, ErrMissingKey
	}

	s.mu.Lock()
	i := s.indexOf(key)
	if i < 0 {
		s.mu.Unlock()
		s.notify(notify.LevelError, "%s not found", key)
		return rec, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	next := slices.Clone(s.records)
	next[i] = rec
	if err := s.persist(ctx, next); err != nil {
		s.mu.Unlock()
		s.notify(notify.LevelError, "update %s not saved: %v", key, err)
		return rec, err
	}
	s.records = next
	s.mu.Unlock()

	s.notify(notify.LevelSuccess, "%s updated", key)
	s.changed()
	return rec, nil
}

// Modify applies fn to a copy of the record under key and stores the result
// atomically. fn must not change the key; an error from fn aborts the change.
func (s *Store[T]) Modify(ctx context.Context, key string, fn func(*T) error) (T, error) {
	var zero T
	s.mu.Lock()
	i := s.indexOf(key)
	if i < 0 {
		s.mu.Unlock()
		return zero, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	rec := s.records[i]
	if err := fn(&rec); err != nil {
		s.mu.Unlock()
		return zero, err
	}
	s.prepare(&rec)
	if s.domain.Key(rec) != key {
		s.mu.Unlock()
		return zero, fmt.Errorf("%w: %s", ErrKeyChanged, key)
	}
	next := slices.Clone(s.records)
	next[i] = rec
	if err := s.persist(ctx, next); err != nil {
		s.mu.Unlock()
		s.notify(notify.LevelError, "update %s not saved: %v", key, err)
		return zero, err
	}
	s.records = next
	s.mu.Unlock()

	s.notify(notify.LevelSuccess, "%s updated", key)
	s.changed()
	return rec, nil
}

// Delete removes the record under key. A missing key changes nothing and
// returns ErrNotFound.
func (s *Store[T]) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	i := s.indexOf(key)
	if i < 0 {
		s.mu.Unlock()
		s.notify(notify.LevelWarning, "%s not found, nothing deleted", key)
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	next := slices.Delete(slices.Clone(s.records), i, i+1)
	if err := s.persist(ctx, next); err != nil {
		s.mu.Unlock()
		s.notify(notify.LevelError, "delete %s not saved: %v", key, err)
		return err
	}
	s.records = next
	s.mu.Unlock()

	s.notify(notify.LevelSuccess, "%s deleted", key)
	s.changed()
	return nil
}

// Reset removes the saved blob and restores the seed sequence. It returns the
// number of seed records. On a storage failure nothing changes.
func (s *Store[T]) Reset(ctx context.Context) (int, error) {
	recs := s.domain.seed()
	for i := range recs {
		s.prepare(&recs[i])
		if s.domain.Synthetic() && s.domain.Key(recs[i]) == "" {
			s.domain.SetKey(&recs[i], s.newID())
		}
	}

	s.mu.Lock()
	if err := s.bridge.Remove(ctx, s.domain.StorageKey); err != nil {
		s.mu.Unlock()
		s.notify(notify.LevelError, "reset not saved: %v", err)
		return 0, fmt.Errorf("%w: remove %s: %w", ErrStorage, s.domain.StorageKey, err)
	}
	s.records = recs
	s.mu.Unlock()

	s.notify(notify.LevelSuccess, "reset to %d sample records", len(recs))
	s.changed()
	return len(recs), nil
}

// Merge upserts recs by key. In synthetic domains records with an empty or
// unknown id are appended. Non-synthetic records without a key are skipped.
func (s *Store[T]) Merge(ctx context.Context, recs []T) (Change, error) {
	return s.bulk(ctx, recs, false)
}

// Replace discards the current sequence and stores recs, deduplicated by key
// with later records winning.
func (s *Store[T]) Replace(ctx context.Context, recs []T) (Change, error) {
	return s.bulk(ctx, recs, true)
}

func (s *Store[T]) bulk(ctx context.Context, recs []T, replace bool) (Change, error) {
	var ch Change
	s.mu.Lock()
	var next []T
	if !replace {
		next = slices.Clone(s.records)
	}
	index := make(map[string]int, len(next)+len(recs))
	for i, r := range next {
		index[s.domain.Key(r)] = i
	}
	for _, rec := range recs {
		s.prepare(&rec)
		if s.domain.Synthetic() && s.domain.Key(rec) == "" {
			s.domain.SetKey(&rec, s.newID())
		}
		key := s.domain.Key(rec)
		if key == "" {
			ch.Skipped++
			continue
		}
		if i, ok := index[key]; ok {
			next[i] = rec
			ch.Updated++
			continue
		}
		index[key] = len(next)
		next = append(next, rec)
		ch.Added++
	}
	if next == nil {
		next = []T{}
	}
	if err := s.persist(ctx, next); err != nil {
		s.mu.Unlock()
		s.notify(notify.LevelError, "import not saved: %v", err)
		return Change{}, err
	}
	s.records = next
	s.mu.Unlock()

	s.notify(notify.LevelSuccess, "imported %d added, %d updated, %d skipped", ch.Added, ch.Updated, ch.Skipped)
	s.changed()
	return ch, nil
}

// List returns a copy of the sequence in stored order.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records)
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *Store[T]) Get(key string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(key); i >= 0 {
		return s.records[i], true
	}
	var zero T
	return zero, false
}

// Search returns records whose searchable fields contain term, case-insensitively,
// in stored order. An empty term matches every record.
func (s *Store[T]) Search(term string) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return s.List()
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0)
	for _, r := range s.records {
		if s.matches(r, term) {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store[T]) matches(r T, term string) bool {
	if s.domain.Fields == nil {
		return false
	}
	for _, f := range s.domain.Fields(r) {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
