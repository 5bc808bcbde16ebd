package session

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"tablebooker/internal/model"
	"tablebooker/pkg/log"
)

const (
	// DefaultMaxSessions caps how many conversations are held in memory.
	DefaultMaxSessions = 10000
	// DefaultIdleTTL evicts conversations idle longer than this.
	DefaultIdleTTL = 30 * time.Minute

	// History pruning: past pruneThreshold messages, keep the opening
	// pruneKeepHead plus the latest pruneKeepTail.
	pruneThreshold = 60
	pruneKeepHead  = 6
	pruneKeepTail  = 50

	prunedMarker = "[earlier conversation trimmed]"
)

// Config tunes the session store.
type Config struct {
	MaxSessions int
	IdleTTL     time.Duration
}

// Store holds per-conversation state. Entries expire after IdleTTL of
// inactivity; every turn resets the clock.
//
// Concurrency: the LRU itself is safe for concurrent use, and each entry
// carries its own mutex held for the whole turn, so two turns of the same
// conversation never interleave while unrelated conversations proceed in
// parallel.
type Store struct {
	l   log.Logger
	lru *expirable.LRU[string, *entry]

	// mu only guards the lookup-or-insert of an entry, never a turn.
	mu  sync.Mutex
	now func() time.Time
}

type entry struct {
	mu   sync.Mutex
	sess *model.Session
}

// New creates the session store.
func New(l log.Logger, cfg Config) *Store {
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = DefaultIdleTTL
	}

	s := &Store{l: l, now: time.Now}
	s.lru = expirable.NewLRU(cfg.MaxSessions, func(key string, _ *entry) {
		l.Debugf(context.Background(), "session %s evicted", key)
	}, cfg.IdleTTL)
	return s
}

// WithSession runs fn with exclusive access to the session for id,
// creating the session if it does not exist. The turn is serialized per
// id: a second call for the same id blocks until fn returns. Touching
// the entry afterwards resets its idle expiry.
func (s *Store) WithSession(ctx context.Context, id string, fn func(*model.Session) error) error {
	e := s.getOrCreate(id)

	e.mu.Lock()
	defer e.mu.Unlock()

	err := fn(e.sess)

	pruneHistory(e.sess)
	e.sess.Touch(s.now())

	// Re-adding resets the TTL so active conversations never expire
	// mid-flight.
	s.lru.Add(id, e)
	return err
}

// Peek returns a snapshot of the session without creating or touching it.
func (s *Store) Peek(id string) (model.Session, bool) {
	e, ok := s.lru.Peek(id)
	if !ok {
		return model.Session{}, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	snapshot := *e.sess
	snapshot.Messages = append([]model.Message(nil), e.sess.Messages...)
	return snapshot, true
}

// Clear removes the session for id, if any.
func (s *Store) Clear(id string) {
	s.lru.Remove(id)
}

// Len reports how many sessions are live.
func (s *Store) Len() int {
	return s.lru.Len()
}

func (s *Store) getOrCreate(id string) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.lru.Get(id); ok {
		return e
	}

	now := s.now()
	e := &entry{sess: &model.Session{ID: id, CreatedAt: now, UpdatedAt: now}}
	s.lru.Add(id, e)
	return e
}

// pruneHistory bounds long conversations: past the threshold, keep the
// opening turns (where contact details usually live) plus the recent
// tail, with a marker in between.
func pruneHistory(sess *model.Session) {
	if len(sess.Messages) <= pruneThreshold {
		return
	}

	head := sess.Messages[:pruneKeepHead]
	tail := sess.Messages[len(sess.Messages)-pruneKeepTail:]

	pruned := make([]model.Message, 0, pruneKeepHead+1+pruneKeepTail)
	pruned = append(pruned, head...)
	pruned = append(pruned, model.Message{Role: "system", Content: prunedMarker, CreatedAt: tail[0].CreatedAt})
	pruned = append(pruned, tail...)
	sess.Messages = pruned
}
