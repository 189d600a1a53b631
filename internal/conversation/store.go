package conversation

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"omi-relay/internal/model"
)

// Store keeps a bounded, ordered list of turns per session.
// Implementations are safe for concurrent use.
type Store interface {
	Get(sessionID string) []model.Turn
	Append(sessionID string, turn model.Turn)
	MaxTurns() int
	Len() int
}

// session serialises read-modify-write on one session's turns.
type session struct {
	mu    sync.Mutex
	turns []model.Turn
}

type store struct {
	sessions *lru.Cache[string, *session]
	maxTurns int
}

var _ Store = (*store)(nil)

// New creates an in-memory store.
func New(cfg Config) (*store, error) {
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = DefaultMaxTurns
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}

	sessions, err := lru.New[string, *session](cfg.MaxSessions)
	if err != nil {
		return nil, fmt.Errorf("conversation: failed to create session cache: %w", err)
	}

	return &store{
		sessions: sessions,
		maxTurns: cfg.MaxTurns,
	}, nil
}

// Get returns a copy of the session's turns, oldest first.
// Unknown sessions yield an empty slice.
func (s *store) Get(sessionID string) []model.Turn {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return []model.Turn{}
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	out := make([]model.Turn, len(sess.turns))
	copy(out, sess.turns)
	return out
}

// Append adds a turn and drops the oldest ones beyond the cap.
// A session evicted before the lock is taken is looked up again.
func (s *store) Append(sessionID string, turn model.Turn) {
	for sess := s.session(sessionID); !s.appendTo(sessionID, sess, turn); sess = s.session(sessionID) {
	}
}

// appendTo writes turn into sess only while sess is still the cached entry for id.
func (s *store) appendTo(id string, sess *session, turn model.Turn) bool {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if cur, ok := s.sessions.Peek(id); !ok || cur != sess {
		return false
	}

	sess.turns = append(sess.turns, turn)
	if over := len(sess.turns) - s.maxTurns; over > 0 {
		kept := make([]model.Turn, s.maxTurns)
		copy(kept, sess.turns[over:])
		sess.turns = kept
	}
	return true
}

// MaxTurns returns the per-session cap.
func (s *store) MaxTurns() int {
	return s.maxTurns
}

// Len returns the number of sessions held.
func (s *store) Len() int {
	return s.sessions.Len()
}

// session returns the entry for id, creating it atomically when absent.
func (s *store) session(id string) *session {
	if sess, ok := s.sessions.Get(id); ok {
		return sess
	}
	fresh := &session{}
	if prev, found, _ := s.sessions.PeekOrAdd(id, fresh); found {
		return prev
	}
	return fresh
}
