// Package memory provides process-local storage for state that is
// deliberately not persisted, such as live chat sessions.
package memory

import (
	"sync"
	"time"

	"github.com/nogueira-gui/conecta-apiserver/internal/domain"
	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
)

// Sessions idle past the TTL are swept out so abandoned conversations do not
// accumulate for the lifetime of the process.
const (
	defaultSessionTTL    = 30 * time.Minute
	defaultSweepInterval = time.Minute
)

// SessionStore is an in-memory implementation of domain.ChatSessionStore.
// All access goes through one mutex; Update runs its mutation under that
// lock, which is what makes the chat busy guard an atomic check-and-set.
//
// A background sweep expires sessions whose UpdatedAt is older than the TTL.
// Busy sessions are never swept; finishing the in-flight turn refreshes
// UpdatedAt.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*entity.ChatSession
	onEvict  func(sessionID string)

	ttl           time.Duration
	sweepInterval time.Duration
	stop          chan struct{}
	stopOnce      sync.Once
}

// SessionStoreOption configures optional behavior of the session store.
type SessionStoreOption func(*SessionStore)

// WithSessionTTL overrides how long an idle session survives.
func WithSessionTTL(ttl time.Duration) SessionStoreOption {
	return func(s *SessionStore) { s.ttl = ttl }
}

// WithSweepInterval overrides how often expired sessions are collected.
func WithSweepInterval(d time.Duration) SessionStoreOption {
	return func(s *SessionStore) { s.sweepInterval = d }
}

// NewSessionStore creates an empty session store and starts its sweep loop.
// Call Close to stop the loop.
func NewSessionStore(opts ...SessionStoreOption) *SessionStore {
	s := &SessionStore{
		sessions:      make(map[string]*entity.ChatSession),
		ttl:           defaultSessionTTL,
		sweepInterval: defaultSweepInterval,
		stop:          make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.sweepLoop()
	return s
}

// OnEvict registers a hook called with the ID of every swept session, after
// removal and outside the store lock. Callers use it to release per-session
// resources held elsewhere, such as pending reminder hand-off timers.
func (s *SessionStore) OnEvict(fn func(sessionID string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onEvict = fn
}

// Close stops the sweep loop. Stored sessions remain readable.
func (s *SessionStore) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// Create registers a new session.
func (s *SessionStore) Create(session *entity.ChatSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[session.ID]; ok {
		return domain.NewAlreadyExistsError("chat session", session.ID)
	}
	s.sessions[session.ID] = session
	return nil
}

// Get returns a snapshot copy of a session. Messages are copied too, so the
// caller can read the transcript without racing concurrent turns.
func (s *SessionStore) Get(sessionID string) (*entity.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.NewNotFoundError("chat session", sessionID)
	}
	return snapshot(session), nil
}

// Update applies fn to the live session under the store's lock. If fn returns
// an error the mutation is considered not to have happened, but fn must not
// leave partial changes behind before failing.
func (s *SessionStore) Update(sessionID string, fn func(*entity.ChatSession) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return domain.NewNotFoundError("chat session", sessionID)
	}
	return fn(session)
}

// Delete removes a session. Deleting an unknown session is a no-op.
func (s *SessionStore) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}

func (s *SessionStore) sweepLoop() {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.sweep(now)
		}
	}
}

// sweep removes sessions idle past the TTL and reports them to the eviction
// hook.
func (s *SessionStore) sweep(now time.Time) {
	s.mu.Lock()
	var expired []string
	for id, session := range s.sessions {
		if session.Busy {
			continue
		}
		if now.Sub(session.UpdatedAt) > s.ttl {
			expired = append(expired, id)
			delete(s.sessions, id)
		}
	}
	onEvict := s.onEvict
	s.mu.Unlock()

	if onEvict == nil {
		return
	}
	for _, id := range expired {
		onEvict(id)
	}
}

func snapshot(session *entity.ChatSession) *entity.ChatSession {
	clone := *session
	clone.Messages = make([]*entity.ChatMessage, len(session.Messages))
	for i, msg := range session.Messages {
		m := *msg
		clone.Messages[i] = &m
	}
	return &clone
}
