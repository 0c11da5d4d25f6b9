// Package session keeps per-(user, chat) quiz state in memory.
//
// Each pair owns exactly one Session, replaced wholesale on every
// transition. State is deliberately not persisted: a restart just
// restarts the round.
package session

import (
	"sync"

	"flashbot/internal/domain"
)

// Key identifies one dialog: a user inside one conversation
type Key struct {
	UserID int64
	ChatID int64
}

// Store holds sessions keyed per dialog pair
type Store struct {
	mu       sync.RWMutex
	sessions map[Key]domain.Session
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{sessions: make(map[Key]domain.Session)}
}

// Get returns the pair's session, or an idle one if none exists yet
func (s *Store) Get(key Key) domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, exists := s.sessions[key]
	if !exists {
		return domain.Session{State: domain.StateIdle}
	}
	return sess
}

// Put replaces the pair's session
func (s *Store) Put(key Key, sess domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[key] = sess
}

// Reset returns the pair to idle
func (s *Store) Reset(key Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, key)
}
