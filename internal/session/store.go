package session

import (
	"sync"

	"github.com/rayanhq/tagbot/internal/model"
)

// Store is the in-memory mapping from user identity to Session.
//
// All mutable conversation state is keyed exclusively by user ID, so
// handlers for distinct users never interfere. The store itself is safe
// for concurrent use; two near-simultaneous events for the *same* user
// are not serialized and may race (last writer wins). Entries have no
// TTL: a session lives until it is finalized or overwritten by a new
// audio upload.
//
// Alongside live sessions the store remembers which users have already
// finished their last session. That marker outlives the purged session
// so late button taps can be answered with an "already processed"
// notice instead of silently restarting the flow.
type Store struct {
	mu        sync.RWMutex
	sessions  map[int64]*model.Session
	finalized map[int64]bool
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		sessions:  make(map[int64]*model.Session),
		finalized: make(map[int64]bool),
	}
}

// Get returns the session for userID, if one exists.
func (s *Store) Get(userID int64) (*model.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[userID]
	return sess, ok
}

// Start creates a fresh session for userID, replacing any existing one.
//
// Every optional field of a prior session (image, title, artist,
// awaited input) is dropped and the finalized marker is cleared, so no
// state leaks from the previous conversation.
func (s *Store) Start(userID, chatID int64, audioPath, audioName string) *model.Session {
	sess := &model.Session{
		UserID:    userID,
		ChatID:    chatID,
		AudioPath: audioPath,
		AudioName: audioName,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = sess
	delete(s.finalized, userID)
	return sess
}

// Finalize purges the session for userID and records that the user's
// last session completed. Safe to call for a user with no session.
func (s *Store) Finalize(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[userID]; ok {
		sess.Finalized = true
	}
	delete(s.sessions, userID)
	s.finalized[userID] = true
}

// Finalized reports whether the user's last session has completed and
// has not been superseded by a new audio upload.
func (s *Store) Finalized(userID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.finalized[userID]
}

// Len returns the number of live sessions, for diagnostics.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
