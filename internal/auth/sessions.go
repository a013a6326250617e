package auth

import (
	"errors"
	"sync"
	"time"

	"github.com/OpenShelf/library-backend/internal/utils"
)

// SessionTTL bounds how long a login stays valid without re-authenticating.
const SessionTTL = 6 * time.Hour

var ErrSessionNotFound = errors.New("session not found")

// SessionStore holds live sessions in memory only. Sessions are ephemeral:
// a restart logs everyone out, nothing is written to the database.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]utils.SessionData
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]utils.SessionData)}
}

// Create issues a new session scoped to the user's role as authenticated.
func (s *SessionStore) Create(user User) utils.SessionData {
	session := utils.SessionData{
		SessionID: utils.GenerateUUID(),
		UserID:    user.UserID,
		Role:      user.Role,
		Name:      user.FullName,
		Email:     user.Email,
		ExpiresAt: time.Now().Add(SessionTTL),
	}

	s.mu.Lock()
	s.sessions[session.SessionID] = session
	s.mu.Unlock()
	return session
}

func (s *SessionStore) Get(id string) (utils.SessionData, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return utils.SessionData{}, ErrSessionNotFound
	}
	if session.ExpiresAt.Before(time.Now()) {
		// Lazily drop expired entries so the map doesn't grow unbounded.
		s.Delete(id)
		return utils.SessionData{}, ErrSessionNotFound
	}
	return session, nil
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Sessions is the process-wide store used by the handlers and the fetcher.
var Sessions = NewSessionStore()
