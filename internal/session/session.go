// Package session holds the authenticated user's bearer token and username.
//
// A [Store] is created once at startup and passed to every component that
// needs credentials. Both values are either set together (login) or cleared
// together (logout, account deletion); only the username may change on its
// own, after a profile edit.
package session

import "sync"

// Keys under which session values are persisted.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Store is the process-wide session.
type Store interface {
	// Set replaces any prior session with token and username.
	Set(token, username string) error
	// Token returns the bearer token or an empty string.
	Token() string
	// Username returns the authenticated username or an empty string.
	Username() string
	// SetUsername replaces only the username.
	SetUsername(username string) error
	// Clear removes both values. Clearing an empty session is not an error.
	Clear() error
}

// Authenticated reports whether both session values are present.
func Authenticated(s Store) bool {
	return s.Token() != "" && s.Username() != ""
}

// MemoryStore is an in-process [Store].
type MemoryStore struct {
	mu       sync.RWMutex
	token    string
	username string
}

// NewMemoryStore creates an empty [MemoryStore].
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Set(token, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.username = token, username
	return nil
}

func (s *MemoryStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemoryStore) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}

func (s *MemoryStore) SetUsername(username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.username = username
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.username = "", ""
	return nil
}
