package session

import (
	"fmt"

	"github.com/desertthunder/myflix/internal/shared"
)

// EntryRepository is the persistence used by [PersistentStore].
// [repositories.SessionRepository] satisfies it.
type EntryRepository interface {
	Get(key string) (string, bool, error)
	SetMany(values map[string]string) error
	Delete(keys ...string) error
}

// PersistentStore is a [Store] that writes through to an [EntryRepository]
// so separate invocations share one session. Reads are served from memory.
type PersistentStore struct {
	mem  MemoryStore
	repo EntryRepository
}

// OpenPersistentStore loads the stored session from repo.
func OpenPersistentStore(repo EntryRepository) (*PersistentStore, error) {
	s := &PersistentStore{repo: repo}

	token, _, err := repo.Get(KeyToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrSessionStore, err)
	}
	username, _, err := repo.Get(KeyUser)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrSessionStore, err)
	}

	s.mem.token, s.mem.username = token, username
	return s, nil
}

func (s *PersistentStore) Set(token, username string) error {
	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()

	if err := s.repo.SetMany(map[string]string{KeyToken: token, KeyUser: username}); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrSessionStore, err)
	}
	s.mem.token, s.mem.username = token, username
	return nil
}

func (s *PersistentStore) Token() string { return s.mem.Token() }

func (s *PersistentStore) Username() string { return s.mem.Username() }

func (s *PersistentStore) SetUsername(username string) error {
	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()

	if err := s.repo.SetMany(map[string]string{KeyUser: username}); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrSessionStore, err)
	}
	s.mem.username = username
	return nil
}

func (s *PersistentStore) Clear() error {
	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()

	if err := s.repo.Delete(KeyToken, KeyUser); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrSessionStore, err)
	}
	s.mem.token, s.mem.username = "", ""
	return nil
}
