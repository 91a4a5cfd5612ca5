package store

import "github.com/myurl/console/internal/core/domain"

// MemoryStore keeps the session in process memory only. Used by tests and
// by callers that explicitly opt out of persistence.
type MemoryStore struct {
	session *domain.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Get() *domain.Session {
	if !m.session.Valid() {
		return nil
	}
	clone := *m.session
	return &clone
}

func (m *MemoryStore) Set(s *domain.Session) error {
	if !s.Valid() {
		return domain.ErrIncompleteSession
	}
	clone := *s
	m.session = &clone
	return nil
}

func (m *MemoryStore) Clear() error {
	m.session = nil
	return nil
}
