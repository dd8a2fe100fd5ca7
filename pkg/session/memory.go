package session

import (
	"sync"

	"LakbayLaguna/internal/entity"

	"golang.org/x/net/context"
)

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]entity.ChatSession
}

func NewMemoryStore() IStore {
	return &memoryStore{
		sessions: make(map[string]entity.ChatSession),
	}
}

func (s *memoryStore) Get(_ context.Context, userID string) (entity.ChatSession, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[userID]
	return session, ok, nil
}

func (s *memoryStore) Save(_ context.Context, session entity.ChatSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.UserID] = session
	return nil
}
