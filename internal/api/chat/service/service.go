package chatService

import (
	chatRepository "LakbayLaguna/internal/api/chat/repository"
	"LakbayLaguna/pkg/session"
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

type IChatService interface {
	HandleTurn(ctx context.Context, userID, query string) (string, error)
}

type chatService struct {
	log      *logrus.Logger
	chatRepo chatRepository.Repository
	sessions session.IStore

	// userLocks serializes turns per user so a session's
	// read-modify-write never interleaves with itself.
	userLocks sync.Map
}

func New(
	log *logrus.Logger,
	chatRepo chatRepository.Repository,
	sessions session.IStore,
) IChatService {
	return &chatService{
		log:      log,
		chatRepo: chatRepo,
		sessions: sessions,
	}
}

func (s *chatService) lockUser(userID string) *sync.Mutex {
	lock, _ := s.userLocks.LoadOrStore(userID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
