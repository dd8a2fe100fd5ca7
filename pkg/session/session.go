package session

import (
	"os"

	"LakbayLaguna/internal/entity"

	"golang.org/x/net/context"
)

// IStore persists per-user conversational state. Get reports found=false
// for a user with no saved session; that is a normal first-turn outcome.
type IStore interface {
	Get(ctx context.Context, userID string) (entity.ChatSession, bool, error)
	Save(ctx context.Context, session entity.ChatSession) error
}

// NewFromEnv picks the implementation from SESSION_STORE ("redis" or
// anything else for the in-process map).
func NewFromEnv() IStore {
	if os.Getenv("SESSION_STORE") == "redis" {
		return NewRedisStore()
	}
	return NewMemoryStore()
}
