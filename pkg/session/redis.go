package session

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"LakbayLaguna/internal/entity"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const sessionTTL = 24 * time.Hour

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type redisStore struct {
	client *redis.Client
}

func NewRedisStore() IStore {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisStore{client: client}
}

// NewRedisStoreWithClient wraps an existing client. Used by tests.
func NewRedisStoreWithClient(client *redis.Client) IStore {
	return &redisStore{client: client}
}

func sessionKey(userID string) string {
	return "chat_session:" + userID
}

func (s *redisStore) Get(ctx context.Context, userID string) (entity.ChatSession, bool, error) {
	raw, err := s.client.Get(ctx, sessionKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return entity.ChatSession{}, false, nil
	}
	if err != nil {
		logrus.Error(fmt.Sprintf("Error getting session for user %s: %v", userID, err))
		return entity.ChatSession{}, false, err
	}

	var session entity.ChatSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		logrus.Error(fmt.Sprintf("Error decoding session for user %s: %v", userID, err))
		return entity.ChatSession{}, false, err
	}

	return session, true, nil
}

func (s *redisStore) Save(ctx context.Context, session entity.ChatSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		logrus.Error(fmt.Sprintf("Error encoding session for user %s: %v", session.UserID, err))
		return err
	}

	if err := s.client.Set(ctx, sessionKey(session.UserID), raw, sessionTTL).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error saving session for user %s: %v", session.UserID, err))
		return err
	}

	return nil
}
