package session

import (
	"context"
	"testing"

	"LakbayLaguna/internal/entity"
	"LakbayLaguna/pkg/nlp"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (IStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return NewRedisStoreWithClient(client), mr
}

func TestRedisStore_GetMissing(t *testing.T) {
	store, _ := newTestRedisStore(t)

	_, found, err := store.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisStore_SaveAndGet(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	sess := entity.NewChatSession("u1")
	sess.PendingIntent = nlp.IntentFamousFood
	sess.ActiveCity = "pagsanjan"
	sess.SetCursor("foods", 5)
	sess.AwaitingMore = true

	require.NoError(t, store.Save(ctx, sess))

	loaded, found, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "u1", loaded.UserID)
	assert.Equal(t, nlp.IntentFamousFood, loaded.PendingIntent)
	assert.Equal(t, "pagsanjan", loaded.ActiveCity)
	assert.Equal(t, 5, loaded.CursorFor("foods"))
	assert.True(t, loaded.AwaitingMore)
}

func TestRedisStore_SessionsExpire(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, entity.NewChatSession("u1")))

	mr.FastForward(sessionTTL + 1)

	_, found, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, found)
}
