package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wormhole-game/wormhole-server/internal/game/room"
)

func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return NewRedisStore(client)
}

func TestRedisStore_SaveLoadDeleteRoom(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	snap := room.Snapshot{
		ID:          "4b1ec916-7b9c-4b43-b86a-3a0c2ab32c9f",
		PlayerCount: 2,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}

	require.NoError(t, store.SaveRoom(ctx, snap))

	loaded, err := store.LoadRoom(ctx, snap.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, snap.ID, loaded.ID)
	assert.Equal(t, snap.PlayerCount, loaded.PlayerCount)
	assert.True(t, snap.CreatedAt.Equal(loaded.CreatedAt))

	require.NoError(t, store.DeleteRoom(ctx, snap.ID))

	loaded, err = store.LoadRoom(ctx, snap.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisStore_LoadRoom_Missing(t *testing.T) {
	store := newTestRedisStore(t)

	loaded, err := store.LoadRoom(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisStore_ListRoomIDs(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	ids, err := store.ListRoomIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, store.SaveRoom(ctx, room.Snapshot{ID: "a"}))
	require.NoError(t, store.SaveRoom(ctx, room.Snapshot{ID: "b"}))

	ids, err = store.ListRoomIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, ids)
}

func TestRedisStore_DeleteRoom_Missing(t *testing.T) {
	store := newTestRedisStore(t)

	// Deleting a never-mirrored room is not an error
	assert.NoError(t, store.DeleteRoom(context.Background(), "missing"))
}
