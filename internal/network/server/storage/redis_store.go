package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wormhole-game/wormhole-server/internal/game/room"
)

const (
	// Redis key 前缀
	roomKeyPrefix = "room:"

	// 镜像数据过期时间，兜底清理掉线进程留下的残留 key
	roomExpiration = 1 * time.Hour
)

// RedisStore 存活房间的 Redis 镜像
// 只是观测用的旁路视图，进程重启后不会从中恢复任何房间
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 创建 Redis 镜像存储
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// SaveRoom 保存房间快照
func (rs *RedisStore) SaveRoom(ctx context.Context, snapshot room.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("序列化房间快照失败: %w", err)
	}

	key := roomKeyPrefix + snapshot.ID
	return rs.client.Set(ctx, key, data, roomExpiration).Err()
}

// LoadRoom 读取房间快照，不存在时返回 nil
func (rs *RedisStore) LoadRoom(ctx context.Context, id string) (*room.Snapshot, error) {
	key := roomKeyPrefix + id
	data, err := rs.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var snapshot room.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("反序列化房间快照失败: %w", err)
	}

	return &snapshot, nil
}

// DeleteRoom 删除房间快照
func (rs *RedisStore) DeleteRoom(ctx context.Context, id string) error {
	key := roomKeyPrefix + id
	return rs.client.Del(ctx, key).Err()
}

// ListRoomIDs 返回所有已镜像的房间 ID
func (rs *RedisStore) ListRoomIDs(ctx context.Context) ([]string, error) {
	keys, err := rs.client.Keys(ctx, roomKeyPrefix+"*").Result()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(keys))
	for i, key := range keys {
		ids[i] = key[len(roomKeyPrefix):]
	}
	return ids, nil
}
