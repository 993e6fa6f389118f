package room

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/wormhole-game/wormhole-server/internal/apperrors"
)

// MaxCreateRoomIDAttempts 放弃创建前允许的最大 ID 重抽次数
const MaxCreateRoomIDAttempts = 5

// Snapshot 房间的只读快照（用于镜像与查询接口）
type Snapshot struct {
	ID          string    `json:"id"`
	PlayerCount int       `json:"player_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// SnapshotStore 房间快照镜像，尽力而为，仅作观测用途
type SnapshotStore interface {
	SaveRoom(ctx context.Context, snapshot Snapshot) error
	DeleteRoom(ctx context.Context, id string) error
}

// Registry 维护存活房间表，是房间创建、查找和删除的唯一入口
// 内部表由单个锁保护，所有读写必须经过 Registry 的方法
type Registry struct {
	provider    IDProvider
	store       SnapshotStore
	idleTimeout time.Duration
	maxAttempts int

	rooms map[RoomID]*Room
	mu    sync.RWMutex
}

// NewRegistry 创建注册表
// provider 为 nil 时使用 UUIDProvider；store 为 nil 时不做镜像；
// idleTimeout 和 maxAttempts 为零值时使用包内默认常量
func NewRegistry(provider IDProvider, store SnapshotStore, idleTimeout time.Duration, maxAttempts int) *Registry {
	if provider == nil {
		provider = UUIDProvider{}
	}
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}
	if maxAttempts <= 0 {
		maxAttempts = MaxCreateRoomIDAttempts
	}

	return &Registry{
		provider:    provider,
		store:       store,
		idleTimeout: idleTimeout,
		maxAttempts: maxAttempts,
		rooms:       make(map[RoomID]*Room),
	}
}

// CreateRoom 创建房间并注入删除请求通道
// 候选 ID 与现有房间碰撞时重抽，最多 maxAttempts 次；
// 最后一次重抽仍然碰撞时返回 RoomCreationError 且不修改任何状态
func (reg *Registry) CreateRoom(deletionCh chan<- RoomID) (RoomID, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	id := reg.provider.ProvideID()
	attempts := 0
	for {
		if _, exists := reg.rooms[id]; !exists {
			break
		}
		if attempts >= reg.maxAttempts {
			log.Printf("⚠️ 房间 ID 分配失败: 重抽 %d 次仍然碰撞 (当前房间数 %d)", attempts, len(reg.rooms))
			return RoomID{}, &apperrors.RoomCreationError{Attempts: reg.maxAttempts}
		}
		attempts++
		id = reg.provider.ProvideID()
	}

	rm := NewRoom(id, deletionCh, reg.idleTimeout)
	reg.rooms[id] = rm

	reg.mirrorSave(rm.Snapshot())

	log.Printf("🏠 房间 %s 已创建", id)
	return id, nil
}

// GetRoomForID 返回给定 ID 的房间，不存在时返回 nil
func (reg *Registry) GetRoomForID(id RoomID) *Room {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return reg.rooms[id]
}

// DeleteRoom 删除给定 ID 的房间，不存在时为 no-op
func (reg *Registry) DeleteRoom(id RoomID) {
	reg.mu.Lock()
	_, existed := reg.rooms[id]
	delete(reg.rooms, id)
	reg.mu.Unlock()

	if !existed {
		return
	}

	reg.mirrorDelete(id)
	log.Printf("🗑️ 房间 %s 已删除", id)
}

// ListActiveRooms 返回当前所有房间 ID 的文本形式快照
func (reg *Registry) ListActiveRooms() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	ids := make([]string, 0, len(reg.rooms))
	for id := range reg.rooms {
		ids = append(ids, id.String())
	}
	return ids
}

// RoomCount 返回当前房间数量
func (reg *Registry) RoomCount() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.rooms)
}

// mirrorSave 异步镜像房间快照，失败只记录日志
func (reg *Registry) mirrorSave(snap Snapshot) {
	if reg.store == nil {
		return
	}
	go func() {
		if err := reg.store.SaveRoom(context.Background(), snap); err != nil {
			log.Printf("⚠️ 房间 %s 快照镜像失败: %v", snap.ID, err)
		}
	}()
}

// mirrorDelete 异步删除房间镜像，失败只记录日志
func (reg *Registry) mirrorDelete(id RoomID) {
	if reg.store == nil {
		return
	}
	go func() {
		if err := reg.store.DeleteRoom(context.Background(), id.String()); err != nil {
			log.Printf("⚠️ 房间 %s 镜像清理失败: %v", id, err)
		}
	}()
}
