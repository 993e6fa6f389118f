package room

import (
	"context"
	"log"
	"sync"
	"time"
)

// DefaultIdleTimeout 空闲房间请求清理前的默认等待时长
const DefaultIdleTimeout = 30 * time.Second

// Room 游戏房间，维护玩家集合并持有自己的空闲删除定时器
// 房间只能由创建它的 Registry 查找、修改和删除
type Room struct {
	ID        RoomID
	CreatedAt time.Time

	players     map[PlayerID]struct{}
	deletionCh  chan<- RoomID
	idleTimeout time.Duration
	cancelTimer context.CancelFunc // 同一时刻最多一个已布防的定时器

	mu sync.Mutex
}

// NewRoom 创建房间并立即布防空闲删除定时器
func NewRoom(id RoomID, deletionCh chan<- RoomID, idleTimeout time.Duration) *Room {
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}

	r := &Room{
		ID:          id,
		CreatedAt:   time.Now(),
		players:     make(map[PlayerID]struct{}),
		deletionCh:  deletionCh,
		idleTimeout: idleTimeout,
	}

	r.ScheduleDeletion()

	return r
}

// ScheduleDeletion 布防空闲删除定时器
// 已有定时器时替换而不是叠加；定时器自然到期后向删除通道发送房间 ID，
// 由上游的 DeletionHandler 负责实际清理
func (r *Room) ScheduleDeletion() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancelTimer != nil {
		r.cancelTimer()
	}

	ctx, cancel := context.WithCancel(context.Background())
	r.cancelTimer = cancel

	log.Printf("⏲️ 房间 %s 已布防空闲删除定时器 (%s)", r.ID, r.idleTimeout)
	go r.awaitDeletion(ctx)
}

// awaitDeletion 等待空闲超时后请求删除，取消时直接退出
func (r *Room) awaitDeletion(ctx context.Context) {
	timer := time.NewTimer(r.idleTimeout)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	// 定时器已触发，之后的取消不再能撤回删除请求
	log.Printf("🧹 房间 %s 空闲超时，请求删除", r.ID)
	select {
	case r.deletionCh <- r.ID:
	default:
		// 通道已满时阻塞等待而不是丢弃请求
		log.Printf("⚠️ 删除通道已满，房间 %s 的删除请求阻塞等待", r.ID)
		r.deletionCh <- r.ID
	}
	log.Printf("📨 房间 %s 的删除请求已发送", r.ID)
}

// CancelDeletion 取消已布防的删除定时器，没有定时器时为 no-op
func (r *Room) CancelDeletion() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancelTimer == nil {
		log.Printf("⏲️ 房间 %s 没有已布防的删除定时器，忽略取消", r.ID)
		return
	}

	log.Printf("⏲️ 房间 %s 的删除定时器已取消", r.ID)
	r.cancelTimer()
	r.cancelTimer = nil
}

// AddPlayer 将玩家加入房间
func (r *Room) AddPlayer(id PlayerID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.players[id] = struct{}{}
}

// RemovePlayer 将玩家移出房间，不在房间中时为 no-op
func (r *Room) RemovePlayer(id PlayerID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.players, id)
}

// HasPlayer 判断玩家是否在房间中
func (r *Room) HasPlayer(id PlayerID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.players[id]
	return ok
}

// PlayerCount 返回房间内玩家数量
func (r *Room) PlayerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.players)
}

// Snapshot 返回房间的只读快照
func (r *Room) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{
		ID:          r.ID.String(),
		PlayerCount: len(r.players),
		CreatedAt:   r.CreatedAt,
	}
}
