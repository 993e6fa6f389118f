package testutil

import (
	"context"
	"sync"

	"github.com/wormhole-game/wormhole-server/internal/game/room"
)

// MemorySnapshotStore 内存版房间快照镜像，用于测试
type MemorySnapshotStore struct {
	mu        sync.Mutex
	snapshots map[string]room.Snapshot
	err       error
}

// NewMemorySnapshotStore 创建内存镜像
func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{
		snapshots: make(map[string]room.Snapshot),
	}
}

// FailWith 让后续所有操作返回给定错误
func (s *MemorySnapshotStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *MemorySnapshotStore) SaveRoom(_ context.Context, snapshot room.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.snapshots[snapshot.ID] = snapshot
	return nil
}

func (s *MemorySnapshotStore) DeleteRoom(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	delete(s.snapshots, id)
	return nil
}

// Has 判断给定 ID 是否已镜像
func (s *MemorySnapshotStore) Has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.snapshots[id]
	return ok
}
