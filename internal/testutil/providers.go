package testutil

import (
	"github.com/wormhole-game/wormhole-server/internal/game/room"
)

// FixedIDProvider 总是返回同一个 ID 的提供者，用于构造碰撞场景
type FixedIDProvider struct {
	ID room.RoomID
}

func (p FixedIDProvider) ProvideID() room.RoomID {
	return p.ID
}

// SequenceIDProvider 按脚本顺序返回 ID，耗尽后重复最后一个
type SequenceIDProvider struct {
	IDs  []room.RoomID
	next int
}

func (p *SequenceIDProvider) ProvideID() room.RoomID {
	if len(p.IDs) == 0 {
		return room.RoomID{}
	}
	if p.next >= len(p.IDs) {
		return p.IDs[len(p.IDs)-1]
	}
	id := p.IDs[p.next]
	p.next++
	return id
}
