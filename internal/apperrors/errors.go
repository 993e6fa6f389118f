package apperrors

import (
	"fmt"

	"github.com/wormhole-game/wormhole-server/internal/network/protocol"
)

// GameError 业务错误（带协议错误码）
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// RoomCreationError 房间 ID 分配失败
// 达到重抽上限仍然碰撞时返回，此时注册表状态保持不变
type RoomCreationError struct {
	Attempts int // 放弃前的重抽次数
}

func (e *RoomCreationError) Error() string {
	return fmt.Sprintf("无法在 %d 次重抽内分配唯一的房间 ID", e.Attempts)
}

// 预定义错误
var (
	ErrRoomNotFound  = &GameError{Code: protocol.ErrCodeRoomNotFound, Message: "房间不存在"}
	ErrInvalidRoomID = &GameError{Code: protocol.ErrCodeRoomNotFound, Message: "无效的房间 ID"}
)
