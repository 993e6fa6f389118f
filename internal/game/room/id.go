package room

import "github.com/google/uuid"

// RoomID 房间唯一标识（128 位值，仅在单个 Registry 内保证唯一）
type RoomID uuid.UUID

// String 以标准 UUID 十六进制格式渲染
func (id RoomID) String() string {
	return uuid.UUID(id).String()
}

// ParseRoomID 解析标准 UUID 文本形式的房间 ID
func ParseRoomID(s string) (RoomID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return RoomID{}, err
	}
	return RoomID(u), nil
}

// PlayerID 玩家唯一标识（128 位值）
type PlayerID uuid.UUID

// String 以标准 UUID 十六进制格式渲染
func (id PlayerID) String() string {
	return uuid.UUID(id).String()
}

// NewPlayerID 生成新的玩家 ID
func NewPlayerID() PlayerID {
	return PlayerID(uuid.New())
}

// IDProvider 为新房间提供候选 ID
// 实现应尽量均匀分布以减少注册表内的碰撞；碰撞检测由注册表负责
type IDProvider interface {
	ProvideID() RoomID
}

// UUIDProvider 默认 ID 提供者，从 128 位均匀空间抽取
type UUIDProvider struct{}

// ProvideID 返回一个随机的房间 ID
func (UUIDProvider) ProvideID() RoomID {
	return RoomID(uuid.New())
}
