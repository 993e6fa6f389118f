package protocol

// --- 客户端请求 Payloads ---

// PingPayload 心跳请求
type PingPayload struct {
	Timestamp int64 `json:"timestamp"` // 客户端时间戳（毫秒）
}

// --- 服务端响应 Payloads ---

// PongPayload 心跳响应
type PongPayload struct {
	Timestamp int64 `json:"timestamp"` // 服务端时间戳（毫秒）
}

// RoomJoinedPayload 加入房间成功响应
type RoomJoinedPayload struct {
	RoomID   string `json:"room_id"`
	PlayerID string `json:"player_id"`
}

// RoomClosedPayload 房间关闭通知
type RoomClosedPayload struct {
	RoomID string `json:"room_id"`
}

// ErrorPayload 错误响应
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
