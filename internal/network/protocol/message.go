package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	MsgPing  MessageType = "ping"  // 心跳 ping
	MsgLeave MessageType = "leave" // 主动离开房间
)

// 服务端 → 客户端 消息类型
const (
	MsgPong       MessageType = "pong"        // 心跳 pong
	MsgRoomJoined MessageType = "room_joined" // 加入房间成功
	MsgRoomClosed MessageType = "room_closed" // 房间已关闭

	MsgError MessageType = "error" // 错误消息
)
