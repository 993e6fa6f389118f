package server

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wormhole-game/wormhole-server/internal/game/room"
	"github.com/wormhole-game/wormhole-server/internal/network/protocol"
)

const (
	// 写入超时
	writeWait = 10 * time.Second

	// 读取超时（pong 等待时间）
	pongWait = 60 * time.Second

	// ping 发送间隔（必须小于 pongWait）
	pingPeriod = (pongWait * 9) / 10

	// 消息最大大小
	maxMessageSize = 4096
)

// Client 代表一个连接到房间的玩家
type Client struct {
	ID   room.PlayerID
	room *room.Room

	conn *websocket.Conn
	send chan []byte

	mu     sync.Mutex
	closed bool
}

// NewClient 创建新客户端
func NewClient(conn *websocket.Conn, rm *room.Room) *Client {
	return &Client{
		ID:   room.NewPlayerID(),
		room: rm,
		conn: conn,
		send: make(chan []byte, 256),
	}
}

// ReadPump 从 WebSocket 读取消息
func (c *Client) ReadPump() {
	defer func() {
		c.handleDisconnect()
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("读取错误: %v", err)
			}
			return
		}

		msg, err := protocol.Decode(message)
		if err != nil {
			log.Printf("消息解析错误: %v", err)
			c.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
			continue
		}

		c.handleMessage(msg)
	}
}

// handleMessage 处理客户端控制消息
// 房间核心不转发玩家间消息，这里只处理连接级别的控制
func (c *Client) handleMessage(msg *protocol.Message) {
	switch msg.Type {
	case protocol.MsgPing:
		c.SendMessage(protocol.MustNewMessage(protocol.MsgPong, protocol.PongPayload{
			Timestamp: time.Now().UnixMilli(),
		}))
	case protocol.MsgLeave:
		_ = c.conn.Close()
	default:
		c.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
	}
}

// WritePump 向 WebSocket 写入消息
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// 通道已关闭
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// SendMessage 向客户端发送消息，发送缓冲满时丢弃并断开
func (c *Client) SendMessage(msg *protocol.Message) {
	data, err := msg.Encode()
	if err != nil {
		log.Printf("消息编码失败: %v", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	select {
	case c.send <- data:
	default:
		log.Printf("⚠️ 玩家 %s 的发送缓冲已满，断开连接", c.ID)
		c.closed = true
		close(c.send)
	}
}

// handleDisconnect 断开时将玩家移出房间
func (c *Client) handleDisconnect() {
	c.room.RemovePlayer(c.ID)
	log.Printf("👋 玩家 %s 离开房间 %s (剩余 %d 人)", c.ID, c.room.ID, c.room.PlayerCount())

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}
