package server

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/wormhole-game/wormhole-server/internal/apperrors"
	"github.com/wormhole-game/wormhole-server/internal/game/room"
	"github.com/wormhole-game/wormhole-server/internal/network/protocol"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // 允许所有来源，生产环境需要限制
	},
}

// handleWebSocket 将玩家接入指定房间
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	id, err := room.ParseRoomID(r.PathValue("id"))
	if err != nil {
		http.Error(w, apperrors.ErrInvalidRoomID.Error(), http.StatusBadRequest)
		return
	}

	rm := s.registry.GetRoomForID(id)
	if rm == nil {
		http.Error(w, apperrors.ErrRoomNotFound.Error(), http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket 升级失败: %v", err)
		return
	}

	client := NewClient(conn, rm)
	rm.AddPlayer(client.ID)
	// TODO: 玩家加入应重置房间的空闲时钟（CancelDeletion + ScheduleDeletion），
	// 等活动信号的触发范围定下来之后在这里接线
	log.Printf("👤 玩家 %s 加入房间 %s (当前 %d 人)", client.ID, rm.ID, rm.PlayerCount())

	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomJoined, protocol.RoomJoinedPayload{
		RoomID:   rm.ID.String(),
		PlayerID: client.ID.String(),
	}))

	go client.WritePump()
	go client.ReadPump()
}
