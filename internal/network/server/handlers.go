package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/wormhole-game/wormhole-server/internal/apperrors"
	"github.com/wormhole-game/wormhole-server/internal/game/room"
)

// handleCreateRoom 创建房间，成功时返回 201 和可连接的 Location
func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	id, err := s.registry.CreateRoom(s.deletions)
	if err != nil {
		// ID 分配耗尽是服务端问题，对外表现为 500
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Location", "/ws/"+id.String())
	w.WriteHeader(http.StatusCreated)
}

// handleListRooms 列出当前所有房间 ID
func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request) {
	ids := s.registry.ListActiveRooms()
	writeJSON(w, http.StatusOK, ids)
}

// handleGetRoom 查询单个房间的快照
func (s *Server) handleGetRoom(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, http.StatusOK, rm.Snapshot())
}

// handleDeleteRoom 删除房间，删除是幂等的，总是返回 204
func (s *Server) handleDeleteRoom(w http.ResponseWriter, r *http.Request) {
	id, err := room.ParseRoomID(r.PathValue("id"))
	if err != nil {
		http.Error(w, apperrors.ErrInvalidRoomID.Error(), http.StatusBadRequest)
		return
	}

	s.registry.DeleteRoom(id)
	w.WriteHeader(http.StatusNoContent)
}

// handleHealth 健康检查
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"rooms":  s.registry.RoomCount(),
	})
}

// writeJSON 写出 JSON 响应
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("写入响应失败: %v", err)
	}
}
