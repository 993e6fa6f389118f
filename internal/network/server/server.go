package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/wormhole-game/wormhole-server/internal/config"
	"github.com/wormhole-game/wormhole-server/internal/game/room"
)

// Server HTTP + WebSocket 服务器，是房间核心对外的唯一门面
type Server struct {
	config     *config.Config
	registry   *room.Registry
	deletions  chan<- room.RoomID
	httpServer *http.Server
}

// New 创建服务器实例
func New(cfg *config.Config, registry *room.Registry, deletions chan<- room.RoomID) *Server {
	s := &Server{
		config:    cfg,
		registry:  registry,
		deletions: deletions,
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second, // 防止 Slowloris 攻击
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s
}

// routes 注册所有路由
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/rooms/", s.handleCreateRoom)
	mux.HandleFunc("GET /api/v1/rooms/", s.handleListRooms)
	mux.HandleFunc("GET /api/v1/rooms/{id}", s.handleGetRoom)
	mux.HandleFunc("DELETE /api/v1/rooms/{id}", s.handleDeleteRoom)
	mux.HandleFunc("GET /ws/{id}", s.handleWebSocket)
	mux.HandleFunc("GET /health", s.handleHealth)

	return mux
}

// Start 启动服务器并阻塞直到关闭
func (s *Server) Start() error {
	log.Printf("🚀 服务器启动在 http://%s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown 优雅关闭服务器
func (s *Server) Shutdown(ctx context.Context) error {
	log.Printf("🛑 正在关闭服务器...")
	return s.httpServer.Shutdown(ctx)
}
