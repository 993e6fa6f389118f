package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wormhole-game/wormhole-server/internal/config"
	"github.com/wormhole-game/wormhole-server/internal/game/room"
	"github.com/wormhole-game/wormhole-server/internal/logger"
	"github.com/wormhole-game/wormhole-server/internal/network/server"
	"github.com/wormhole-game/wormhole-server/internal/network/server/storage"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	flag.Parse()

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("加载配置文件失败，使用默认配置: %v", err)
		cfg = config.Default()
	}

	if err := logger.Init(cfg.Server.LogFile); err != nil {
		log.Fatalf("日志初始化失败: %v", err)
	}
	defer logger.Close()

	// 可选的 Redis 镜像
	var store room.SnapshotStore
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			cancel()
			log.Fatalf("redis 连接失败: %v", err)
		}
		cancel()
		store = storage.NewRedisStore(rdb)
		log.Printf("🗄️ 房间快照镜像到 redis (%s)", cfg.Redis.Addr)
	}

	// 组装房间核心：注册表 + 删除管道
	registry := room.NewRegistry(nil, store, cfg.Room.IdleTimeoutDuration(), cfg.Room.MaxIDAttempts)
	handler, deletions := room.NewDeletionHandler(registry, cfg.Room.DeletionBuffer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go handler.Watch(ctx)

	srv := server.New(cfg, registry, deletions)
	go func() {
		if err := srv.Start(); err != nil {
			log.Fatalf("服务器启动失败: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("关闭服务器失败: %v", err)
	}
}
