package room

import (
	"context"
	"log"
)

// DefaultDeletionBufferSize 删除请求通道的缓冲大小
// 写满后定时器的发送会阻塞（背压），请求不会被丢弃
const DefaultDeletionBufferSize = 100

// DeletionHandler 删除请求的唯一消费者
// 所有定时器的删除请求都经过同一条通道，由它串行地从注册表移除房间，
// 定时器因此不需要在触发时各自争抢注册表的锁
type DeletionHandler struct {
	registry *Registry
	requests <-chan RoomID
}

// NewDeletionHandler 为注册表创建删除处理器
// 返回的发送端应交给注册表创建的每个房间；buffer 为零值时使用默认缓冲大小
func NewDeletionHandler(registry *Registry, buffer int) (*DeletionHandler, chan<- RoomID) {
	if buffer <= 0 {
		buffer = DefaultDeletionBufferSize
	}

	ch := make(chan RoomID, buffer)
	handler := &DeletionHandler{
		registry: registry,
		requests: ch,
	}

	return handler, ch
}

// Watch 持续消费删除请求，按接收顺序逐个处理，直到 ctx 取消
// 删除是幂等的，晚到的请求（例如取消竞争后仍在途的）可以安全处理
func (h *DeletionHandler) Watch(ctx context.Context) {
	log.Printf("👀 删除处理器已启动")
	for {
		select {
		case <-ctx.Done():
			log.Printf("👀 删除处理器已停止: %v", ctx.Err())
			return
		case id := <-h.requests:
			h.registry.DeleteRoom(id)
		}
	}
}
