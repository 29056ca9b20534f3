package lifecycle

import (
	"context"
	"sync"
	"time"
)

// Handle 是某个后台服务在一个 Manager 中的登记。
// 服务退出前必须调用 Close，重复调用无副作用。
type Handle struct {
	service string
	ctx     context.Context
	once    sync.Once
	release func()
}

// Service 返回登记时使用的服务名
func (h *Handle) Service() string {
	return h.service
}

// Ctx 在管理器停机时被取消
func (h *Handle) Ctx() context.Context {
	return h.ctx
}

func (h *Handle) Done() <-chan struct{} {
	return h.ctx.Done()
}

func (h *Handle) Err() error {
	return h.ctx.Err()
}

// Close 注销该服务
func (h *Handle) Close() {
	h.once.Do(h.release)
}

// Tick 每隔 interval 以句柄的上下文调用一次 fn，直到停机。
// 首次调用发生在第一个间隔之后。
func (h *Handle) Tick(interval time.Duration, fn func(ctx context.Context)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-h.ctx.Done():
			return
		case <-ticker.C:
			fn(h.ctx)
		}
	}
}
