package shutdown

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SlpAus/instant-win-backend/pkg/lifecycle"
	"github.com/rs/zerolog/log"
)

const (
	httpTimeout     = 15 * time.Second
	gracefulTimeout = 30 * time.Second
	forcefulTimeout = 1 * time.Second
)

// Coordinator 负责编排应用程序的优雅停机流程。
// 它接收外部创建的生命周期管理器，并使用它们来协调停机。
type Coordinator struct {
	GracefulManager *lifecycle.Manager
	ForcefulManager *lifecycle.Manager

	// closers 在所有后台服务退出后按注册顺序关闭
	closers []namedCloser
}

type namedCloser struct {
	name   string
	closer io.Closer
}

// NewCoordinator 创建一个新的停机协调器。
func NewCoordinator(gracefulMgr, forcefulMgr *lifecycle.Manager) *Coordinator {
	return &Coordinator{
		GracefulManager: gracefulMgr,
		ForcefulManager: forcefulMgr,
	}
}

// OnExit 注册一个在停机最后阶段关闭的资源
func (c *Coordinator) OnExit(name string, closer io.Closer) {
	c.closers = append(c.closers, namedCloser{name: name, closer: closer})
}

// ListenForSignalsAndShutdown 启动信号监听并阻塞，直到停机流程完成。
func (c *Coordinator) ListenForSignalsAndShutdown(server *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sig := <-sigChan
	log.Info().Str("signal", sig.String()).Msg("收到关闭信号，开始优雅停机...")

	c.Shutdown(server)
}

// Shutdown 依次关闭HTTP服务器、后台服务和底层资源
func (c *Coordinator) Shutdown(server *http.Server) {
	// 关闭HTTP服务器，允许正在进行的请求完成
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), httpTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Gin服务器关闭错误")
	} else {
		log.Info().Msg("Gin服务器已关闭。")
	}

	// --- 阶段一: 优雅停机 ---
	log.Info().Dur("timeout", gracefulTimeout).Msg("第一阶段停机：等待后台任务完成...")
	c.GracefulManager.Shutdown()

	remainingServices := c.GracefulManager.WaitWithTimeout(gracefulTimeout)
	if len(remainingServices) == 0 {
		log.Info().Msg("所有服务已在第一阶段优雅关闭。")
	} else {
		// --- 阶段二: 强制停机 ---
		log.Warn().Strs("remaining", remainingServices).Dur("timeout", forcefulTimeout).
			Msg("第一阶段超时。发送第二停机信号，强制退出...")
	}
	// 强制信号总是发出，以便第一阶段已退出的服务释放其强制句柄
	c.ForcefulManager.Shutdown()
	c.ForcefulManager.WaitWithTimeout(forcefulTimeout)

	// --- 最终步骤 ---
	for _, nc := range c.closers {
		if err := nc.closer.Close(); err != nil {
			log.Error().Err(err).Str("resource", nc.name).Msg("资源关闭失败")
			continue
		}
		log.Info().Str("resource", nc.name).Msg("资源已关闭")
	}

	log.Info().Msg("优雅停机完成。")
}

// CloseFunc 把无返回值的清理函数适配为 io.Closer
type CloseFunc func()

func (f CloseFunc) Close() error {
	f()
	return nil
}
