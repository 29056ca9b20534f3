package health

import (
	"context"
	"time"

	"github.com/SlpAus/instant-win-backend/internal/platform/database"
	"github.com/SlpAus/instant-win-backend/pkg/lifecycle"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	checkInterval = 5 * time.Second
	pingTimeout   = 2 * time.Second
)

// PerformCheck 对Redis执行一次PING并更新全局健康状态
func PerformCheck(ctx context.Context, rdb *redis.Client) bool {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	healthy := rdb.Ping(ctx).Err() == nil
	database.UpdateStatus(healthy)
	return healthy
}

// RunRedisHealthCheck 定期检查Redis，阻塞直到句柄收到停机信号
func RunRedisHealthCheck(handle *lifecycle.Handle, rdb *redis.Client) {
	log.Info().Dur("interval", checkInterval).Msg("Redis健康检查器已启动")
	handle.Tick(checkInterval, func(ctx context.Context) {
		PerformCheck(ctx, rdb)
	})
	log.Info().Msg("Redis健康检查器已停止")
}

// Report 是 /healthz 的响应
type Report struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
}

// Check 汇总数据库和Redis的状态。只有数据库不可达才视为不健康。
func Check() (Report, bool) {
	r := Report{Status: "ok", Database: "ok", Redis: "disabled"}
	healthy := true

	if err := database.Ping(); err != nil {
		r.Database = "unreachable"
		r.Status = "degraded"
		healthy = false
	}
	if database.RDB != nil {
		if database.IsRedisHealthy() {
			r.Redis = "ok"
		} else {
			r.Redis = "unreachable"
			r.Status = "degraded"
		}
	}
	return r, healthy
}
