package database

import (
	"context"
	"time"

	"github.com/SlpAus/instant-win-backend/internal/platform/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RDB 是全局的Redis客户端。未启用Redis时为nil。
var RDB *redis.Client

// InitRedis 初始化与Redis的连接
func InitRedis(cfg config.RedisConfig) {
	if !cfg.Enabled {
		log.Info().Msg("Redis 未启用")
		return
	}

	RDB = redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := RDB.Ping(ctx).Err(); err != nil {
		// Redis 只承载通知出箱，启动时不可用不阻止服务，由健康检查器跟踪
		UpdateStatus(false)
		log.Error().Err(err).Str("addr", cfg.Address).Msg("无法连接到Redis")
		return
	}
	log.Info().Str("addr", cfg.Address).Msg("Redis 连接成功")
}

// CloseRedis 关闭Redis客户端
func CloseRedis() {
	if RDB != nil {
		_ = RDB.Close()
	}
}
