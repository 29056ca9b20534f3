package database

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// statusManager 线程安全地保存Redis的健康状态
type statusManager struct {
	mu             sync.RWMutex
	isRedisHealthy bool
}

var globalStatus = &statusManager{
	isRedisHealthy: true,
}

// IsRedisHealthy 返回当前Redis的健康状态
func IsRedisHealthy() bool {
	globalStatus.mu.RLock()
	defer globalStatus.mu.RUnlock()
	return globalStatus.isRedisHealthy
}

// UpdateStatus 更新健康状态，只在状态变化时记录日志
func UpdateStatus(isHealthy bool) {
	globalStatus.mu.Lock()
	defer globalStatus.mu.Unlock()

	if globalStatus.isRedisHealthy == isHealthy {
		return
	}
	globalStatus.isRedisHealthy = isHealthy
	if isHealthy {
		log.Info().Msg("健康检查: Redis服务状态已更新为 [可用]")
	} else {
		log.Warn().Msg("健康检查: Redis服务状态已更新为 [不可用]")
	}
}
