package notification

import (
	"context"
	"encoding/json"

	"github.com/SlpAus/instant-win-backend/internal/platform/database"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RedisNotifier 把中奖消息推入Redis列表，由外部邮件服务消费 (BRPOP)
type RedisNotifier struct {
	rdb     *redis.Client
	listKey string
}

func NewRedisNotifier(rdb *redis.Client, listKey string) *RedisNotifier {
	return &RedisNotifier{rdb: rdb, listKey: listKey}
}

func (n *RedisNotifier) Name() string { return "redis" }

func (n *RedisNotifier) NotifyWinner(ctx context.Context, notice WinnerNotice) error {
	if !database.IsRedisHealthy() {
		return errors.New("redis is marked unhealthy")
	}
	payload, err := json.Marshal(notice)
	if err != nil {
		return errors.Wrap(err, "marshal winner notice")
	}
	if err := n.rdb.LPush(ctx, n.listKey, payload).Err(); err != nil {
		return errors.Wrapf(err, "push winner notice to %s", n.listKey)
	}
	return nil
}
