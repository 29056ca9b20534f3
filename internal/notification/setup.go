package notification

import (
	"io"

	"github.com/SlpAus/instant-win-backend/internal/platform/config"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewNotifier 按配置构造通知实现。返回的Closer在停机最后阶段调用。
func NewNotifier(cfg config.NotificationConfig, rdb *redis.Client) (Notifier, io.Closer, error) {
	switch cfg.Driver {
	case config.NotifierLog, "":
		return LogNotifier{}, nopCloser{}, nil
	case config.NotifierRedis:
		if rdb == nil {
			return nil, nil, errors.New("redis notifier requires a redis client")
		}
		return NewRedisNotifier(rdb, cfg.Redis.ListKey), nopCloser{}, nil
	case config.NotifierKafka:
		if len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.Topic == "" {
			return nil, nil, errors.New("kafka notifier requires brokers and topic")
		}
		n := NewKafkaNotifier(NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic))
		return n, n, nil
	default:
		return nil, nil, errors.Errorf("unknown notification driver %q", cfg.Driver)
	}
}
