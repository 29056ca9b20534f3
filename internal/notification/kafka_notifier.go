package notification

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// messageWriter 是 *kafka.Writer 中用到的部分
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier 把中奖消息发布到Kafka主题，以参与者email作为分区键
type KafkaNotifier struct {
	writer messageWriter
}

// NewKafkaWriter 创建一个按key哈希分区的同步writer
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: 5 * time.Second,
	}
}

func NewKafkaNotifier(writer messageWriter) *KafkaNotifier {
	return &KafkaNotifier{writer: writer}
}

func (n *KafkaNotifier) Name() string { return "kafka" }

func (n *KafkaNotifier) NotifyWinner(ctx context.Context, notice WinnerNotice) error {
	msg, err := buildKafkaMessage(notice)
	if err != nil {
		return err
	}
	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrap(err, "publish winner notice")
	}
	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}

func buildKafkaMessage(notice WinnerNotice) (kafka.Message, error) {
	value, err := json.Marshal(notice)
	if err != nil {
		return kafka.Message{}, errors.Wrap(err, "marshal winner notice")
	}
	return kafka.Message{
		Key:   []byte(notice.EntrantEmail),
		Value: value,
		Headers: []kafka.Header{
			{Key: "notice-id", Value: []byte(notice.ID)},
			{Key: "event-type", Value: []byte("winner.registered")},
		},
		Time: notice.WonAt,
	}, nil
}
