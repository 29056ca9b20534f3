package notification

import (
	"context"
	"sync"
	"time"

	"github.com/SlpAus/instant-win-backend/internal/platform/metrics"
	"github.com/SlpAus/instant-win-backend/pkg/lifecycle"
	"github.com/rs/zerolog/log"
)

const deliveryTimeout = 10 * time.Second

// Dispatcher 是中奖通知的单一投递者。
// 请求路径只调用 Enqueue（非阻塞），后台循环负责投递；
// 投递失败只记录日志，不重试。
type Dispatcher struct {
	queue    chan WinnerNotice
	notifier Notifier

	shutdownMutex sync.Mutex
	isShutdown    bool
}

// NewDispatcher 创建一个带缓冲队列的投递器
func NewDispatcher(notifier Notifier, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 1
	}
	return &Dispatcher{
		queue:    make(chan WinnerNotice, queueSize),
		notifier: notifier,
	}
}

// Enqueue 提交一条通知。队列已满或已停机时放弃该通知并返回false。
func (d *Dispatcher) Enqueue(notice WinnerNotice) bool {
	d.shutdownMutex.Lock()
	defer d.shutdownMutex.Unlock()

	if d.isShutdown {
		d.drop(notice, "dispatcher is shut down")
		return false
	}
	select {
	case d.queue <- notice:
		metrics.NotificationQueueDepth.Inc()
		return true
	default:
		d.drop(notice, "queue is full")
		return false
	}
}

func (d *Dispatcher) drop(notice WinnerNotice, reason string) {
	metrics.NotificationsDelivered.WithLabelValues(d.notifier.Name(), "dropped").Inc()
	log.Warn().
		Str("notice_id", notice.ID).
		Uint("entry_id", notice.EntryID).
		Str("reason", reason).
		Msg("winner notification dropped")
}

// Start 在新的goroutine中运行投递循环
func (d *Dispatcher) Start(gracefulHandle, forcefulHandle *lifecycle.Handle) {
	go d.run(gracefulHandle, forcefulHandle)
}

func (d *Dispatcher) run(gracefulHandle, forcefulHandle *lifecycle.Handle) {
	defer gracefulHandle.Close()
	defer forcefulHandle.Close()
	log.Info().Str("driver", d.notifier.Name()).Msg("notification dispatcher started")

	for {
		select {
		case <-gracefulHandle.Done():
			log.Info().Msg("notification dispatcher: draining queue")
			d.drainQueue(forcefulHandle)
			log.Info().Msg("notification dispatcher stopped")
			return
		case notice := <-d.queue:
			metrics.NotificationQueueDepth.Dec()
			d.deliver(forcefulHandle.Ctx(), notice)
		}
	}
}

// drainQueue 停止接收新通知，并尽力投递剩余通知，直到收到强制停机信号
func (d *Dispatcher) drainQueue(forcefulHandle *lifecycle.Handle) {
	d.shutdownMutex.Lock()
	d.isShutdown = true
	close(d.queue)
	d.shutdownMutex.Unlock()

	for notice := range d.queue {
		metrics.NotificationQueueDepth.Dec()
		select {
		case <-forcefulHandle.Done():
			d.drop(notice, "forceful shutdown")
			continue
		default:
		}
		d.deliver(forcefulHandle.Ctx(), notice)
	}
}

func (d *Dispatcher) deliver(parent context.Context, notice WinnerNotice) {
	ctx, cancel := context.WithTimeout(parent, deliveryTimeout)
	defer cancel()

	if err := d.notifier.NotifyWinner(ctx, notice); err != nil {
		metrics.NotificationsDelivered.WithLabelValues(d.notifier.Name(), "error").Inc()
		log.Error().Err(err).
			Str("notice_id", notice.ID).
			Uint("entry_id", notice.EntryID).
			Str("email", notice.EntrantEmail).
			Msg("winner notification failed")
		return
	}
	metrics.NotificationsDelivered.WithLabelValues(d.notifier.Name(), "ok").Inc()
}
