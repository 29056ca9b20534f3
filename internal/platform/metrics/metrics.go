// Package metrics 定义了通过 /metrics 暴露的Prometheus指标
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "instantwin"

var (
	// EntriesRecorded 按评估模式统计记录的提交，无论输赢
	EntriesRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entries_recorded_total",
		Help:      "Entries recorded, win or lose.",
	}, []string{"mode"})

	WinnersRegistered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "winners_registered_total",
		Help:      "Winner rows committed.",
	}, []string{"mode"})

	PromotionsRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "promotions_registered_total",
		Help:      "Promotions created together with their mechanic.",
	})

	// NotificationsDelivered 按通道和结果 (ok, error, dropped) 统计
	NotificationsDelivered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Winner notifications handled by the dispatcher.",
	}, []string{"driver", "result"})

	NotificationQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Winner notices waiting for delivery.",
	})
)
