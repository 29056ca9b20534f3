package notification

import (
	"context"
	"time"
)

// WinnerNotice 是交给通知通道的中奖消息
type WinnerNotice struct {
	// ID 是UUID v7，供下游邮件服务去重
	ID            string    `json:"id"`
	WinnerID      uint      `json:"winner_id"`
	EntryID       uint      `json:"entry_id"`
	PromotionID   uint      `json:"promotion_id"`
	PromotionName string    `json:"promotion_name"`
	EntrantName   string    `json:"entrant_name"`
	EntrantEmail  string    `json:"entrant_email"`
	Mode          string    `json:"mode"`
	WonAt         time.Time `json:"won_at"`
}

// Notifier 把中奖消息送达参与者。
// 实现返回的错误只会被记录，不会影响已经提交的中奖结果。
type Notifier interface {
	NotifyWinner(ctx context.Context, notice WinnerNotice) error
	// Name 用作日志和指标的标签
	Name() string
}
