package notification

import (
	"context"

	"github.com/rs/zerolog/log"
)

// LogNotifier 只把中奖消息写入日志，用于开发环境
type LogNotifier struct{}

func (LogNotifier) Name() string { return "log" }

func (LogNotifier) NotifyWinner(_ context.Context, notice WinnerNotice) error {
	log.Info().
		Str("notice_id", notice.ID).
		Str("email", notice.EntrantEmail).
		Str("promotion", notice.PromotionName).
		Uint("entry_id", notice.EntryID).
		Msg("winner notification")
	return nil
}
