package entry

import (
	"context"
	"time"

	"github.com/SlpAus/instant-win-backend/internal/identity"
	"github.com/SlpAus/instant-win-backend/internal/notification"
	"github.com/SlpAus/instant-win-backend/internal/platform/apperr"
	"github.com/SlpAus/instant-win-backend/internal/platform/metrics"
	"github.com/SlpAus/instant-win-backend/internal/promotion"
	"github.com/SlpAus/instant-win-backend/pkg/optional"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Submission 是一次参与请求的请求体
type Submission struct {
	EntrantName   optional.Value[string] `json:"entrant_name"`
	EntrantEmail  optional.Value[string] `json:"entrant_email"`
	PromoName     optional.Value[string] `json:"promo_name"`
	WinningMoment optional.Value[string] `json:"winning_moment"`
	Chance        optional.Value[int]    `json:"chance"`
}

func (s Submission) present(field string) bool {
	switch field {
	case fieldEntrantName:
		_, ok := optional.NonBlank(s.EntrantName)
		return ok
	case fieldEntrantEmail:
		_, ok := optional.NonBlank(s.EntrantEmail)
		return ok
	case fieldPromoName:
		_, ok := optional.NonBlank(s.PromoName)
		return ok
	case fieldWinningMoment:
		_, ok := optional.NonBlank(s.WinningMoment)
		return ok
	case fieldChance:
		return s.Chance.Present()
	}
	return false
}

// validate 按模式的必填字段表依次检查，报告第一个缺失的字段
func (s Submission) validate(mode Mode) error {
	for _, field := range requiredFields[mode] {
		if !s.present(field) {
			return apperr.NotDefined(field)
		}
	}
	return nil
}

// Result 是参与接口的响应
type Result struct {
	EntrantName   string  `json:"entrant_name"`
	PromotionName string  `json:"promotion_name"`
	WinningMoment *string `json:"winning_moment"`
	Chance        *int    `json:"chance"`
	IsWinner      bool    `json:"is_winner"`

	EntryID  uint `json:"-"`
	WinnerID uint `json:"-"`
}

// NoticeQueue 接收中奖通知。Enqueue 不得阻塞。
type NoticeQueue interface {
	Enqueue(notice notification.WinnerNotice) bool
}

// Service 串联身份解析、记录和评估
type Service struct {
	db        *gorm.DB
	resolver  *identity.Resolver
	promos    *promotion.Repository
	recorder  *Recorder
	evaluator *Evaluator
	queue     NoticeQueue
	clock     func() time.Time
}

func NewService(db *gorm.DB, resolver *identity.Resolver, promos *promotion.Repository, queue NoticeQueue) *Service {
	return &Service{
		db:        db,
		resolver:  resolver,
		promos:    promos,
		recorder:  NewRecorder(),
		evaluator: NewEvaluator(),
		queue:     queue,
		clock:     time.Now,
	}
}

// Submit 处理一次参与：校验、规范化，然后在同一事务中
// 查找活动、解析参与者、记录Entry并评估。中奖通知在提交后入队。
func (s *Service) Submit(ctx context.Context, rawMode string, sub Submission) (*Result, error) {
	mode, err := ParseMode(rawMode)
	if err != nil {
		return nil, err
	}
	if err := sub.validate(mode); err != nil {
		return nil, err
	}

	name, _ := optional.NonBlank(sub.EntrantName)
	email, _ := optional.NonBlank(sub.EntrantEmail)
	promoName, _ := optional.NonBlank(sub.PromoName)

	values := Values{Chance: sub.Chance.Ptr()}
	if moment, ok := optional.NonBlank(sub.WinningMoment); ok {
		values.WinningMoment = &moment
	}
	wonAt := s.clock()
	if mode == ModeWinningMoment {
		normalized, err := NormalizeMoment(*values.WinningMoment, wonAt)
		if err != nil {
			return nil, err
		}
		values.WinningMoment = &normalized
	}

	var (
		promo  *promotion.Promotion
		record *Entry
		winner *Winner
	)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		// 活动不存在时在创建任何记录之前失败
		if promo, err = s.promos.FindFirstByName(ctx, tx, promoName); err != nil {
			return err
		}
		entrantID, err := s.resolver.ResolveOrCreateEntrant(ctx, tx, name, email)
		if err != nil {
			return err
		}
		if record, err = s.recorder.RecordEntry(ctx, tx, promo.ID, entrantID, mode, values); err != nil {
			return err
		}
		winner, err = s.evaluator.Evaluate(ctx, tx, promo.ID, record.ID, mode, values.For(mode))
		return err
	})
	if err != nil {
		return nil, apperr.Storage(err, "submit entry")
	}

	metrics.EntriesRecorded.WithLabelValues(mode.Label()).Inc()
	result := &Result{
		EntrantName:   name,
		PromotionName: promoName,
		WinningMoment: values.WinningMoment,
		Chance:        values.Chance,
		IsWinner:      winner != nil,
		EntryID:       record.ID,
	}

	logEvent := log.Info().
		Str("mode", mode.Label()).
		Str("promotion", promoName).
		Uint("entry_id", record.ID).
		Bool("is_winner", result.IsWinner)
	if winner == nil {
		logEvent.Msg("entry recorded")
		return result, nil
	}

	result.WinnerID = winner.ID
	metrics.WinnersRegistered.WithLabelValues(mode.Label()).Inc()
	logEvent.Uint("winner_id", winner.ID).Msg("entry recorded")

	s.notify(notification.WinnerNotice{
		WinnerID:      winner.ID,
		EntryID:       record.ID,
		PromotionID:   promo.ID,
		PromotionName: promoName,
		EntrantName:   name,
		EntrantEmail:  email,
		Mode:          mode.Label(),
		WonAt:         wonAt,
	})
	return result, nil
}

// notify 在中奖已提交后调用，失败只记录日志
func (s *Service) notify(notice notification.WinnerNotice) {
	if s.queue == nil {
		return
	}
	id, err := uuid.NewV7()
	if err != nil {
		log.Warn().Err(err).Msg("uuid v7 unavailable, using random notice id")
		id = uuid.New()
	}
	notice.ID = id.String()
	if !s.queue.Enqueue(notice) {
		// 中奖已提交，通知丢失不影响结果
		log.Warn().Str("notice_id", notice.ID).Uint("winner_id", notice.WinnerID).Msg("winner notice not queued")
	}
}
