package promotion

import (
	"context"
	"strings"

	"github.com/SlpAus/instant-win-backend/internal/identity"
	"github.com/SlpAus/instant-win-backend/internal/platform/apperr"
	"github.com/SlpAus/instant-win-backend/internal/platform/metrics"
	"github.com/SlpAus/instant-win-backend/pkg/optional"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// RegisterRequest 是注册活动的输入。ClientSlug 来自路径，其余来自请求体。
type RegisterRequest struct {
	ClientSlug    string                 `json:"-"`
	PromoName     optional.Value[string] `json:"promo_name"`
	WinningMoment optional.Value[string] `json:"winning_moment"`
	Chance        optional.Value[int]    `json:"chance"`
}

// Service 实现活动注册
type Service struct {
	db       *gorm.DB
	resolver *identity.Resolver
	repo     *Repository
}

func NewService(db *gorm.DB, resolver *identity.Resolver, repo *Repository) *Service {
	return &Service{db: db, resolver: resolver, repo: repo}
}

// validate 按 promo_name, winning_moment, chance 的顺序检查必填字段
func (req RegisterRequest) validate() (name, moment string, chance int, err error) {
	name, ok := optional.NonBlank(req.PromoName)
	if !ok {
		return "", "", 0, apperr.NotDefined("promo_name")
	}
	moment, ok = optional.NonBlank(req.WinningMoment)
	if !ok {
		return "", "", 0, apperr.NotDefined("winning_moment")
	}
	chance, ok = req.Chance.Get()
	if !ok {
		return "", "", 0, apperr.NotDefined("chance")
	}
	return name, moment, chance, nil
}

// RegisterPromotion 解析或创建客户，并在同一事务中创建活动和规则。
// 同名活动不会被拒绝，每次调用都会创建新的一对记录。
func (s *Service) RegisterPromotion(ctx context.Context, req RegisterRequest) (*Registration, error) {
	if strings.TrimSpace(req.ClientSlug) == "" {
		return nil, apperr.NotDefined("client_slug")
	}
	name, moment, chance, err := req.validate()
	if err != nil {
		return nil, err
	}

	var promoID uint
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		clientID, err := s.resolver.ResolveOrCreateClient(ctx, tx, req.ClientSlug)
		if err != nil {
			return err
		}
		promo, err := s.repo.Create(ctx, tx, clientID, name, moment, chance)
		if err != nil {
			return err
		}
		promoID = promo.ID
		return nil
	})
	if err != nil {
		return nil, apperr.Storage(err, "register promotion")
	}

	metrics.PromotionsRegistered.Inc()
	log.Info().
		Str("client", req.ClientSlug).
		Str("promotion", name).
		Uint("promotion_id", promoID).
		Msg("promotion registered")

	return &Registration{
		Client:        req.ClientSlug,
		PromotionName: name,
		WinningMoment: moment,
		Chance:        chance,
	}, nil
}
