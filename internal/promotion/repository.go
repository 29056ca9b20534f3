package promotion

import (
	"context"

	"github.com/SlpAus/instant-win-backend/internal/platform/apperr"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Repository 封装了promotions和mechanics表的访问
type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

// Create 插入活动及其唯一的规则记录
func (r *Repository) Create(ctx context.Context, tx *gorm.DB, clientID uint, name, winningMoment string, chance int) (*Promotion, error) {
	promo := Promotion{
		ClientID: clientID,
		Name:     name,
		Mechanic: Mechanic{
			WinningMoment: &winningMoment,
			Chance:        &chance,
		},
	}
	// gorm 在同一语句链中先插入活动再插入关联的规则
	if err := tx.WithContext(ctx).Create(&promo).Error; err != nil {
		return nil, apperr.Storage(err, "create promotion "+name)
	}
	return &promo, nil
}

// FindFirstByName 返回同名活动中ID最小的一条，不存在时返回 NotFoundError
func (r *Repository) FindFirstByName(ctx context.Context, tx *gorm.DB, name string) (*Promotion, error) {
	var promo Promotion
	err := tx.WithContext(ctx).Where("name = ?", name).Order("id asc").First(&promo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("promotion", "The promotion name "+name+" does not exist.")
	}
	if err != nil {
		return nil, apperr.Storage(err, "find promotion "+name)
	}
	return &promo, nil
}
