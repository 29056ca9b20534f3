package entry

import (
	"context"

	"github.com/SlpAus/instant-win-backend/internal/platform/apperr"
	"github.com/SlpAus/instant-win-backend/internal/promotion"
	"gorm.io/gorm"
)

// Evaluator 判定一条Entry是否中奖。
// 两种模式共用同一流程，只有比较的列不同。
type Evaluator struct{}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate 统计该活动下 mode 列与 value 完全相等的规则条数，
// 非零即中奖，并为该Entry写入唯一的一条Winner。未中奖时返回nil。
func (e *Evaluator) Evaluate(ctx context.Context, tx *gorm.DB, promotionID, entryID uint, mode Mode, value any) (*Winner, error) {
	db := tx.WithContext(ctx)

	var matches int64
	err := db.Model(&promotion.Mechanic{}).
		Where("promotion_id = ?", promotionID).
		Where(mode.Column()+" = ?", value).
		Count(&matches).Error
	if err != nil {
		return nil, apperr.Storage(err, "match mechanic")
	}
	if matches == 0 {
		return nil, nil
	}

	w := Winner{EntryID: entryID}
	if err := db.Create(&w).Error; err != nil {
		return nil, apperr.Storage(err, "register winner")
	}
	return &w, nil
}
