package entry

import (
	"context"

	"github.com/SlpAus/instant-win-backend/internal/platform/apperr"
	"gorm.io/gorm"
)

// Values 是一次提交中的两个机制字段，缺省为nil
type Values struct {
	WinningMoment *string
	Chance        *int
}

// For 返回参与比较的值，未提供时为nil
func (v Values) For(m Mode) any {
	if m == ModeChance {
		if v.Chance == nil {
			return nil
		}
		return *v.Chance
	}
	if v.WinningMoment == nil {
		return nil
	}
	return *v.WinningMoment
}

// Recorder 写入 entries 表
type Recorder struct{}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// RecordEntry 在评估之前无条件插入一条Entry。
// 模式对应的值必须存在，另一个字段原样保存。
func (r *Recorder) RecordEntry(ctx context.Context, tx *gorm.DB, promotionID, entrantID uint, mode Mode, values Values) (*Entry, error) {
	if values.For(mode) == nil {
		return nil, apperr.NotDefined(mode.Column())
	}
	e := Entry{
		PromotionID:   promotionID,
		EntrantID:     entrantID,
		WinningMoment: values.WinningMoment,
		Chance:        values.Chance,
	}
	if err := tx.WithContext(ctx).Create(&e).Error; err != nil {
		return nil, apperr.Storage(err, "record entry")
	}
	return &e, nil
}
