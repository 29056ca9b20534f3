package entry

import "gorm.io/gorm"

// Entry 记录一次提交，无论输赢都会写入，用于审计
type Entry struct {
	gorm.Model

	PromotionID uint `gorm:"not null;index"`
	EntrantID   uint `gorm:"not null;index"`

	// WinningMoment 在 winning-moment 模式下是规范化后的值，
	// 在 chance 模式下是原样携带的提交值
	WinningMoment *string `gorm:"type:varchar(64)"`
	Chance        *int
}

// Winner 表示某条Entry中奖。每条Entry至多一条。
type Winner struct {
	gorm.Model

	EntryID uint `gorm:"not null;uniqueIndex"`
}
