package entry

import (
	"github.com/SlpAus/instant-win-backend/internal/platform/apperr"
)

// Mode 选择用于比较的机制字段
type Mode string

const (
	ModeWinningMoment Mode = "winning-moment"
	ModeChance        Mode = "chance"
)

const (
	fieldEntrantName   = "entrant_name"
	fieldEntrantEmail  = "entrant_email"
	fieldPromoName     = "promo_name"
	fieldWinningMoment = "winning_moment"
	fieldChance        = "chance"
)

// requiredFields 按检查顺序列出每种模式的必填字段
var requiredFields = map[Mode][]string{
	ModeWinningMoment: {fieldEntrantName, fieldEntrantEmail, fieldPromoName, fieldWinningMoment},
	ModeChance:        {fieldEntrantName, fieldEntrantEmail, fieldPromoName, fieldChance},
}

// ParseMode 识别路径中的模式名。未知模式返回 NotFoundError。
func ParseMode(raw string) (Mode, error) {
	m := Mode(raw)
	if _, ok := requiredFields[m]; !ok {
		return "", apperr.NotFound("mode", "Evaluation mode "+raw+" does not exist.")
	}
	return m, nil
}

// Column 是 mechanics 和 entries 表中与该模式对应的列名
func (m Mode) Column() string {
	if m == ModeChance {
		return fieldChance
	}
	return fieldWinningMoment
}

// Label 用作指标和日志中的模式名
func (m Mode) Label() string {
	return m.Column()
}
