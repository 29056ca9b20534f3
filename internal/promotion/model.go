package promotion

import "gorm.io/gorm"

// Promotion 是某个客户的一次即时中奖活动。
// Name 是对外查询用的键，但不唯一：同名活动按ID取第一条。
type Promotion struct {
	gorm.Model

	ClientID uint   `gorm:"not null;index"`
	Name     string `gorm:"type:varchar(255);not null;index"`

	Mechanic Mechanic `gorm:"foreignKey:PromotionID"`
}

// Mechanic 定义了活动的中奖规则。每个活动在创建时恰好有一条。
type Mechanic struct {
	gorm.Model

	PromotionID uint `gorm:"not null;index"`

	// WinningMoment 原样保存注册时提交的字符串，比较时与规范化后的提交值做精确匹配
	WinningMoment *string `gorm:"type:varchar(64);index"`

	// Chance 是整数槽位，而不是概率
	Chance *int `gorm:"index"`
}

// Registration 是注册接口回显的四个值
type Registration struct {
	Client        string `json:"client"`
	PromotionName string `json:"promotion_name"`
	WinningMoment string `json:"winning_moment"`
	Chance        int    `json:"chance"`
}
