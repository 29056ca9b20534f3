package identity

import "gorm.io/gorm"

// Client 是举办活动的客户，以slug作为对外标识
type Client struct {
	// gorm.Model 包含 ID, CreatedAt, UpdatedAt, DeletedAt
	gorm.Model

	// Slug 由人工指定，在未删除的记录中唯一
	Slug string `gorm:"type:varchar(191);not null;uniqueIndex:idx_clients_slug,where:deleted_at IS NULL"`
}

// Entrant 是参与活动的用户，以email作为身份标识
type Entrant struct {
	gorm.Model

	Name string `gorm:"type:varchar(255);not null"`

	// Email 在未删除的记录中唯一
	Email string `gorm:"type:varchar(191);not null;uniqueIndex:idx_entrants_email,where:deleted_at IS NULL"`
}
