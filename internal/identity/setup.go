package identity

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// MigrateDB 迁移 clients 和 entrants 表结构
func MigrateDB(db *gorm.DB) error {
	if err := db.AutoMigrate(&Client{}, &Entrant{}); err != nil {
		return fmt.Errorf("无法迁移identity表: %w", err)
	}
	log.Info().Msg("Identity数据库表迁移成功")
	return nil
}
