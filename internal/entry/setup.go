package entry

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// MigrateDB 迁移 entries 和 winners 表结构
func MigrateDB(db *gorm.DB) error {
	if err := db.AutoMigrate(&Entry{}, &Winner{}); err != nil {
		return fmt.Errorf("无法迁移entry表: %w", err)
	}
	log.Info().Msg("Entry数据库表迁移成功")
	return nil
}
