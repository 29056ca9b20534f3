package promotion

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// MigrateDB 迁移 promotions 和 mechanics 表结构
func MigrateDB(db *gorm.DB) error {
	if err := db.AutoMigrate(&Promotion{}, &Mechanic{}); err != nil {
		return fmt.Errorf("无法迁移promotion表: %w", err)
	}
	log.Info().Msg("Promotion数据库表迁移成功")
	return nil
}
