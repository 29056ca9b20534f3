package startup

import (
	"github.com/SlpAus/instant-win-backend/internal/entry"
	"github.com/SlpAus/instant-win-backend/internal/identity"
	"github.com/SlpAus/instant-win-backend/internal/promotion"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// MigrateAll 按依赖顺序迁移所有模块的表结构
func MigrateAll(db *gorm.DB) error {
	log.Info().Msg("开始数据库迁移...")

	migrations := []func(*gorm.DB) error{
		identity.MigrateDB,
		promotion.MigrateDB,
		entry.MigrateDB,
	}
	for _, migrate := range migrations {
		if err := migrate(db); err != nil {
			return err
		}
	}

	log.Info().Msg("数据库迁移完成！")
	return nil
}
