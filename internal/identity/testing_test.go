package identity

import (
	"path/filepath"
	"testing"

	"github.com/SlpAus/instant-win-backend/internal/platform/config"
	"github.com/SlpAus/instant-win-backend/internal/platform/database"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB 在测试临时目录中打开一个已迁移的sqlite数据库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(config.DatabaseConfig{
		Driver: config.DriverSqlite,
		DSN:    filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	require.NoError(t, MigrateDB(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
