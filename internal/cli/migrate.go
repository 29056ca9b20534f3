package cli

import (
	"github.com/SlpAus/instant-win-backend/internal/platform/database"
	"github.com/SlpAus/instant-win-backend/internal/platform/startup"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NewMigrateCommand 创建 migrate 子命令：迁移表结构后退出
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rootOpts)
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return err
			}
			defer func() {
				if sqlDB, err := db.DB(); err == nil {
					sqlDB.Close()
				}
			}()

			return errors.Wrap(startup.MigrateAll(db), "migrate")
		},
	}
}
