// Package cli 实现 instantwin 命令行
package cli

import (
	"github.com/SlpAus/instant-win-backend/internal/platform/config"
	"github.com/SlpAus/instant-win-backend/internal/platform/logger"
	"github.com/spf13/cobra"
)

// RootOptions 保存所有子命令共用的全局参数
type RootOptions struct {
	ConfigPath string
}

// NewRootCommand 创建 instantwin 根命令
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "instantwin",
		Short:         "Instant-win promotions backend",
		Long:          "Registers instant-win promotions and decides entries by winning moment or chance slot.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to config.yaml (default: ./config/config.yaml or ./config.yaml)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))

	return cmd
}

// loadConfig 读取配置并初始化日志，先于其他任何步骤
func loadConfig(opts *RootOptions) (*config.Config, error) {
	cfg, err := config.LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.Log)
	return cfg, nil
}
