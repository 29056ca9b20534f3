package cli

import (
	"net/http"

	"github.com/SlpAus/instant-win-backend/api"
	"github.com/SlpAus/instant-win-backend/internal/entry"
	"github.com/SlpAus/instant-win-backend/internal/identity"
	"github.com/SlpAus/instant-win-backend/internal/notification"
	"github.com/SlpAus/instant-win-backend/internal/platform/config"
	"github.com/SlpAus/instant-win-backend/internal/platform/database"
	"github.com/SlpAus/instant-win-backend/internal/platform/health"
	"github.com/SlpAus/instant-win-backend/internal/platform/shutdown"
	"github.com/SlpAus/instant-win-backend/internal/platform/startup"
	"github.com/SlpAus/instant-win-backend/internal/promotion"
	"github.com/SlpAus/instant-win-backend/pkg/lifecycle"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewServeCommand 创建 serve 子命令
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rootOpts)
			if err != nil {
				return err
			}
			return runServe(cfg)
		},
	}
}

func runServe(cfg *config.Config) error {
	gin.SetMode(cfg.Server.Mode)

	// 1. 存储
	database.InitDB(cfg.Database)
	if err := startup.MigrateAll(database.DB); err != nil {
		return errors.Wrap(err, "应用初始化失败，无法启动")
	}
	database.InitRedis(cfg.Redis)

	// 2. 后台服务
	gracefulManager := lifecycle.NewManager("graceful")
	forcefulManager := lifecycle.NewManager("forceful")
	coordinator := shutdown.NewCoordinator(gracefulManager, forcefulManager)

	notifier, notifierCloser, err := notification.NewNotifier(cfg.Notification, database.RDB)
	if err != nil {
		return err
	}
	dispatcher := notification.NewDispatcher(notifier, cfg.Notification.QueueSize)
	gracefulHandle, err := gracefulManager.NewServiceHandle("notification-dispatcher")
	if err != nil {
		return err
	}
	forcefulHandle, err := forcefulManager.NewServiceHandle("notification-dispatcher")
	if err != nil {
		return err
	}
	dispatcher.Start(gracefulHandle, forcefulHandle)

	if rdb := database.RDB; rdb != nil {
		err := gracefulManager.Go("redis-health", func(h *lifecycle.Handle) {
			health.RunRedisHealthCheck(h, rdb)
		})
		if err != nil {
			return err
		}
	}

	// 3. HTTP服务
	resolver := identity.NewResolver()
	promos := promotion.NewRepository()
	router := api.NewRouter(cfg.Server, api.Handlers{
		Promotion: promotion.NewHandler(promotion.NewService(database.DB, resolver, promos)),
		Entry:     entry.NewHandler(entry.NewService(database.DB, resolver, promos, dispatcher)),
	})
	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", cfg.Server.Address).Msg("服务器已准备就绪，开始监听")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// 后台服务退出后才关闭通知通道和存储
	coordinator.OnExit("notifier", notifierCloser)
	coordinator.OnExit("redis", shutdown.CloseFunc(database.CloseRedis))
	coordinator.OnExit("database", shutdown.CloseFunc(database.Close))
	coordinator.ListenForSignalsAndShutdown(server)
	return nil
}
