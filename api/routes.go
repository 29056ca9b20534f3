package api

import (
	"net/http"
	"time"

	"github.com/SlpAus/instant-win-backend/internal/entry"
	"github.com/SlpAus/instant-win-backend/internal/platform/config"
	"github.com/SlpAus/instant-win-backend/internal/platform/health"
	"github.com/SlpAus/instant-win-backend/internal/promotion"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Handlers 汇总各模块的HTTP处理器
type Handlers struct {
	Promotion *promotion.Handler
	Entry     *entry.Handler
}

// NewRouter 创建gin引擎并注册中间件和所有路由
func NewRouter(cfg config.ServerConfig, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())
	// 未配置来源时不启用CORS，仅允许同源访问
	if len(cfg.Cors.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.Cors.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	SetupRoutes(router, h)
	return router
}

// SetupRoutes 注册项目的所有API路由
func SetupRoutes(router *gin.Engine, h Handlers) {
	router.GET("/healthz", healthz)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		// 活动注册 /api/clients/:slug/promotions
		api.POST("/clients/:slug/promotions", h.Promotion.Register)

		// 参与和评估 /api/entries/winning-moment, /api/entries/chance
		api.POST("/entries/:mode", h.Entry.Submit)
	}
}

func healthz(c *gin.Context) {
	report, ok := health.Check()
	status := http.StatusOK
	if !ok {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, report)
}

// requestLogger 用zerolog记录每个请求
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := zerolog.InfoLevel
		switch {
		case status >= 500:
			level = zerolog.ErrorLevel
		case status >= 400:
			level = zerolog.WarnLevel
		}
		log.WithLevel(level).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}
