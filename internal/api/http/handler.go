package apiHttp

import (
	"context"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vibe-gaming/tourism/pkg/limiter"
	"github.com/vibe-gaming/tourism/pkg/logger"
	"github.com/vibe-gaming/tourism/pkg/validator"

	"github.com/vibe-gaming/tourism/internal/api/http/internal/web"
	"github.com/vibe-gaming/tourism/internal/config"
	"github.com/vibe-gaming/tourism/internal/metrics"
	"github.com/vibe-gaming/tourism/internal/service"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	db       Pinger
}

func NewHandlers(services *service.Services, db Pinger) *Handler {
	return &Handler{
		services: services,
		db:       db,
	}
}

// Init builds the router. Background work started here stops with ctx.
func (h *Handler) Init(ctx context.Context, cfg *config.Config) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	// /States/New is served as /states/new
	router.RedirectFixedPath = true

	validator.RegisterGinValidator()

	templates, err := web.Templates()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(templates)

	router.Use(
		requestIDMiddleware,
		ginzap.GinzapWithConfig(logger.Logger(), &ginzap.Config{
			TimeFormat: time.RFC3339,
			UTC:        true,
			Context: func(c *gin.Context) []zapcore.Field {
				return []zapcore.Field{zap.String("request_id", c.GetString(requestIDCtx))}
			},
		}),
		limiter.Limit(ctx, cfg.Limiter.RPS, cfg.Limiter.Burst, cfg.Limiter.TTL),
	)
	router.Use(ginzap.RecoveryWithZap(logger.Logger(), true))

	if cfg.HttpServer.MetricsEnabled {
		router.Use(metrics.Middleware())
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	router.GET("/healthz", h.healthz)
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/states")
	})

	web.NewHandler(h.services).Init(router)

	return router, nil
}

func (h *Handler) healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		logger.Error("health check failed", zap.Error(err))
		c.String(http.StatusServiceUnavailable, "database unavailable")
		return
	}
	c.String(http.StatusOK, "ok")
}
