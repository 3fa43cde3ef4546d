package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiHttp "github.com/vibe-gaming/tourism/internal/api/http"
	"github.com/vibe-gaming/tourism/internal/config"
	"github.com/vibe-gaming/tourism/internal/db"
	"github.com/vibe-gaming/tourism/internal/repository"
	"github.com/vibe-gaming/tourism/internal/server"
	"github.com/vibe-gaming/tourism/internal/service"
	"github.com/vibe-gaming/tourism/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	// Dependencies
	appLogger := logger.SetupLogger(cfg.Env, cfg.LogLevel)
	defer appLogger.Sync() //nolint:errcheck

	appLogger.Info("starting tourism web app", zap.String("driver", cfg.Database.Driver))
	appLogger.Debug("debug messages are enabled")

	// Schema
	if cfg.Database.Migrate {
		version, err := db.Migrate(cfg.Database)
		if err != nil {
			appLogger.Error("migration failed", zap.Error(err))
			os.Exit(1)
		}
		appLogger.Info("schema is up to date", zap.Uint("version", version))
	}

	// Init database
	dbConn, err := db.New(cfg.Database)
	if err != nil {
		appLogger.Error("database connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		err = dbConn.Close()
		if err != nil {
			appLogger.Error("error when closing", zap.Error(err))
		}
	}()
	appLogger.Info("database connection done")

	// Services, Repos & HTTP Handlers
	repos := repository.NewRepositories(dbConn)
	services := service.NewServices(service.Deps{
		Repos: repos,
	})
	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	handler, err := apiHttp.NewHandlers(services, dbConn).Init(appCtx, cfg)
	if err != nil {
		appLogger.Error("http handler init failed", zap.Error(err))
		return
	}

	// HTTP Server
	srv := server.NewServer(cfg, handler)
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	appLogger.Info("server started", zap.String("port", cfg.HttpServer.Port))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		appLogger.Error("failed to stop server", zap.Error(err))
	}

	appLogger.Info("app stopped")
}
