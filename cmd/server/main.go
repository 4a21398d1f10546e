// Server entrypoint: config, logger, Postgres, migrations, Redis, router,
// graceful shutdown.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/transrodar/backend/internal/auth"
	"github.com/transrodar/backend/internal/config"
	"github.com/transrodar/backend/internal/db"
	"github.com/transrodar/backend/internal/migrations"
	"github.com/transrodar/backend/internal/redis"
	"github.com/transrodar/backend/internal/router"
	"github.com/transrodar/backend/internal/security"
	"github.com/transrodar/backend/internal/store"
)

func main() {
	config.LoadDotEnvUp(8)

	logger, _ := zap.NewProduction()
	if os.Getenv("APP_ENV") == "local" {
		logger, _ = zap.NewDevelopment()
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config load failed", zap.Error(err))
	}

	ctx := context.Background()

	pool, err := db.NewPostgres(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatal("postgres init failed", zap.Error(err))
	}
	defer pool.Close()

	if err := migrations.NewRunner(pool, cfg.Seed).Up(ctx); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	rdb, err := redis.New(cfg.Redis)
	if err != nil {
		logger.Fatal("redis init failed", zap.Error(err))
	}
	defer redis.Close(rdb)

	jwtManager := security.NewJWTManager(cfg.Security.JWTSecret, cfg.Security.AccessTTL, cfg.Security.RefreshTTL)
	deps := router.Dependencies{
		Pool:         pool,
		Redis:        rdb,
		Logger:       logger,
		JWT:          jwtManager,
		Auth:         auth.NewJWTValidator(jwtManager),
		RefreshStore: store.NewRefreshStore(rdb, cfg.Security.RefreshTTL),
		Security:     cfg.Security,
		CORSOrigins:  cfg.Server.CORSOrigins,
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router.New(deps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("http server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}
