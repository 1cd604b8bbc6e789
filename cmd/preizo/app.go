package main

import (
	"context"
	"fmt"
	"time"

	"preizo/internal/config"
	"preizo/internal/layout"
	"preizo/internal/metrics"
	"preizo/internal/render"
	"preizo/internal/service"
	"preizo/internal/storage"
	"preizo/pkg/logger"
	"preizo/pkg/redis"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const redisConnectTimeout = 30 * time.Second

// app holds what every subcommand shares.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	metrics *metrics.Registry
	gen     *service.Generator
	redis   *redis.Client
}

func newApp(cmd *cobra.Command) (*app, error) {
	envFile, err := cmd.Flags().GetString("env-file")
	if err != nil {
		return nil, fmt.Errorf("failed to get env-file flag: %w", err)
	}

	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("format") {
		format, _ := cmd.Flags().GetString("format")
		cfg.OutputFormat = format
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return nil, err
	}

	m := metrics.NewRegistry()
	logos := storage.NewDirLogoStore(cfg.StaticDir, storage.DefaultLogoFiles, zapLogger)
	renderer, err := render.New(cfg.OutputFormat, logos)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:     cfg,
		logger:  zapLogger,
		metrics: m,
		gen:     service.NewGenerator(layout.NewPlanner(logos), renderer, m, zapLogger),
	}, nil
}

// connectRedis dials Redis when REDIS_ADDR is set. Nil client otherwise.
func (a *app) connectRedis(ctx context.Context) (*redis.Client, error) {
	if a.cfg.Redis.Addr == "" {
		a.logger.Info("REDIS_ADDR not set, running without Redis")
		return nil, nil
	}
	c, err := redis.Connect(ctx, a.cfg.Redis.Addr, a.cfg.Redis.Password, a.cfg.Redis.DB,
		a.cfg.Redis.TTL, redisConnectTimeout, a.logger)
	if err != nil {
		return nil, err
	}
	a.redis = c
	return c, nil
}

// limiter returns nil when rate limiting is off.
func (a *app) limiter() *storage.RateLimiter {
	if a.redis == nil || !a.cfg.RateLimited() {
		return nil
	}
	return storage.NewRateLimiter(a.redis, a.cfg.RateLimit, a.cfg.RateLimitWindow)
}

func (a *app) close() {
	if a.redis != nil {
		a.redis.Close()
	}
	_ = a.logger.Sync()
}
