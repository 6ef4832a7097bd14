package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"likebot/internal/config"
	"likebot/internal/infra/telegram"
	"likebot/internal/repo/likesapi"
	"likebot/internal/repo/memory"
	redisrepo "likebot/internal/repo/redis"
	"likebot/internal/services/access"
	"likebot/internal/services/likes"
)

type App struct {
	cfg    config.Config
	logger *slog.Logger
	tg     *telegram.Client

	likesService *likes.Service
}

func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	apiClient, err := likesapi.NewClient(
		cfg.APIURLTemplate,
		cfg.APIKey,
		time.Duration(cfg.APITimeoutSeconds)*time.Second,
	)
	if err != nil {
		return nil, fmt.Errorf("create likes api client: %w", err)
	}

	var ledger likes.Ledger
	if cfg.RedisAddr != "" {
		client := goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		ledger = redisrepo.NewQuotaRepo(client, cfg.DailyLimit)
		logger.Info("quota ledger backed by redis", "addr", cfg.RedisAddr)
	} else {
		ledger = memory.NewQuotaRepo(cfg.DailyLimit)
		logger.Info("quota ledger kept in process memory")
	}

	app := &App{
		cfg:    cfg,
		logger: logger,
	}

	app.tg, err = telegram.NewClient(cfg.BotToken, cfg.PollTimeoutSeconds, app.routeUpdate)
	if err != nil {
		return nil, fmt.Errorf("create telegram client: %w", err)
	}

	gate := access.NewService(app.tg, logger)
	app.likesService = likes.NewService(gate, ledger, apiClient, logger)

	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	return a.tg.Start(ctx)
}
