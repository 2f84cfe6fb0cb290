package bootstrap

import (
	"context"
	"log/slog"

	"host-pricing/internal/infra/cache"
	"host-pricing/internal/pkg/config"
	"host-pricing/internal/usecase/shared"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewCalendarCache,
	),
)

func NewCalendarCache(lc fx.Lifecycle, cfg config.Config) (shared.CalendarCache, error) {
	if !cfg.Redis.Enabled() {
		slog.Info("REDIS_ADDR not set, calendar cache disabled")
		return cache.NewNoopCalendarCache(), nil
	}

	client, cleanup, err := cache.Connect(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return cache.NewRedisCalendarCache(client, cfg.Redis.CalendarTTL), nil
}
