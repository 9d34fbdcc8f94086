package logger_fx

import (
	"context"
	"tripplanner/internal/infra"
	"tripplanner/pkg/logger"

	"go.uber.org/fx"
)

var Module = fx.Provide(provideLogger)

func provideLogger(lc fx.Lifecycle, cfg *infra.Config) (*logger.Logger, error) {
	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Sync()
			return nil
		},
	})
	return log, nil
}
