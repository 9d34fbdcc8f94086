// cmd/fx/completion_fx/init.go
package completion_fx

import (
	"context"
	"fmt"
	"io"
	"tripplanner/internal/infra"
	"tripplanner/pkg/logger"
	"tripplanner/pkg/utils"

	"go.uber.org/fx"
)

var Module = fx.Provide(ProvideCompletionClient)

// ProvideCompletionClient creates the completion client selected by configuration
func ProvideCompletionClient(lc fx.Lifecycle, cfg *infra.Config, log *logger.Logger) (utils.CompletionClientInterface, error) {
	log.Info("initializing completion client",
		"provider", cfg.CompletionProvider,
		"model", cfg.CompletionModel,
		"json_mode", cfg.CompletionJSONMode,
		"timeout", cfg.CompletionTimeout,
	)

	client, err := utils.NewCompletionClient(context.Background(), utils.CompletionConfig{
		Provider: cfg.CompletionProvider,
		APIKey:   cfg.CompletionAPIKey,
		Model:    cfg.CompletionModel,
		BaseURL:  cfg.CompletionBaseURL,
		JSONMode: cfg.CompletionJSONMode,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create completion client: %w", err)
	}

	if closer, ok := client.(io.Closer); ok {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})
	}
	return client, nil
}
