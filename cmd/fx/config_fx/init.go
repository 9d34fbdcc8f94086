package config_fx

import (
	"fmt"
	"tripplanner/internal/infra"
	"tripplanner/internal/services"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	infra.LoadConfig,
	providePlannerOptions)

func providePlannerOptions(cfg *infra.Config) (services.PlannerOptions, error) {
	strategy, err := services.ParseRemovalStrategy(cfg.BudgetStrategy)
	if err != nil {
		return services.PlannerOptions{}, fmt.Errorf("planner options: %w", err)
	}
	return services.PlannerOptions{
		CompletionTimeout: cfg.CompletionTimeout,
		RemovalStrategy:   strategy,
	}, nil
}
