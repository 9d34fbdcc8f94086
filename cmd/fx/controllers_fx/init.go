package controllers_fx

import (
	"go.uber.org/fx"
	"tripplanner/internal/api/controllers"
	"tripplanner/internal/infra"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(provideConfigController))

func provideConfigController(cfg *infra.Config) *controllers.ConfigController {
	return controllers.NewConfigController(cfg.MapsKey)
}
