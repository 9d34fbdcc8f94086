package main

import (
	"context"
	"errors"
	"net/http"
	"tripplanner/cmd/fx/completion_fx"
	"tripplanner/cmd/fx/config_fx"
	"tripplanner/cmd/fx/controllers_fx"
	"tripplanner/cmd/fx/itinerary_fx"
	"tripplanner/cmd/fx/logger_fx"
	"tripplanner/internal/api/controllers"
	"tripplanner/internal/infra"
	"tripplanner/pkg/logger"
	"tripplanner/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		completion_fx.Module,
		itinerary_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *infra.Config, log *logger.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("starting HTTP server", "addr", srv.Addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("HTTP server stopped unexpectedly", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *infra.Config,
	itineraryController *controllers.ItineraryController,
	configController *controllers.ConfigController) *gin.Engine {

	if cfg.AppEnv == "prod" || cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	controllers.RegisterRoutes(r, itineraryController, configController)

	return r
}
