package itinerary_fx

import (
	"go.uber.org/fx"
	"tripplanner/internal/services"
)

var Module = fx.Provide(
	services.NewItineraryService,
	services.NewReplacementService)
