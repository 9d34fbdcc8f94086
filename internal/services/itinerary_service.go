package services

import (
	"context"
	"time"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/pkg/logger"
	"tripplanner/pkg/utils"
)

type ItineraryServiceInterface interface {
	BuildItinerary(ctx context.Context, req request_models.UserRequest) (*response_models.Itinerary, error)
}

// PlannerOptions tunes both the itinerary and the replacement flows.
type PlannerOptions struct {
	CompletionTimeout time.Duration
	RemovalStrategy   RemovalStrategy
}

type ItineraryService struct {
	completion utils.CompletionClientInterface
	log        *logger.Logger
	opts       PlannerOptions
}

func NewItineraryService(
	completion utils.CompletionClientInterface,
	log *logger.Logger,
	opts PlannerOptions,
) ItineraryServiceInterface {
	return &ItineraryService{
		completion: completion,
		log:        log,
		opts:       opts,
	}
}

func (s *ItineraryService) BuildItinerary(ctx context.Context, req request_models.UserRequest) (*response_models.Itinerary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	startTime := time.Now()
	log := s.log.With("destination", req.Destination, "days", req.Days, "budget", req.Budget)

	fallback := map[string]any{
		"destination":     req.Destination,
		keyDailyItinerary: []any{},
	}

	data := fallback
	text, err := complete(ctx, s.completion, s.opts.CompletionTimeout, itinerarySystemPrompt, buildItineraryPrompt(req))
	if err != nil {
		log.Warn("itinerary completion failed, returning empty itinerary", "error", err)
	} else {
		data = utils.ExtractJSONObject(text, fallback)
	}

	// The map-stage totals are informational; decoding ignores them and
	// Recalculate below produces the exact sums the budget is checked against.
	data = ComputeTotals(NormalizeItineraryKeys(data))

	itinerary, err := decodeItinerary(data)
	if err != nil {
		log.Error("completion output does not match itinerary schema", "error", err)
		return nil, err
	}
	itinerary.Recalculate()

	if itinerary.TotalCost > float64(req.Budget) {
		before := itinerary.TotalCost
		removed := EnforceBudget(itinerary, req.Budget, req.UserPref, s.opts.RemovalStrategy)
		names := make([]string, 0, len(removed))
		for _, r := range removed {
			names = append(names, r.Activity.Name)
		}
		log.Info("itinerary over budget, activities removed",
			"strategy", s.opts.RemovalStrategy,
			"total_before", before,
			"total_after", itinerary.TotalCost,
			"removed", names,
		)
	}

	log.Debug("itinerary built",
		"returned_days", itinerary.TotalDays(),
		"activities", itinerary.ActivityCount(),
		"total_cost", itinerary.TotalCost,
		"elapsed", time.Since(startTime),
	)
	return itinerary, nil
}

// complete runs one completion call bounded by timeout.
func complete(ctx context.Context, client utils.CompletionClientInterface, timeout time.Duration, systemPrompt, userPrompt string) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return client.Complete(ctx, systemPrompt, userPrompt)
}
