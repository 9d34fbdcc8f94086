package services

import (
	"context"
	"fmt"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/pkg/logger"
	"tripplanner/pkg/utils"
)

// ReplacementCount is how many suggestions a replacement request returns.
const ReplacementCount = 3

type ReplacementServiceInterface interface {
	// GenerateReplacements returns exactly ReplacementCount suggestions or the
	// reason it could not.
	GenerateReplacements(ctx context.Context, req request_models.ModifyActivityRequest) ([]response_models.Activity, error)
	// ModifyActivity always answers, substituting FallbackReplacements on failure.
	ModifyActivity(ctx context.Context, req request_models.ModifyActivityRequest) response_models.ReplacementActivityList
}

type ReplacementService struct {
	completion utils.CompletionClientInterface
	log        *logger.Logger
	opts       PlannerOptions
}

func NewReplacementService(
	completion utils.CompletionClientInterface,
	log *logger.Logger,
	opts PlannerOptions,
) ReplacementServiceInterface {
	return &ReplacementService{
		completion: completion,
		log:        log,
		opts:       opts,
	}
}

func (s *ReplacementService) ModifyActivity(ctx context.Context, req request_models.ModifyActivityRequest) response_models.ReplacementActivityList {
	activities, err := s.GenerateReplacements(ctx, req)
	if err != nil {
		s.log.Warn("replacement generation failed, using fallback activities",
			"destination", req.Destination,
			"activity", req.Request.Name,
			"error", err,
		)
		return response_models.ReplacementActivityList{ReplacementActivities: FallbackReplacements()}
	}
	return response_models.ReplacementActivityList{ReplacementActivities: activities}
}

func (s *ReplacementService) GenerateReplacements(ctx context.Context, req request_models.ModifyActivityRequest) ([]response_models.Activity, error) {
	text, err := complete(ctx, s.completion, s.opts.CompletionTimeout, replacementSystemPrompt, buildReplacementPrompt(req))
	if err != nil {
		return nil, fmt.Errorf("replacement completion: %w", err)
	}

	data := utils.ExtractJSONObject(text, nil)
	if data == nil {
		return nil, fmt.Errorf("%w: no JSON object in completion", utils.ErrUnexpectedBehaviorOfAI)
	}
	items, ok := data["replacement_activities"].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: replacement_activities missing or not a list", utils.ErrReplacementShape)
	}
	if len(items) < ReplacementCount {
		return nil, fmt.Errorf("%w: got %d activities, want %d", utils.ErrReplacementShape, len(items), ReplacementCount)
	}

	activities := make([]response_models.Activity, 0, ReplacementCount)
	for i, item := range items[:ReplacementCount] {
		act, err := coerceReplacement(item)
		if err != nil {
			return nil, fmt.Errorf("replacement_activities[%d]: %w", i, err)
		}
		activities = append(activities, act)
	}
	return activities, nil
}

// coerceReplacement repairs one suggested activity field by field.
func coerceReplacement(item any) (response_models.Activity, error) {
	m, ok := item.(map[string]any)
	if !ok {
		return response_models.Activity{}, fmt.Errorf("%w: activity is not an object", utils.ErrReplacementShape)
	}

	name, nameSet, err := optionalString(m, "name")
	if err != nil {
		return response_models.Activity{}, err
	}
	notes, notesSet, err := optionalString(m, "notes")
	if err != nil {
		return response_models.Activity{}, err
	}
	if !notesSet {
		place := "this location"
		if nameSet {
			place = name
		}
		notes = fmt.Sprintf("Visit %s", place)
	}
	if !nameSet {
		name = "Unknown Activity"
	}

	activityType := response_models.DefaultActivityType
	if s, ok := m["activity_type"].(string); ok {
		activityType = response_models.CoerceActivityType(s)
	}

	return response_models.Activity{
		Name:         name,
		Duration:     coerceAmount(m["duration"]),
		Notes:        notes,
		ActivityType: activityType,
		Cost:         coerceAmount(m["cost"]),
	}, nil
}

func optionalString(m map[string]any, key string) (string, bool, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, fmt.Errorf("%w: %s must be a string", utils.ErrReplacementShape, key)
	}
	return s, true, nil
}

func coerceAmount(v any) float64 {
	f, ok := asFloat(v)
	if !ok {
		return 0
	}
	return nonNegative(f)
}

// FallbackReplacements is returned whenever replacement generation fails.
func FallbackReplacements() []response_models.Activity {
	return []response_models.Activity{
		{Name: "Fallback Activity 1", Duration: 2.0, Notes: "Fallback activity", ActivityType: response_models.ActivityTypeCultural, Cost: 25.0},
		{Name: "Fallback Activity 2", Duration: 1.5, Notes: "Another fallback", ActivityType: response_models.ActivityTypeCultural, Cost: 20.0},
		{Name: "Fallback Activity 3", Duration: 2.5, Notes: "Third fallback", ActivityType: response_models.ActivityTypeCultural, Cost: 30.0},
	}
}
