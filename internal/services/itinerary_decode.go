package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"tripplanner/internal/models/response_models"
	"tripplanner/pkg/utils"
)

// flexFloat accepts a JSON number or a numeric string.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("not a number: %q", s)
		}
		*f = flexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

type wireActivity struct {
	Name         *string                       `json:"name"`
	Duration     *flexFloat                    `json:"duration"`
	Notes        *string                       `json:"notes"`
	ActivityType *response_models.ActivityType `json:"activity_type"`
	Cost         *flexFloat                    `json:"cost"`
}

type wireDay struct {
	Day        *flexFloat      `json:"day"`
	Activities *[]wireActivity `json:"activities"`
}

type wireItinerary struct {
	Destination    *string    `json:"destination"`
	DailyItinerary *[]wireDay `json:"daily_itinerary"`
}

// decodeItinerary builds the typed itinerary from its normalized map form.
// Any missing or mistyped required field is an ErrSchemaValidation.
func decodeItinerary(data map[string]any) (*response_models.Itinerary, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrSchemaValidation, err)
	}
	var wire wireItinerary
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrSchemaValidation, err)
	}

	if wire.Destination == nil {
		return nil, schemaError("destination is required")
	}
	if wire.DailyItinerary == nil {
		return nil, schemaError("daily_itinerary is required")
	}

	it := &response_models.Itinerary{
		Destination:    *wire.Destination,
		DailyItinerary: make([]response_models.DayPlan, 0, len(*wire.DailyItinerary)),
	}
	for i, wd := range *wire.DailyItinerary {
		day, err := decodeDay(wd)
		if err != nil {
			return nil, fmt.Errorf("daily_itinerary[%d]: %w", i, err)
		}
		it.DailyItinerary = append(it.DailyItinerary, day)
	}
	return it, nil
}

func decodeDay(wd wireDay) (response_models.DayPlan, error) {
	if wd.Day == nil {
		return response_models.DayPlan{}, schemaError("day is required")
	}
	n := float64(*wd.Day)
	if n != math.Trunc(n) {
		return response_models.DayPlan{}, schemaError("day must be an integer")
	}
	if wd.Activities == nil {
		return response_models.DayPlan{}, schemaError("activities is required")
	}

	day := response_models.DayPlan{
		Day:        int(n),
		Activities: make([]response_models.Activity, 0, len(*wd.Activities)),
	}
	for j, wa := range *wd.Activities {
		act, err := decodeActivity(wa)
		if err != nil {
			return response_models.DayPlan{}, fmt.Errorf("activities[%d]: %w", j, err)
		}
		day.Activities = append(day.Activities, act)
	}
	return day, nil
}

func decodeActivity(wa wireActivity) (response_models.Activity, error) {
	switch {
	case wa.Name == nil:
		return response_models.Activity{}, schemaError("name is required")
	case wa.Duration == nil:
		return response_models.Activity{}, schemaError("duration is required")
	case wa.Notes == nil:
		return response_models.Activity{}, schemaError("notes is required")
	case wa.ActivityType == nil:
		return response_models.Activity{}, schemaError("activity_type is required")
	case wa.Cost == nil:
		return response_models.Activity{}, schemaError("cost is required")
	}
	return response_models.Activity{
		Name:         *wa.Name,
		Duration:     nonNegative(float64(*wa.Duration)),
		Notes:        *wa.Notes,
		ActivityType: *wa.ActivityType,
		Cost:         nonNegative(float64(*wa.Cost)),
	}, nil
}

func schemaError(msg string) error {
	return fmt.Errorf("%w: %s", utils.ErrSchemaValidation, msg)
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
